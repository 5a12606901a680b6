package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// duplicateUserError maps a unique-constraint violation on the users table
// to its field-specific sentinel error. Returns nil when err is not a
// unique violation on a known users constraint.
//
// PostgreSQL reports the violated constraint by name; SQLite only reports
// the qualified column in the error message. Both backends are covered so
// the repository behaves identically under either driver.
func duplicateUserError(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		switch postgresConstraint(err) {
		case "users_username_key":
			return ErrUsernameTaken
		case "users_email_key":
			return ErrEmailTaken
		case "users_cpf_key":
			return ErrCPFTaken
		}
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.username"):
			return ErrUsernameTaken
		case strings.Contains(msg, "users.email"):
			return ErrEmailTaken
		case strings.Contains(msg, "users.cpf"):
			return ErrCPFTaken
		}
	}

	return nil
}
