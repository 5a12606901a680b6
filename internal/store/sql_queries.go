package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/denteo/clinic-backend/models"
)

// Column lists shared by the query builders and the row scanners.
// Order matters: scan destinations follow these slices.
var (
	userColumns = []string{
		"user_id", "username", "email", "cpf", "phone",
		"password_hash", "password_salt", "role", "active",
		"created_at", "last_login",
	}

	appointmentColumns = []string{
		"appointment_id", "patient_id", "dentist_name",
		"scheduled_at", "status", "notes", "created_at",
	}
)

// returningClause renders a RETURNING suffix for the given columns.
// Supported by PostgreSQL and by the SQLite versions we target.
func returningClause(columns []string) string {
	clause := "RETURNING "
	for i, column := range columns {
		if i > 0 {
			clause += ", "
		}
		clause += column
	}
	return clause
}

// insertUserQuery builds the INSERT for a new user account. The database
// assigns user_id and created_at, returned via the RETURNING clause.
func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert("users").
		Columns("username", "email", "cpf", "phone", "password_hash", "password_salt", "role", "active").
		Values(user.Username, user.Email, user.CPF, user.Phone, user.PasswordHash, user.PasswordSalt, user.Role, user.Active).
		Suffix(returningClause(userColumns)).
		ToSql()
}

// selectUserByLoginQuery matches an account by username or email with a
// single login string, mirroring the login form's single identifier field.
func (db *DB) selectUserByLoginQuery(login string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Or{sq.Eq{"username": login}, sq.Eq{"email": login}}).
		ToSql()
}

func (db *DB) selectUserByIDQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// listUsersQuery applies the optional role and active filters and orders
// the result by user_id for stable pagination.
func (db *DB) listUsersQuery(filter models.UserFilter) (string, []any, error) {
	query := db.builder.
		Select(userColumns...).
		From("users").
		OrderBy("user_id")

	if filter.Role != nil {
		query = query.Where(sq.Eq{"role": *filter.Role})
	}
	if filter.Active != nil {
		query = query.Where(sq.Eq{"active": *filter.Active})
	}

	return query.ToSql()
}

// updateUserQuery builds a partial UPDATE from the non-nil fields of the
// update. Returns [ErrNothingToUpdate] when no field is set.
func (db *DB) updateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	query := db.builder.Update("users")

	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.Phone != nil {
		query = query.Set("phone", *update.Phone)
	}
	if update.Role != nil {
		query = query.Set("role", *update.Role)
	}
	if update.Active != nil {
		query = query.Set("active", *update.Active)
	}

	return query.
		Where(sq.Eq{"user_id": userID}).
		Suffix(returningClause(userColumns)).
		ToSql()
}

func (db *DB) setUserActiveQuery(userID int64, active bool) (string, []any, error) {
	return db.builder.
		Update("users").
		Set("active", active).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// touchLastLoginQuery stamps the account's last successful login. The
// timestamp is supplied by the caller so both backends store the same
// value; concurrent logins resolve last-write-wins.
func (db *DB) touchLastLoginQuery(userID int64, at time.Time) (string, []any, error) {
	return db.builder.
		Update("users").
		Set("last_login", at).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) deleteUserQuery(userID int64) (string, []any, error) {
	return db.builder.
		Delete("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) insertAppointmentQuery(appointment models.Appointment) (string, []any, error) {
	return db.builder.
		Insert("appointments").
		Columns("patient_id", "dentist_name", "scheduled_at", "status", "notes").
		Values(appointment.PatientID, appointment.DentistName, appointment.ScheduledAt, appointment.Status, appointment.Notes).
		Suffix(returningClause(appointmentColumns)).
		ToSql()
}

func (db *DB) selectAppointmentByIDQuery(appointmentID int64) (string, []any, error) {
	return db.builder.
		Select(appointmentColumns...).
		From("appointments").
		Where(sq.Eq{"appointment_id": appointmentID}).
		ToSql()
}

func (db *DB) listAppointmentsByPatientQuery(patientID int64) (string, []any, error) {
	return db.builder.
		Select(appointmentColumns...).
		From("appointments").
		Where(sq.Eq{"patient_id": patientID}).
		OrderBy("scheduled_at").
		ToSql()
}

func (db *DB) updateAppointmentStatusQuery(appointmentID int64, status string) (string, []any, error) {
	return db.builder.
		Update("appointments").
		Set("status", status).
		Where(sq.Eq{"appointment_id": appointmentID}).
		ToSql()
}
