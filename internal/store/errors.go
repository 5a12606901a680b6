package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when a user INSERT or UPDATE violates the
	// unique constraint on the username column.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when a user INSERT or UPDATE violates the
	// unique constraint on the email column.
	ErrEmailTaken = errors.New("email already exists")

	// ErrCPFTaken is returned when a user INSERT or UPDATE violates the
	// unique constraint on the cpf column.
	ErrCPFTaken = errors.New("cpf already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrAppointmentNotFound is returned when a query or update targets an
	// appointment that does not exist in the database.
	ErrAppointmentNotFound = errors.New("appointment was not found")

	// ErrNothingToUpdate is returned when an UPDATE is requested with no
	// fields set, so no SET clause can be built.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
