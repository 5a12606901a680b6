package store

import "github.com/denteo/clinic-backend/internal/logger"

// Repositories bundles every repository implementation for injection
// into the service layer.
type Repositories struct {
	UserRepository        UserRepository
	AppointmentRepository AppointmentRepository
}

// NewRepositories constructs all repositories over a single database
// connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db, log),
		AppointmentRepository: NewAppointmentRepository(db, log),
	}
}
