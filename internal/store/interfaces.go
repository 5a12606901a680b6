// Package store contains the persistence layer: SQL connectors for
// PostgreSQL and SQLite, repository implementations for user accounts
// and appointments, and the sentinel errors repositories surface to
// the service layer.
package store

import (
	"context"

	"github.com/denteo/clinic-backend/models"
)

// UserRepository persists and retrieves user accounts.
//
// All lookup methods return [ErrUserNotFound] when no record matches.
// Create maps unique-constraint violations to the field-specific
// sentinels [ErrUsernameTaken], [ErrEmailTaken] and [ErrCPFTaken].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	SetUserActive(ctx context.Context, userID int64, active bool) error
	TouchLastLogin(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
}

// AppointmentRepository persists and retrieves clinic appointments.
type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID int64) (models.Appointment, error)
	ListAppointmentsByPatient(ctx context.Context, patientID int64) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) error
}
