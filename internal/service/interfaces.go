package service

import (
	"context"

	"github.com/denteo/clinic-backend/models"
)

// AuthService covers the account lifecycle operations exposed by the
// auth server: registration, login, token refresh and token validation.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	Refresh(ctx context.Context, tokenString string) (models.AuthResult, error)
	ValidateToken(ctx context.Context, tokenString string) (models.ValidateResult, error)
}

// UserService covers account administration. Authorization (self-or-admin,
// admin-only) is enforced by the transport layer before these are called.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.PublicUser, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.PublicUser, error)
	SetUserActive(ctx context.Context, userID int64, active bool) error
	DeleteUser(ctx context.Context, userID int64) error
}

// AppInfoService exposes build metadata about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AppointmentService covers clinic appointment management on the API server.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (models.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID int64) (models.Appointment, error)
	ListPatientAppointments(ctx context.Context, patientID int64) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) error
}
