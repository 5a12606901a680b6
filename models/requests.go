package models

// RegisterRequest is the payload accepted by POST /api/auth/register.
//
// Validation tags are enforced by the validators package before the request
// reaches the service layer. Role is optional; an empty value defaults to
// [RoleUser] during registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	CPF      string `json:"cpf,omitempty" validate:"omitempty,len=11,numeric"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=User Dentist Admin"`
}

// LoginRequest is the payload accepted by POST /api/auth/login.
// Login matches either the username or the email of an account.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the payload accepted by POST /api/auth/refresh.
type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

// ValidateRequest is the payload accepted by the service-to-service
// POST /api/auth/validate endpoint.
type ValidateRequest struct {
	Token string `json:"token" validate:"required"`
}

// UpdateUserRequest is the payload accepted by PUT /api/users/{id}.
// All fields are optional; only non-nil fields are applied.
type UpdateUserRequest struct {
	Email  *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone  *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=User Dentist Admin"`
	Active *bool   `json:"active,omitempty"`
}

// CreateAppointmentRequest is the payload accepted by
// POST /api/appointments on the clinic API.
type CreateAppointmentRequest struct {
	PatientID   int64  `json:"patient_id" validate:"required,gt=0"`
	DentistName string `json:"dentist_name" validate:"required,max=255"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
	Notes       string `json:"notes,omitempty" validate:"omitempty,max=4000"`
}

// UpdateAppointmentStatusRequest is the payload accepted by
// PUT /api/appointments/{id}/status. Only the two terminal statuses are
// accepted; a scheduled appointment cannot be re-scheduled in place.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Completed Cancelled"`
}

// SetUserActiveRequest is the payload accepted by PUT /api/users/{id}/active.
// Active is a pointer so that an absent field is rejected rather than read
// as false.
type SetUserActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}
