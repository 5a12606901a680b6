package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values that fail business rules.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the uniform login failure. It deliberately
	// does not distinguish an unknown login, a wrong password or a
	// deactivated account, so the endpoint cannot be used to find out
	// which accounts exist or which have been switched off.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned by Refresh and ValidateToken when the
	// presented token fails validation for any reason.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidStatusTransition is returned when an appointment is moved
	// to a status its current status does not allow.
	ErrInvalidStatusTransition = errors.New("invalid appointment status transition")
)
