package models

import "time"

// AuthResult is returned by the register, login, and refresh endpoints.
// It carries the signed bearer token, its expiry instant, and the public
// view of the authenticated account.
type AuthResult struct {
	// Token is the compact JWS serialization of the issued bearer token.
	Token string `json:"token"`

	// ExpiresAt is the instant at which Token stops being accepted.
	// Expiry is exact; validators apply zero clock-skew tolerance.
	ExpiresAt time.Time `json:"expires_at"`

	// User is the public projection of the authenticated account.
	User PublicUser `json:"user"`
}

// ValidateResult is returned by the service-to-service validate endpoint.
// Valid is false for any rejected token; User is populated only when Valid
// is true.
type ValidateResult struct {
	Valid bool        `json:"valid"`
	User  *PublicUser `json:"user,omitempty"`
}

// ErrorResponse is the uniform JSON error body returned by all handlers.
// Field names the offending input field when the error is a duplicate or
// validation failure, and is empty otherwise.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
