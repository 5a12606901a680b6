package token

import "errors"

// Sentinel errors returned by [Validator.Validate]. Callers match against
// them with [errors.Is]; at the HTTP boundary they all collapse to 401 and
// are only distinguished in internal logs.
var (
	// ErrBadSignature is returned when the token signature does not verify
	// against the shared secret.
	ErrBadSignature = errors.New("token signature does not match")

	// ErrExpired is returned when the current time is outside the token's
	// [iat, exp) validity window. No clock-skew grace is applied.
	ErrExpired = errors.New("token is expired")

	// ErrIssuerMismatch is returned when the iss claim differs from the
	// configured issuer.
	ErrIssuerMismatch = errors.New("token issuer mismatch")

	// ErrAudienceMismatch is returned when the aud claim differs from the
	// configured audience.
	ErrAudienceMismatch = errors.New("token audience mismatch")

	// ErrMalformed is returned when the token cannot be decoded at all, or
	// fails validation for a reason with no more specific sentinel.
	ErrMalformed = errors.New("token is malformed")

	// ErrInactiveAccount is returned when signature and time checks pass
	// but the active claim is not "true".
	ErrInactiveAccount = errors.New("token subject account is inactive")
)

// ErrBadConfig is returned by [NewIssuer] and [NewValidator] when the token
// trust contract is incomplete. It is fatal at service startup.
var ErrBadConfig = errors.New("invalid token configuration")
