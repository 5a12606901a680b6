package token

import (
	"context"
	"errors"

	"github.com/denteo/clinic-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Validator verifies bearer tokens against the shared trust contract:
// signature, issuer, audience, expiry window, and the active-account claim.
//
// Validation is a pure CPU-bound computation; the context parameter exists
// so that remote implementations of the same contract (see the adapter
// package) can honour cancellation. All state is read-only after
// construction.
type Validator struct {
	signKey  string
	issuer   string
	audience string
}

// NewValidator constructs a [Validator] from the token trust contract in
// cfg. The TTL is not needed on the validating side; expiry is read from
// the token itself.
//
// Returns [ErrBadConfig] if the signing secret, issuer, or audience is
// empty. Fatal at startup, as with [NewIssuer].
func NewValidator(cfg config.Auth) (*Validator, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenAudience == "" {
		return nil, ErrBadConfig
	}

	return &Validator{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		audience: cfg.TokenAudience,
	}, nil
}

// Validate verifies tokenString and returns its claims.
//
// Checks, in order: HMAC-SHA256 signature against the shared secret, exact
// issuer and audience match, the [iat, exp) validity window with zero
// clock-skew leeway, and the active claim equal to "true".
//
// Failures are reported as sentinel errors ([ErrBadSignature], [ErrExpired],
// [ErrIssuerMismatch], [ErrAudienceMismatch], [ErrMalformed],
// [ErrInactiveAccount]); Validate never panics on untrusted input. Any
// token string that fails to parse at all is [ErrMalformed].
func (v *Validator) Validate(_ context.Context, tokenString string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return []byte(v.signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return Claims{}, classifyValidationError(err)
	}

	if !claims.IsActive() {
		return Claims{}, ErrInactiveAccount
	}

	return claims, nil
}

// Extract decodes tokenString WITHOUT verifying its signature or time
// claims and returns the embedded claim set.
//
// It exists solely to read user attributes out of a token that has already
// passed [Validator.Validate] in the same request; it must never be used as
// an authentication check on its own. Returns [ErrMalformed] if the token
// cannot be decoded structurally.
func Extract(tokenString string) (Claims, error) {
	var claims Claims

	_, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims)
	if err != nil {
		return Claims{}, ErrMalformed
	}

	return claims, nil
}

// classifyValidationError maps golang-jwt parse errors onto the package's
// sentinel error kinds. Order matters: golang-jwt joins multiple errors,
// and the most specific trust failure should win over the generic ones.
func classifyValidationError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudienceMismatch
	case errors.Is(err, jwt.ErrTokenUsedBeforeIssued), errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
