package token

import (
	"fmt"
	"time"

	"github.com/denteo/clinic-backend/internal/config"
	"github.com/denteo/clinic-backend/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer signs claim sets into time-bounded bearer tokens using the shared
// HMAC-SHA256 secret.
//
// All state is read-only after construction; an Issuer is safe for
// concurrent use across request handlers.
type Issuer struct {
	signKey  string
	issuer   string
	audience string
	ttl      time.Duration
}

// NewIssuer constructs an [Issuer] from the token trust contract in cfg.
//
// Returns [ErrBadConfig] if the signing secret, issuer, or audience is
// empty, or the TTL is non-positive. Callers treat this as fatal at
// startup: a service without a complete trust contract must not come up
// and fail per-request instead.
func NewIssuer(cfg config.Auth) (*Issuer, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenAudience == "" {
		return nil, ErrBadConfig
	}
	if cfg.TokenDuration <= 0 {
		return nil, ErrBadConfig
	}

	return &Issuer{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		audience: cfg.TokenAudience,
		ttl:      cfg.TokenDuration,
	}, nil
}

// Issue builds the canonical claim set for user via [NewClaims], stamps it
// with the configured issuer, audience, the current UTC time, and an expiry
// of now+TTL, and signs the result with HMAC-SHA256.
//
// Two tokens issued at different instants for the same user differ in their
// time claims and jti; the identity claims are fully determined by the
// current account state.
//
// Returns the compact signed token string and its exact expiry instant, or
// a wrapped error if signing fails.
func (i *Issuer) Issue(user models.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(i.ttl)

	claims := NewClaims(user)
	claims.Issuer = i.issuer
	claims.Audience = jwt.ClaimStrings{i.audience}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	// jti guards against identical tokens for logins within the same second.
	claims.ID = uuid.NewString()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.signKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error signing token: %w", err)
	}

	return signed, expiresAt, nil
}

// TTL returns the configured token time-to-live.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}
