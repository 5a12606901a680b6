// Package token implements the bearer-token trust contract shared by the
// auth server (issuing side) and the clinic API (validating side): claim
// construction, HMAC-SHA256 signing, and strict validation.
//
// The claim schema is stable across services. Every token carries the
// registered claims (iss, aud, sub, iat, exp, jti) plus flat string-valued
// identity claims: username, email, role, active ("true"/"false"), and the
// optional cpf and phone. Validation applies zero clock-skew tolerance:
// a token expires exactly at its stated expiry instant.
package token

import (
	"strconv"

	"github.com/denteo/clinic-backend/models"
	"github.com/golang-jwt/jwt/v5"
)

// Values carried by the "active" claim. The flag is serialized as a string
// so that every claim in the token is flat and string-valued.
const (
	activeTrue  = "true"
	activeFalse = "false"
)

// Claims is the full claim set of a clinic bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard RFC 7519 fields and
// adds the identity claims derived from the user account. Claims are
// derived, never stored: they are rebuilt from the live account on every
// issuance.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the unique login identifier of the subject.
	Username string `json:"username,omitempty"`

	// Email is the subject's contact address.
	Email string `json:"email,omitempty"`

	// Role is the subject's authorization role.
	Role string `json:"role,omitempty"`

	// Active is "true" when the account could authenticate at issuance
	// time. Validators reject tokens whose Active claim is not "true"
	// even when signature and expiry check out.
	Active string `json:"active,omitempty"`

	// CPF is the optional national identity number. Present only when the
	// account has one.
	CPF string `json:"cpf,omitempty"`

	// Phone is the optional contact number. Present only when the account
	// has one.
	Phone string `json:"phone,omitempty"`
}

// NewClaims maps a user account to its canonical claim set.
//
// The mapping is pure and deterministic: subject id, username, email, and
// role are always present; cpf and phone only when populated on the
// account. Registered time and trust fields (iss, aud, iat, exp, jti) are
// filled in by [Issuer.Issue], not here.
func NewClaims(user models.User) Claims {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(user.UserID, 10),
		},
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Active:   activeFalse,
	}
	if user.Active {
		claims.Active = activeTrue
	}
	if user.CPF != "" {
		claims.CPF = user.CPF
	}
	if user.Phone != "" {
		claims.Phone = user.Phone
	}

	return claims
}

// UserID extracts the subject claim and parses it as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c Claims) UserID() (int64, error) {
	if c.Subject == "" {
		return 0, ErrMalformed
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrMalformed
	}

	return userID, nil
}

// IsActive reports whether the active claim equals "true".
func (c Claims) IsActive() bool {
	return c.Active == activeTrue
}
