// Package identity carries the authenticated caller of a request.
//
// Every request handled below the authentication middleware has an
// Identity in its context — anonymous when no valid token was presented,
// populated from token claims otherwise. Handlers never inspect the raw
// token; they read the Identity and let the authorization gate decide.
package identity

import (
	"context"

	"github.com/denteo/clinic-backend/internal/token"
	"github.com/denteo/clinic-backend/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// identityCtxKey is the key used to store the caller identity in the context.
var identityCtxKey = contextKey("identity")

// Identity describes the caller of a single request.
//
// The zero value is anonymous: Authenticated is false and every claim
// field is empty.
type Identity struct {
	Authenticated bool
	UserID        int64
	Username      string
	Email         string
	Role          string
	CPF           string
	Phone         string
}

// Anonymous returns the identity attached to requests that carried no
// valid token.
func Anonymous() Identity {
	return Identity{}
}

// FromClaims builds an authenticated identity from validated token claims.
//
// Returns an error if the subject claim cannot be parsed as a user ID;
// callers should treat that the same as a failed validation.
func FromClaims(claims token.Claims) (Identity, error) {
	userID, err := claims.UserID()
	if err != nil {
		return Anonymous(), err
	}

	return Identity{
		Authenticated: true,
		UserID:        userID,
		Username:      claims.Username,
		Email:         claims.Email,
		Role:          claims.Role,
		CPF:           claims.CPF,
		Phone:         claims.Phone,
	}, nil
}

// IsAdmin reports whether the caller holds the Admin role.
func (i Identity) IsAdmin() bool {
	return i.Authenticated && i.Role == models.RoleAdmin
}

// HasRole reports whether the caller holds any of the given roles.
// An anonymous identity holds no roles.
func (i Identity) HasRole(roles ...string) bool {
	if !i.Authenticated {
		return false
	}
	for _, role := range roles {
		if i.Role == role {
			return true
		}
	}
	return false
}

// CanAccessUser reports whether the caller may act on the given user's
// records: either it is the same user or the caller is an admin.
func (i Identity) CanAccessUser(userID int64) bool {
	if !i.Authenticated {
		return false
	}
	return i.UserID == userID || i.Role == models.RoleAdmin
}

// WithIdentity returns a copy of ctx carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, id)
}

// FromContext retrieves the caller identity from the context.
//
// Requests that never passed through the authentication middleware have
// no identity at all; those are reported as anonymous so that callers
// can treat "no middleware" and "no token" identically.
func FromContext(ctx context.Context) Identity {
	id, ok := ctx.Value(identityCtxKey).(Identity)
	if !ok {
		return Anonymous()
	}
	return id
}
