// Package events publishes domain events emitted by the auth service.
// Registration and login produce fire-and-forget notifications consumed
// by downstream clinic services; a publish failure never fails the
// operation that triggered it.
package events

import (
	"context"
	"time"

	"github.com/denteo/clinic-backend/models"
)

// Event types emitted by the auth service.
const (
	TypeUserCreated  = "user.created"
	TypeUserLoggedIn = "user.loggedin"
)

// Event is the envelope written to the broker. Data carries the public
// view of the user, never credential material.
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Source     string            `json:"source"`
	OccurredAt time.Time         `json:"occurred_at"`
	Data       models.PublicUser `json:"data"`
}

// Publisher emits auth domain events. Implementations must be safe for
// concurrent use and must not block the caller on broker I/O.
type Publisher interface {
	PublishUserCreated(ctx context.Context, user models.PublicUser)
	PublishUserLoggedIn(ctx context.Context, user models.PublicUser)
	Close() error
}
