package events

import (
	"context"

	"github.com/denteo/clinic-backend/models"
)

// NopPublisher discards all events. Used when no brokers are configured
// and in tests.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (*NopPublisher) PublishUserCreated(_ context.Context, _ models.PublicUser)  {}
func (*NopPublisher) PublishUserLoggedIn(_ context.Context, _ models.PublicUser) {}
func (*NopPublisher) Close() error                                               { return nil }
