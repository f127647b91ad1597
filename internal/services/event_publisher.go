package services

import (
	"context"

	"relay-chat/internal/events"
)

// EventPublisher announces domain events. Implementations must not block the
// request on delivery failures.
type EventPublisher interface {
	MessageSent(ctx context.Context, e events.MessageSent)
	PresenceChanged(ctx context.Context, userID int64, status string)
}

type noopPublisher struct{}

func (noopPublisher) MessageSent(context.Context, events.MessageSent) {}
func (noopPublisher) PresenceChanged(context.Context, int64, string) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
