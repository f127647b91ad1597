package events

import (
	"context"
	"encoding/json"
	"fmt"

	"relay-chat/pkg/logger"

	"go.uber.org/zap"
)

// RawPublisher delivers bytes on a channel.
type RawPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Bus publishes domain events best-effort: failures are logged and never
// returned to the caller.
type Bus struct {
	pub RawPublisher
	log *logger.Logger
}

func NewBus(pub RawPublisher, log *logger.Logger) *Bus {
	if log == nil {
		log = logger.NewNop()
	}
	return &Bus{pub: pub, log: log}
}

func (b *Bus) MessageSent(ctx context.Context, e MessageSent) {
	b.emit(ctx, EventTypeMessageSent, AggregateChat, e.ChatID, e)
}

func (b *Bus) PresenceChanged(ctx context.Context, userID int64, status string) {
	eventType := EventTypePresenceOffline
	if status == "online" {
		eventType = EventTypePresenceOnline
	}
	b.emit(ctx, eventType, AggregateUser, userID, Presence{UserID: userID, Status: status})
}

func (b *Bus) emit(ctx context.Context, eventType, aggregateType string, aggregateID int64, payload interface{}) {
	if b == nil || b.pub == nil {
		return
	}
	if err := b.publish(ctx, eventType, aggregateType, aggregateID, payload); err != nil {
		b.log.ErrorCtx(ctx, "event publish failed",
			zap.String("event_type", eventType),
			zap.Int64("aggregate_id", aggregateID),
			zap.Error(err),
		)
	}
}

func (b *Bus) publish(ctx context.Context, eventType, aggregateType string, aggregateID int64, payload interface{}) error {
	env, err := NewEnvelope(eventType, aggregateType, aggregateID, payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	return b.pub.Publish(ctx, ResolveChannel(env), data)
}
