package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	channel string
	payload []byte
	err     error
	calls   int
}

func (r *recordingPublisher) Publish(_ context.Context, channel string, payload []byte) error {
	r.calls++
	r.channel = channel
	r.payload = payload
	return r.err
}

func TestBusMessageSentEnvelope(t *testing.T) {
	pub := &recordingPublisher{}
	bus := NewBus(pub, nil)

	bus.MessageSent(context.Background(), MessageSent{MessageID: 10, ChatID: 3, SenderID: 1, ReceiverID: 2, MessageType: "text"})

	require.Equal(t, 1, pub.calls)
	assert.Equal(t, "channel:chat:3", pub.channel)

	var env Envelope
	require.NoError(t, json.Unmarshal(pub.payload, &env))
	assert.Equal(t, EventTypeMessageSent, env.EventType)
	assert.Equal(t, AggregateChat, env.AggregateType)
	assert.Equal(t, "3", env.AggregateID)
	assert.False(t, env.OccurredAt.IsZero())

	var payload MessageSent
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, int64(10), payload.MessageID)
	assert.Equal(t, int64(2), payload.ReceiverID)
}

func TestBusPresenceChannels(t *testing.T) {
	pub := &recordingPublisher{}
	bus := NewBus(pub, nil)

	bus.PresenceChanged(context.Background(), 42, "online")
	assert.Equal(t, "channel:presence:42", pub.channel)

	var env Envelope
	require.NoError(t, json.Unmarshal(pub.payload, &env))
	assert.Equal(t, EventTypePresenceOnline, env.EventType)

	bus.PresenceChanged(context.Background(), 42, "offline")
	require.NoError(t, json.Unmarshal(pub.payload, &env))
	assert.Equal(t, EventTypePresenceOffline, env.EventType)
}

func TestBusSwallowsPublishErrors(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("connection refused")}
	bus := NewBus(pub, nil)

	assert.NotPanics(t, func() {
		bus.MessageSent(context.Background(), MessageSent{ChatID: 1})
	})
	assert.Equal(t, 1, pub.calls)
}

func TestNilBusIsNoop(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() {
		bus.PresenceChanged(context.Background(), 1, "offline")
	})
}

func TestResolveChannelUnknownAggregate(t *testing.T) {
	assert.Equal(t, "", ResolveChannel(Envelope{AggregateType: "poll", AggregateID: "1"}))
	assert.Equal(t, "channel:chat:9", ChatChannel(9))
	assert.Equal(t, "channel:presence:9", PresenceChannel(9))
}
