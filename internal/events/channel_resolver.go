package events

import (
	"fmt"
)

func ChatChannel(chatID int64) string {
	return fmt.Sprintf("channel:chat:%d", chatID)
}

func PresenceChannel(userID int64) string {
	return fmt.Sprintf("channel:presence:%d", userID)
}

// ResolveChannel picks the pub/sub channel an envelope is delivered on.
// Unknown aggregates resolve to "".
func ResolveChannel(env Envelope) string {
	switch env.AggregateType {
	case AggregateChat:
		return "channel:chat:" + env.AggregateID
	case AggregateUser:
		return "channel:presence:" + env.AggregateID
	}
	return ""
}
