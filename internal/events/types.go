package events

// Event types follow the format domain.action
const (
	EventTypeMessageSent     = "message.sent"
	EventTypePresenceOnline  = "presence.online"
	EventTypePresenceOffline = "presence.offline"
)

const (
	AggregateChat = "chat"
	AggregateUser = "user"
)

// MessageSent is published to the chat channel after a message is stored.
type MessageSent struct {
	MessageID   int64  `json:"message_id"`
	ChatID      int64  `json:"chat_id"`
	SenderID    int64  `json:"sender_id"`
	ReceiverID  int64  `json:"receiver_id"`
	MessageType string `json:"message_type"`
}

// Presence is published to the user's presence channel on login and logout.
type Presence struct {
	UserID int64  `json:"user_id"`
	Status string `json:"status"`
}
