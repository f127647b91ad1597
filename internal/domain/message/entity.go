package message

import (
	"database/sql"
	"time"
)

const TypeText = "text"

// Message represents the messages table
type Message struct {
	ID         int64
	ChatID     int64
	SenderID   int64
	Text       sql.NullString
	Type       string
	MediaURL   sql.NullString
	IsRead     bool
	CreatedAt  time.Time
	SenderName string
}

// Summary is one entry of a user's chat list: the other participant and the latest message.
type Summary struct {
	ChatID           int64
	OtherUserID      int64
	OtherLogin       string
	OtherDisplayName string
	OtherAvatarURL   sql.NullString
	OtherStatus      string
	SecondsSinceSeen int64
	LastMessage      sql.NullString
	LastMessageType  sql.NullString
	LastMessageAt    sql.NullTime
}
