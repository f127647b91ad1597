package httpdto

import (
	"time"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
)

// AddContactRequest is the body of action=add_contact
type AddContactRequest struct {
	UserID       int64  `json:"user_id" binding:"required"`
	ContactLogin string `json:"contact_login" binding:"required"`
}

// SendMessageRequest is the body of action=send_message
type SendMessageRequest struct {
	SenderID    int64  `json:"sender_id" binding:"required"`
	ReceiverID  int64  `json:"receiver_id" binding:"required"`
	MessageText string `json:"message_text"`
	MessageType string `json:"message_type"`
	MediaURL    string `json:"media_url"`
}

// UserQuery holds the user_id of get_contacts and get_chats
type UserQuery struct {
	UserID int64 `form:"user_id" binding:"required"`
}

// ChatQuery holds the chat_id of get_messages
type ChatQuery struct {
	ChatID int64 `form:"chat_id" binding:"required"`
}

type SendMessageResponse struct {
	Success   bool  `json:"success"`
	MessageID int64 `json:"message_id"`
	ChatID    int64 `json:"chat_id"`
}

type Contact struct {
	ID               int64   `json:"id"`
	Login            string  `json:"login"`
	DisplayName      string  `json:"display_name"`
	AvatarURL        *string `json:"avatar_url"`
	Status           string  `json:"status"`
	SecondsSinceSeen int64   `json:"seconds_since_seen"`
}

type Chat struct {
	ChatID           int64      `json:"chat_id"`
	ContactID        int64      `json:"contact_id"`
	Login            string     `json:"login"`
	DisplayName      string     `json:"display_name"`
	AvatarURL        *string    `json:"avatar_url"`
	Status           string     `json:"status"`
	SecondsSinceSeen int64      `json:"seconds_since_seen"`
	LastMessage      *string    `json:"last_message"`
	LastMessageType  *string    `json:"last_message_type"`
	LastMessageAt    *time.Time `json:"last_message_at"`
}

type Message struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	MessageText *string   `json:"message_text"`
	MessageType string    `json:"message_type"`
	MediaURL    *string   `json:"media_url"`
	IsRead      bool      `json:"is_read"`
	SenderName  string    `json:"sender_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContactsResponse struct {
	Success  bool      `json:"success"`
	Contacts []Contact `json:"contacts"`
}

type ChatsResponse struct {
	Success bool   `json:"success"`
	Chats   []Chat `json:"chats"`
}

type MessagesResponse struct {
	Success  bool      `json:"success"`
	Messages []Message `json:"messages"`
}

func ToContacts(in []user.Contact) []Contact {
	out := make([]Contact, 0, len(in))
	for _, c := range in {
		out = append(out, Contact{
			ID:               c.ID,
			Login:            c.Login,
			DisplayName:      c.DisplayName,
			AvatarURL:        nullable(c.AvatarURL.String, c.AvatarURL.Valid),
			Status:           c.Status,
			SecondsSinceSeen: c.SecondsSinceSeen,
		})
	}
	return out
}

func ToChats(in []message.Summary) []Chat {
	out := make([]Chat, 0, len(in))
	for _, s := range in {
		chat := Chat{
			ChatID:           s.ChatID,
			ContactID:        s.OtherUserID,
			Login:            s.OtherLogin,
			DisplayName:      s.OtherDisplayName,
			AvatarURL:        nullable(s.OtherAvatarURL.String, s.OtherAvatarURL.Valid),
			Status:           s.OtherStatus,
			SecondsSinceSeen: s.SecondsSinceSeen,
			LastMessage:      nullable(s.LastMessage.String, s.LastMessage.Valid),
			LastMessageType:  nullable(s.LastMessageType.String, s.LastMessageType.Valid),
		}
		if s.LastMessageAt.Valid {
			at := s.LastMessageAt.Time
			chat.LastMessageAt = &at
		}
		out = append(out, chat)
	}
	return out
}

func ToMessages(in []message.Message) []Message {
	out := make([]Message, 0, len(in))
	for _, m := range in {
		out = append(out, Message{
			ID:          m.ID,
			SenderID:    m.SenderID,
			MessageText: nullable(m.Text.String, m.Text.Valid),
			MessageType: m.Type,
			MediaURL:    nullable(m.MediaURL.String, m.MediaURL.Valid),
			IsRead:      m.IsRead,
			SenderName:  m.SenderName,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out
}
