package repository

import (
	"context"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByLogin(ctx context.Context, login string) (user.User, error)
	GetIDByLogin(ctx context.Context, login string) (int64, error)
	UpdateProfile(ctx context.Context, upd user.ProfileUpdate) (user.User, error)
	SetStatus(ctx context.Context, userID int64, status string) error
	List(ctx context.Context) ([]user.User, error)
}

type ContactRepository interface {
	Add(ctx context.Context, userID, contactUserID int64) error
	List(ctx context.Context, userID int64) ([]user.Contact, error)
}

type MessageRepository interface {
	// CreateInChat resolves the chat for the sender/receiver pair, creating it
	// if needed, and stores m in it atomically. m.ID, m.ChatID and m.CreatedAt are filled in.
	CreateInChat(ctx context.Context, m *message.Message, receiverID int64) error
	ListChats(ctx context.Context, userID int64) ([]message.Summary, error)
	ListMessages(ctx context.Context, chatID int64) ([]message.Message, error)
}
