package services

import (
	"context"
	"database/sql"
	"strings"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
	"relay-chat/internal/events"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"
)

type MessengerService struct {
	userRepo    repository.UserRepository
	contactRepo repository.ContactRepository
	messageRepo repository.MessageRepository
	events      EventPublisher
}

func NewMessengerService(
	userRepo repository.UserRepository,
	contactRepo repository.ContactRepository,
	messageRepo repository.MessageRepository,
	publisher EventPublisher,
) *MessengerService {
	return &MessengerService{
		userRepo:    userRepo,
		contactRepo: contactRepo,
		messageRepo: messageRepo,
		events:      publisherOrNoop(publisher),
	}
}

type SendMessageInput struct {
	SenderID   int64
	ReceiverID int64
	Text       string
	Type       string
	MediaURL   string
}

func (s *MessengerService) AddContact(ctx context.Context, userID int64, contactLogin string) error {
	contactLogin = strings.TrimSpace(contactLogin)
	if userID <= 0 || contactLogin == "" {
		return relay_errors.ErrInvalidInput
	}
	contactID, err := s.userRepo.GetIDByLogin(ctx, contactLogin)
	if err != nil {
		return err
	}
	return s.contactRepo.Add(ctx, userID, contactID)
}

// SendMessage stores the message in the chat for the sender/receiver pair,
// creating the chat on first contact.
func (s *MessengerService) SendMessage(ctx context.Context, in SendMessageInput) (message.Message, error) {
	if in.SenderID <= 0 || in.ReceiverID <= 0 {
		return message.Message{}, relay_errors.ErrInvalidInput
	}

	m := message.Message{
		SenderID: in.SenderID,
		Text:     nullString(in.Text),
		Type:     in.Type,
		MediaURL: nullString(in.MediaURL),
	}
	if m.Type == "" {
		m.Type = message.TypeText
	}
	if err := s.messageRepo.CreateInChat(ctx, &m, in.ReceiverID); err != nil {
		return message.Message{}, err
	}

	s.events.MessageSent(ctx, events.MessageSent{
		MessageID:   m.ID,
		ChatID:      m.ChatID,
		SenderID:    m.SenderID,
		ReceiverID:  in.ReceiverID,
		MessageType: m.Type,
	})
	return m, nil
}

func (s *MessengerService) GetContacts(ctx context.Context, userID int64) ([]user.Contact, error) {
	if userID <= 0 {
		return nil, relay_errors.ErrInvalidInput
	}
	return s.contactRepo.List(ctx, userID)
}

func (s *MessengerService) GetChats(ctx context.Context, userID int64) ([]message.Summary, error) {
	if userID <= 0 {
		return nil, relay_errors.ErrInvalidInput
	}
	return s.messageRepo.ListChats(ctx, userID)
}

func (s *MessengerService) GetMessages(ctx context.Context, chatID int64) ([]message.Message, error) {
	if chatID <= 0 {
		return nil, relay_errors.ErrInvalidInput
	}
	return s.messageRepo.ListMessages(ctx, chatID)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
