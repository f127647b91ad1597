package services

import (
	"context"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
	"relay-chat/internal/events"
	"relay-chat/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByLogin(ctx context.Context, login string) (user.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepo) GetIDByLogin(ctx context.Context, login string) (int64, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, upd user.ProfileUpdate) (user.User, error) {
	args := m.Called(ctx, upd)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepo) SetStatus(ctx context.Context, userID int64, status string) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

func (m *MockUserRepo) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.User), args.Error(1)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Add(ctx context.Context, userID, contactUserID int64) error {
	args := m.Called(ctx, userID, contactUserID)
	return args.Error(0)
}

func (m *MockContactRepo) List(ctx context.Context, userID int64) ([]user.Contact, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]user.Contact), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) CreateInChat(ctx context.Context, msg *message.Message, receiverID int64) error {
	args := m.Called(ctx, msg, receiverID)
	return args.Error(0)
}

func (m *MockMessageRepo) ListChats(ctx context.Context, userID int64) ([]message.Summary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]message.Summary), args.Error(1)
}

func (m *MockMessageRepo) ListMessages(ctx context.Context, chatID int64) ([]message.Message, error) {
	args := m.Called(ctx, chatID)
	return args.Get(0).([]message.Message), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) MessageSent(ctx context.Context, e events.MessageSent) {
	m.Called(ctx, e)
}

func (m *MockPublisher) PresenceChanged(ctx context.Context, userID int64, status string) {
	m.Called(ctx, userID, status)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, obj storage.Object) (string, error) {
	args := m.Called(ctx, obj)
	return args.String(0), args.Error(1)
}
