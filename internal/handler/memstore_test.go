package handler_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
	relay_errors "relay-chat/pkg/errors"
)

// memStore backs the repository interfaces with maps so handler tests run without Postgres.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*user.User
	contacts map[[2]int64]bool
	chats    map[[2]int64]int64
	messages []message.Message
	clock    time.Time
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*user.User{},
		contacts: map[[2]int64]bool{},
		chats:    map[[2]int64]int64{},
		clock:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Login == u.Login {
			return relay_errors.ErrLoginTaken
		}
	}
	u.ID = r.id()
	u.Status = user.StatusOffline
	u.LastSeen = r.tick()
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r memUsers) GetByLogin(_ context.Context, login string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == login {
			return *u, nil
		}
	}
	return user.User{}, relay_errors.ErrUserNotFound
}

func (r memUsers) GetIDByLogin(ctx context.Context, login string) (int64, error) {
	u, err := r.GetByLogin(ctx, login)
	return u.ID, err
}

func (r memUsers) UpdateProfile(_ context.Context, upd user.ProfileUpdate) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[upd.UserID]
	if !ok {
		return user.User{}, relay_errors.ErrUserNotFound
	}
	u.DisplayName = upd.DisplayName
	if upd.PasswordHash != "" {
		u.PasswordHash = upd.PasswordHash
	}
	return *u, nil
}

func (r memUsers) SetStatus(_ context.Context, userID int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		u.Status = status
		u.LastSeen = r.tick()
	}
	return nil
}

func (r memUsers) List(_ context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

type memContacts struct{ *memStore }

func (r memContacts) Add(_ context.Context, userID, contactUserID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return relay_errors.ErrUserNotFound
	}
	r.contacts[[2]int64{userID, contactUserID}] = true
	return nil
}

func (r memContacts) List(_ context.Context, userID int64) ([]user.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]user.Contact, 0)
	for edge := range r.contacts {
		if edge[0] != userID {
			continue
		}
		u := r.users[edge[1]]
		out = append(out, user.Contact{
			ID:               u.ID,
			Login:            u.Login,
			DisplayName:      u.DisplayName,
			AvatarURL:        u.AvatarURL,
			Status:           u.Status,
			SecondsSinceSeen: int64(r.clock.Sub(u.LastSeen).Seconds()),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

type memMessages struct{ *memStore }

func (r memMessages) CreateInChat(_ context.Context, m *message.Message, receiverID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[receiverID]; !ok {
		return relay_errors.ErrUserNotFound
	}
	key := pairKey(m.SenderID, receiverID)
	chatID, ok := r.chats[key]
	if !ok {
		chatID = r.id()
		r.chats[key] = chatID
	}
	m.ChatID = chatID
	m.ID = r.id()
	m.CreatedAt = r.tick()
	m.SenderName = r.users[m.SenderID].DisplayName
	r.messages = append(r.messages, *m)
	return nil
}

func (r memMessages) ListChats(_ context.Context, userID int64) ([]message.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]message.Summary, 0)
	for pair, chatID := range r.chats {
		if pair[0] != userID && pair[1] != userID {
			continue
		}
		other := pair[0]
		if other == userID {
			other = pair[1]
		}
		u := r.users[other]
		s := message.Summary{
			ChatID:           chatID,
			OtherUserID:      other,
			OtherLogin:       u.Login,
			OtherDisplayName: u.DisplayName,
			OtherStatus:      u.Status,
		}
		for _, m := range r.messages {
			if m.ChatID == chatID && (!s.LastMessageAt.Valid || m.CreatedAt.After(s.LastMessageAt.Time)) {
				s.LastMessage = m.Text
				s.LastMessageType = sql.NullString{String: m.Type, Valid: true}
				s.LastMessageAt = sql.NullTime{Time: m.CreatedAt, Valid: true}
			}
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageAt.Time.After(out[j].LastMessageAt.Time) })
	return out, nil
}

func (r memMessages) ListMessages(_ context.Context, chatID int64) ([]message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]message.Message, 0)
	for _, m := range r.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

// pairKey orders two participant ids so either direction maps to one chat.
func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}
