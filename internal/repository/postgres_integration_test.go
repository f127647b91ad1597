//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
	"relay-chat/internal/repository"
	"relay-chat/pkg/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: DATABASE_URL=postgres://... go test -tags integration ./internal/repository/
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, database.Migrate(ctx, db))
	return db
}

func createUser(t *testing.T, repo repository.UserRepository, name string) int64 {
	t.Helper()
	u := &user.User{
		Login:        fmt.Sprintf("%s-%d", name, time.Now().UnixNano()),
		PasswordHash: "x",
		DisplayName:  name,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u.ID
}

func send(t *testing.T, repo repository.MessageRepository, from, to int64, text string) *message.Message {
	t.Helper()
	m := &message.Message{SenderID: from, Text: sql.NullString{String: text, Valid: true}}
	require.NoError(t, repo.CreateInChat(context.Background(), m, to))
	// created_at comes from NOW(); keep consecutive sends apart.
	time.Sleep(5 * time.Millisecond)
	return m
}

func TestChatReusedForBothDirections(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUserRepository(db)
	msgs := repository.NewMessageRepository(db)

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	first := send(t, msgs, alice, bob, "hi bob")
	reply := send(t, msgs, bob, alice, "hi alice")
	assert.Equal(t, first.ChatID, reply.ChatID)

	var chats int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM chats WHERE LEAST(user1_id, user2_id) = $1 AND GREATEST(user1_id, user2_id) = $2`,
		min(alice, bob), max(alice, bob),
	).Scan(&chats))
	assert.Equal(t, 1, chats)

	history, err := msgs.ListMessages(context.Background(), first.ChatID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hi bob", history[0].Text.String)
	assert.Equal(t, "hi alice", history[1].Text.String)
	assert.Equal(t, "bob", history[1].SenderName)
}

func TestListChatsShowsLatestMessagePerChat(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUserRepository(db)
	msgs := repository.NewMessageRepository(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")
	carol := createUser(t, users, "carol")

	send(t, msgs, alice, bob, "one")
	send(t, msgs, bob, alice, "two")
	send(t, msgs, carol, alice, "hello")
	send(t, msgs, alice, bob, "three")

	chats, err := msgs.ListChats(ctx, alice)
	require.NoError(t, err)
	require.Len(t, chats, 2)

	assert.Equal(t, bob, chats[0].OtherUserID)
	assert.Equal(t, "three", chats[0].LastMessage.String)
	assert.Equal(t, carol, chats[1].OtherUserID)
	assert.Equal(t, "hello", chats[1].LastMessage.String)
	assert.True(t, chats[0].LastMessageAt.Time.After(chats[1].LastMessageAt.Time))

	forCarol, err := msgs.ListChats(ctx, carol)
	require.NoError(t, err)
	require.Len(t, forCarol, 1)
	assert.Equal(t, alice, forCarol[0].OtherUserID)
}
