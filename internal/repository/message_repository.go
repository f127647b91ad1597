package repository

import (
	"context"
	"fmt"

	"relay-chat/internal/domain/message"
	relay_errors "relay-chat/pkg/errors"
)

type PostgresMessageRepository struct {
	db DBTX
}

func NewMessageRepository(db DBTX) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

// upsertChatSQL relies on the unique index over the normalized pair. The no-op
// update makes RETURNING yield the existing row on conflict.
const upsertChatSQL = `INSERT INTO chats (user1_id, user2_id)
VALUES (LEAST($1::bigint, $2::bigint), GREATEST($1::bigint, $2::bigint))
ON CONFLICT ((LEAST(user1_id, user2_id)), (GREATEST(user1_id, user2_id)))
DO UPDATE SET user1_id = chats.user1_id
RETURNING id`

const insertMessageSQL = `INSERT INTO messages (chat_id, sender_id, message_text, message_type, media_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, is_read, created_at`

func (r *PostgresMessageRepository) CreateInChat(ctx context.Context, m *message.Message, receiverID int64) error {
	if m.Type == "" {
		m.Type = message.TypeText
	}
	err := WithTx(ctx, r.db, func(tx DBTX) error {
		if err := tx.QueryRowContext(ctx, upsertChatSQL, m.SenderID, receiverID).Scan(&m.ChatID); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, insertMessageSQL,
			m.ChatID, m.SenderID, m.Text, m.Type, m.MediaURL,
		).Scan(&m.ID, &m.IsRead, &m.CreatedAt)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return relay_errors.ErrUserNotFound
		}
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// listChatsSQL keeps the newest message per chat with DISTINCT ON, then orders
// the chats by latest activity.
const listChatsSQL = `SELECT chat_id, contact_id, login, display_name, avatar_url, status,
       seconds_since_seen, last_message, last_message_type, last_message_at
FROM (
    SELECT DISTINCT ON (c.id)
        c.id AS chat_id,
        CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END AS contact_id,
        u.login, u.display_name, u.avatar_url, u.status,
        EXTRACT(EPOCH FROM (NOW() - u.last_seen))::bigint AS seconds_since_seen,
        m.message_text AS last_message,
        m.message_type AS last_message_type,
        m.created_at AS last_message_at,
        c.created_at AS chat_created_at
    FROM chats c
    JOIN users u ON u.id = CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END
    LEFT JOIN messages m ON m.chat_id = c.id
    WHERE c.user1_id = $1 OR c.user2_id = $1
    ORDER BY c.id, m.created_at DESC, m.id DESC
) latest
ORDER BY COALESCE(last_message_at, chat_created_at) DESC, chat_id DESC`

func (r *PostgresMessageRepository) ListChats(ctx context.Context, userID int64) ([]message.Summary, error) {
	rows, err := r.db.QueryContext(ctx, listChatsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	chats := make([]message.Summary, 0)
	for rows.Next() {
		var s message.Summary
		if err := rows.Scan(
			&s.ChatID, &s.OtherUserID, &s.OtherLogin, &s.OtherDisplayName, &s.OtherAvatarURL, &s.OtherStatus,
			&s.SecondsSinceSeen, &s.LastMessage, &s.LastMessageType, &s.LastMessageAt,
		); err != nil {
			return nil, err
		}
		chats = append(chats, s)
	}
	return chats, rows.Err()
}

func (r *PostgresMessageRepository) ListMessages(ctx context.Context, chatID int64) ([]message.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.id, m.chat_id, m.sender_id, m.message_text, m.message_type,
		        m.media_url, m.is_read, m.created_at, u.display_name AS sender_name
		 FROM messages m
		 JOIN users u ON m.sender_id = u.id
		 WHERE m.chat_id = $1
		 ORDER BY m.created_at ASC, m.id ASC`,
		chatID,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	msgs := make([]message.Message, 0)
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Text, &m.Type, &m.MediaURL, &m.IsRead, &m.CreatedAt, &m.SenderName); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
