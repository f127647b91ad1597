package repository

import (
	"context"
	"fmt"

	"relay-chat/internal/domain/user"
	relay_errors "relay-chat/pkg/errors"
)

type PostgresContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) ContactRepository {
	return &PostgresContactRepository{db: db}
}

// Add inserts the directed edge; adding an existing contact is a no-op.
func (r *PostgresContactRepository) Add(ctx context.Context, userID, contactUserID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (user_id, contact_user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, contactUserID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return relay_errors.ErrUserNotFound
		}
		return fmt.Errorf("add contact: %w", err)
	}
	return nil
}

func (r *PostgresContactRepository) List(ctx context.Context, userID int64) ([]user.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.login, u.display_name, u.avatar_url, u.status,
		        EXTRACT(EPOCH FROM (NOW() - u.last_seen))::bigint AS seconds_since_seen
		 FROM contacts c
		 JOIN users u ON c.contact_user_id = u.id
		 WHERE c.user_id = $1
		 ORDER BY u.display_name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]user.Contact, 0)
	for rows.Next() {
		var c user.Contact
		if err := rows.Scan(&c.ID, &c.Login, &c.DisplayName, &c.AvatarURL, &c.Status, &c.SecondsSinceSeen); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
