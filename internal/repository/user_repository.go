package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"relay-chat/internal/domain/user"
	relay_errors "relay-chat/pkg/errors"

	sq "github.com/Masterminds/squirrel"
)

type PostgresUserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (login, password, display_name, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, status, last_seen, created_at`,
		u.Login, u.PasswordHash, u.DisplayName, u.IsAdmin,
	).Scan(&u.ID, &u.Status, &u.LastSeen, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return relay_errors.ErrLoginTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (user.User, error) {
	var u user.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, login, password, display_name, is_admin, avatar_url, status, last_seen, created_at
		 FROM users WHERE login = $1`,
		login,
	).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.DisplayName, &u.IsAdmin, &u.AvatarURL, &u.Status, &u.LastSeen, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, relay_errors.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

func (r *PostgresUserRepository) GetIDByLogin(ctx context.Context, login string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE login = $1`, login).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, relay_errors.ErrUserNotFound
		}
		return 0, fmt.Errorf("get user id by login: %w", err)
	}
	return id, nil
}

// UpdateProfile always sets display_name and only touches password when a new hash is given.
func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, upd user.ProfileUpdate) (user.User, error) {
	b := psql.Update("users").Set("display_name", upd.DisplayName)
	if upd.PasswordHash != "" {
		b = b.Set("password", upd.PasswordHash)
	}
	query, args, err := b.
		Where(sq.Eq{"id": upd.UserID}).
		Suffix("RETURNING id, login, display_name, is_admin, avatar_url, status").
		ToSql()
	if err != nil {
		return user.User{}, fmt.Errorf("build update user: %w", err)
	}

	var u user.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Login, &u.DisplayName, &u.IsAdmin, &u.AvatarURL, &u.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, relay_errors.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// SetStatus stamps last_seen along with the status. Unknown ids are a no-op.
func (r *PostgresUserRepository) SetStatus(ctx context.Context, userID int64, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET status = $1, last_seen = NOW() WHERE id = $2`,
		status, userID,
	)
	if err != nil {
		return fmt.Errorf("set user status: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := psql.
		Select("id", "login", "display_name", "is_admin", "status").
		From("users").
		OrderBy("display_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Login, &u.DisplayName, &u.IsAdmin, &u.Status); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
