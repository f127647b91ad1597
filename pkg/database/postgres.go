package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"relay-chat/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connect opens the shared connection pool. Every repository checks
// connections out of it per statement and database/sql returns them on all
// exit paths.
func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeM) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("Database connection established")
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id           BIGSERIAL PRIMARY KEY,
		login        TEXT NOT NULL UNIQUE,
		password     TEXT NOT NULL,
		display_name TEXT NOT NULL,
		is_admin     BOOLEAN NOT NULL DEFAULT FALSE,
		avatar_url   TEXT,
		status       TEXT NOT NULL DEFAULT 'offline',
		last_seen    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		user_id         BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		contact_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, contact_user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS chats (
		id         BIGSERIAL PRIMARY KEY,
		user1_id   BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		user2_id   BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS chats_pair_uniq
		ON chats ((LEAST(user1_id, user2_id)), (GREATEST(user1_id, user2_id)))`,
	`CREATE TABLE IF NOT EXISTS messages (
		id           BIGSERIAL PRIMARY KEY,
		chat_id      BIGINT NOT NULL REFERENCES chats(id) ON DELETE CASCADE,
		sender_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message_text TEXT,
		message_type TEXT NOT NULL DEFAULT 'text',
		media_url    TEXT,
		is_read      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS messages_chat_created_idx ON messages (chat_id, created_at)`,
}

// Migrate creates the schema. Every statement is idempotent so it runs on each start.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}

// coreTables lists tables in dependency order, children last.
var coreTables = []string{"users", "contacts", "chats", "messages"}

func TableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1)`,
		table,
	).Scan(&exists)
	return exists, err
}

func TableCount(ctx context.Context, db *sql.DB, table string) (int64, error) {
	if !isCoreTable(table) {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int64
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}

// TruncateAll wipes every core table and resets identities.
func TruncateAll(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, "TRUNCATE messages, chats, contacts, users RESTART IDENTITY CASCADE")
	return err
}

// HealthCheck verifies the pool can serve a query.
func HealthCheck(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

func CoreTables() []string {
	out := make([]string, len(coreTables))
	copy(out, coreTables)
	return out
}

func isCoreTable(name string) bool {
	for _, t := range coreTables {
		if t == name {
			return true
		}
	}
	return false
}
