package database

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	AdminLogin       string
	AdminPassword    string
	AdminDisplayName string
	DemoUsers        int
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		AdminLogin:       "admin",
		AdminPassword:    "admin",
		AdminDisplayName: "Administrator",
	}
}

// SeedResult reports what Seed touched.
type SeedResult struct {
	AdminID   int64
	DemoUsers []int64
}

// Seed creates the admin account and optional demo users. Existing logins
// are left untouched so seeding can be repeated.
func Seed(ctx context.Context, db *sql.DB, cfg *SeedConfig) (*SeedResult, error) {
	adminID, err := ensureUser(ctx, db, cfg.AdminLogin, cfg.AdminPassword, cfg.AdminDisplayName, true)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	result := &SeedResult{AdminID: adminID}
	for i := 1; i <= cfg.DemoUsers; i++ {
		login := fmt.Sprintf("user%d", i)
		id, err := ensureUser(ctx, db, login, login, fmt.Sprintf("Demo User %d", i), false)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", login, err)
		}
		result.DemoUsers = append(result.DemoUsers, id)
	}
	return result, nil
}

func ensureUser(ctx context.Context, db *sql.DB, login, password, displayName string, isAdmin bool) (int64, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var id int64
	err = db.QueryRowContext(ctx,
		`INSERT INTO users (login, password, display_name, is_admin)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (login) DO UPDATE SET login = EXCLUDED.login
		 RETURNING id`,
		login, string(hashedPassword), displayName, isAdmin,
	).Scan(&id)
	return id, err
}
