package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"relay-chat/config"
	"relay-chat/pkg/database"
)

const usage = `
Relay Chat - Database CLI Tool

Usage:
  migrate [flags] command

Commands:
  up          Create or update the schema
  status      Show database connection status and table sizes
  seed        Create the admin account (and demo users with -demo-users)
  truncate    Truncate all tables (DANGEROUS)

Flags:
  -admin-login string  Admin login for seeding (default "admin")
  -admin-pass string   Admin password for seeding (default "admin")
  -demo-users int      Number of demo users to create when seeding

Examples:
  go run ./cmd/migrate up
  go run ./cmd/migrate -admin-pass s3cret seed
`

func main() {
	adminLogin := flag.String("admin-login", "admin", "Admin login for seeding")
	adminPass := flag.String("admin-pass", "admin", "Admin password for seeding")
	demoUsers := flag.Int("demo-users", 0, "Number of demo users to create when seeding")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
	}
	flag.Parse()

	command, ok := parseCommand(flag.Args(), os.Stderr)
	if !ok {
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	switch command {
	case "up":
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")
	case "status":
		showStatus(ctx, db)
	case "seed":
		seedCfg := database.DefaultSeedConfig()
		seedCfg.AdminLogin = *adminLogin
		seedCfg.AdminPassword = *adminPass
		seedCfg.DemoUsers = *demoUsers
		res, err := database.Seed(ctx, db, seedCfg)
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Printf("Admin user %s ready (ID: %d), demo users: %d", seedCfg.AdminLogin, res.AdminID, len(res.DemoUsers))
	case "truncate":
		if err := database.TruncateAll(ctx, db); err != nil {
			log.Fatalf("Truncate failed: %v", err)
		}
		log.Println("All tables truncated")
	}
}

var commands = map[string]bool{"up": true, "status": true, "seed": true, "truncate": true}

// parseCommand returns the subcommand, or writes usage to w when it is missing or unknown.
func parseCommand(args []string, w io.Writer) (string, bool) {
	if len(args) < 1 {
		fmt.Fprint(w, usage)
		return "", false
	}
	if !commands[args[0]] {
		fmt.Fprintf(w, "Unknown command: %s\n", args[0])
		fmt.Fprint(w, usage)
		return "", false
	}
	return args[0], true
}

func showStatus(ctx context.Context, db *sql.DB) {
	if err := database.HealthCheck(ctx, db); err != nil {
		log.Fatalf("Health check failed: %v", err)
	}
	log.Println("Database connection: OK")

	for _, table := range database.CoreTables() {
		exists, err := database.TableExists(ctx, db, table)
		if err != nil {
			log.Printf("Error checking table %s: %v", table, err)
			continue
		}
		if !exists {
			log.Printf("Table %-10s does not exist", table)
			continue
		}
		count, _ := database.TableCount(ctx, db, table)
		log.Printf("Table %-10s exists (%d rows)", table, count)
	}
}
