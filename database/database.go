// Package database owns the schema and the one-shot initialization routine
// that runs before the service starts handling traffic.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Seeder fills reference tables after the schema exists.
type Seeder interface {
	Seed(ctx context.Context, db *sql.DB) error
}

// Migrate applies all pending migrations. Already-applied migrations are skipped.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// Initialize opens a dedicated connection, creates the tables, runs the
// seeder and closes the connection again. A nil seeder skips seeding.
func Initialize(ctx context.Context, dsn string, seeder Seeder) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		return err
	}

	if seeder == nil {
		return nil
	}

	if err := seeder.Seed(ctx, db); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return nil
}
