package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/tablemarket-server/internal/logger"
)

// Seeder inserts restaurants into an empty restaurants table.
type Seeder struct {
	source Source
	logger *logger.Logger
}

// NewSeeder creates a Seeder reading from source.
func NewSeeder(source Source, logger *logger.Logger) *Seeder {
	return &Seeder{source: source, logger: logger}
}

// Seed loads the restaurant list and inserts it in one transaction.
// A table that already has rows is left as is.
func (s *Seeder) Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		s.logger.Info("Seeder: restaurants already present, skipping", "count", count)
		return nil
	}

	restaurants, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load restaurants: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `INSERT INTO restaurants (id, name, cuisine, url, image_url, address, phone)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, r := range restaurants {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		if _, err := tx.ExecContext(ctx, query,
			r.ID, r.Name, r.Cuisine, r.URL, r.ImageURL, r.Address, r.Phone,
		); err != nil {
			return fmt.Errorf("failed to insert restaurant %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit restaurants: %w", err)
	}

	s.logger.Info("Seeder: restaurants inserted", "count", len(restaurants))
	return nil
}
