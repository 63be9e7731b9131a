package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the user_version Migrate must leave the database at.
const ExpectedSchemaVersion = 2

type migration struct {
	name       string
	statements []string
}

// schema lists migrations in order; the database's user_version is the
// number of entries already applied.
var schema = []migration{
	{
		name: "product catalog",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS products (
				row_id          INTEGER PRIMARY KEY AUTOINCREMENT,
				position        INTEGER NOT NULL,
				product_id      INTEGER NOT NULL DEFAULT 0,
				brand           TEXT    NOT NULL,
				model           TEXT    NOT NULL DEFAULT '',
				series          TEXT    NOT NULL DEFAULT '',
				window_type     TEXT    NOT NULL,
				material        TEXT    NOT NULL DEFAULT '',
				glass_type      TEXT    NOT NULL DEFAULT '',
				energy_rating   TEXT    NOT NULL DEFAULT '',
				features        TEXT    NOT NULL DEFAULT '',
				price_low       INTEGER NOT NULL,
				price_high      INTEGER NOT NULL DEFAULT 0,
				u_factor        REAL    NOT NULL DEFAULT 0,
				shgc            REAL    NOT NULL DEFAULT 0,
				stc             INTEGER NOT NULL DEFAULT 0,
				warranty_years  INTEGER NOT NULL DEFAULT 0,
				popularity      INTEGER NOT NULL DEFAULT 0,
				customer_rating REAL    NOT NULL DEFAULT 0,
				extra           TEXT    NOT NULL DEFAULT '[]'
			)`,
			`CREATE INDEX idx_products_position ON products(position)`,
			`CREATE INDEX idx_products_brand ON products(brand)`,
		},
	},
	{
		name: "catalog import history",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS catalog_imports (
				id          TEXT PRIMARY KEY,
				source      TEXT NOT NULL,
				row_count   INTEGER NOT NULL,
				loaded      INTEGER NOT NULL,
				dropped     INTEGER NOT NULL,
				imported_at DATETIME NOT NULL
			)`,
		},
	},
}

// Migrate applies any pending migrations, each in its own transaction.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}
	for version := current + 1; version <= len(schema); version++ {
		if err := s.apply(ctx, version, schema[version-1]); err != nil {
			return err
		}
	}

	if current, err = s.schemaVersion(ctx); err != nil {
		return err
	}
	if current != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, current)
	}
	return nil
}

func (s *SQLiteStorage) apply(ctx context.Context, version int, m migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, stmt := range m.statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", version, m.name, err)
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", version, err)
	}

	slog.Debug("Applied migration", "version", version, "name", m.name)
	return nil
}

func (s *SQLiteStorage) schemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}
