package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/windowwise/internal/common"
)

// ImportRecord describes one catalog import.
type ImportRecord struct {
	ImportedAt time.Time
	ID         string
	Source     string
	Rows       int
	Loaded     int
	Dropped    int
}

// RecordImport appends an entry to the import history.
func (s *SQLiteStorage) RecordImport(ctx context.Context, rec ImportRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(rec.ID, "id"); err != nil {
		return err
	}
	if err := validateString(rec.Source, "source"); err != nil {
		return err
	}
	if rec.ImportedAt.IsZero() {
		rec.ImportedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO catalog_imports (id, source, row_count, loaded, dropped, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Source, rec.Rows, rec.Loaded, rec.Dropped, rec.ImportedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	return nil
}

// LatestImport returns the most recent import, or common.ErrNotFound.
func (s *SQLiteStorage) LatestImport(ctx context.Context) (*ImportRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var rec ImportRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, row_count, loaded, dropped, imported_at
		FROM catalog_imports
		ORDER BY imported_at DESC
		LIMIT 1
	`).Scan(&rec.ID, &rec.Source, &rec.Rows, &rec.Loaded, &rec.Dropped, &rec.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest import: %w", err)
	}
	return &rec, nil
}
