// Package service defines the contracts shared between the application's layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/windowwise/internal/model"
)

// CatalogStore persists an imported product catalog.
type CatalogStore interface {
	ReplaceCatalog(ctx context.Context, products []model.Product) error
	ListProducts(ctx context.Context) ([]model.Product, error)
	CountProducts(ctx context.Context) (int, error)
	Migrate(ctx context.Context) error
	Close() error
}

// ComparisonWriter publishes a ranked comparison table somewhere outside the
// terminal.
type ComparisonWriter interface {
	Write(ctx context.Context, recs []model.Recommendation, summary *ComparisonSummary) error
}

// ComparisonSummary describes the run that produced a comparison.
type ComparisonSummary struct {
	GeneratedAt time.Time
	RunID       string
	Location    string
	ClimateZone string
	CatalogSize int
}

// RetryOptions configures retry behavior.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// WithDefaults fills unset fields.
func (o RetryOptions) WithDefaults() RetryOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = 100 * time.Millisecond
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = 30 * time.Second
	}
	if o.Multiplier <= 0 {
		o.Multiplier = 2.0
	}
	return o
}
