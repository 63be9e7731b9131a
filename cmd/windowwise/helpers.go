package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/windowwise/internal/catalog"
	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/config"
	"github.com/Veraticus/windowwise/internal/engine"
	"github.com/Veraticus/windowwise/internal/location"
	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/pricing"
	"github.com/Veraticus/windowwise/internal/service"
	"github.com/Veraticus/windowwise/internal/sheets"
	"github.com/Veraticus/windowwise/internal/storage"
)

// initStorage opens and migrates the catalog database.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadCatalog returns the products to score, either from the configured
// source or from the imported database copy.
func loadCatalog(ctx context.Context, cfg *config.Config) (catalog.Result, error) {
	if !cfg.Catalog.UseStore {
		return catalog.NewLoader().Load(ctx, cfg.Catalog.Source), nil
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return catalog.Result{}, err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close storage", "error", closeErr)
		}
	}()

	products, err := store.ListProducts(ctx)
	if err != nil {
		return catalog.Result{}, fmt.Errorf("failed to read stored catalog: %w", err)
	}
	if len(products) == 0 {
		return catalog.Result{}, common.NewUserError(
			"No catalog has been imported. Run 'windowwise catalog import' first.",
			common.ErrEmptyCatalog)
	}

	slog.Info("Loaded catalog", "source", store.Path(), "count", len(products))
	return catalog.Result{
		Products: products,
		Source:   store.Path(),
		Stats:    catalog.ParseStats{Rows: len(products), Loaded: len(products)},
	}, nil
}

// runContext is everything a recommendation run needs besides the answers.
type runContext struct {
	Catalog  catalog.Result
	RunID    string
	Detected string
}

// prepareRun loads the catalog and, when enabled, detects the user's
// location concurrently. Detection failures are logged, never returned.
func prepareRun(ctx context.Context, cfg *config.Config, detect bool) (*runContext, error) {
	run := &runContext{RunID: uuid.NewString()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := loadCatalog(gctx, cfg)
		if err != nil {
			return err
		}
		run.Catalog = result
		return nil
	})

	if detect && cfg.Location.Detect {
		g.Go(func() error {
			loc, err := location.NewDetector(cfg.Location.Endpoint).Detect(gctx)
			if err != nil {
				slog.Debug("Location detection failed", "error", err)
				return nil
			}
			run.Detected = loc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if run.Catalog.UsedFallback {
		slog.Warn("Using built-in sample catalog", "run_id", run.RunID, "reason", run.Catalog.Err)
	}
	return run, nil
}

func newEngine(cfg *config.Config) *engine.RecommendationEngine {
	return engine.NewWithConfig(
		pricing.NewCalculator(),
		catalog.Manufacturers(),
		pricing.InstallRequirements,
		cfg.EngineOptions(),
	)
}

func newSummary(run *runContext, locationText string, zone climate.Zone) *service.ComparisonSummary {
	return &service.ComparisonSummary{
		GeneratedAt: time.Now(),
		RunID:       run.RunID,
		Location:    locationText,
		ClimateZone: zone.Label(),
		CatalogSize: len(run.Catalog.Products),
	}
}

// exportToSheets publishes recs with the configured Google Sheets credentials.
func exportToSheets(ctx context.Context, recs []model.Recommendation, summary *service.ComparisonSummary) error {
	sheetsCfg, err := config.LoadSheetsConfig()
	if err != nil {
		return common.NewUserError("Google Sheets is not configured. Run 'windowwise auth sheets' first.", err)
	}

	writer, err := sheets.NewWriter(ctx, *sheetsCfg, slog.Default())
	if err != nil {
		return err
	}
	return writeComparison(ctx, writer, recs, summary)
}

func writeComparison(ctx context.Context, w service.ComparisonWriter, recs []model.Recommendation, summary *service.ComparisonSummary) error {
	if err := w.Write(ctx, recs, summary); err != nil {
		return fmt.Errorf("failed to export comparison: %w", err)
	}
	slog.Info("Exported comparison to Google Sheets", "run_id", summary.RunID, "count", len(recs))
	return nil
}
