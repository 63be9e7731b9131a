package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Veraticus/windowwise/internal/catalog"
	"github.com/Veraticus/windowwise/internal/cli"
	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/config"
	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/storage"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and import the product catalog",
		Long: `Manage the window product catalog.

The catalog is a CSV file or URL (catalog.source). Importing copies it into the
local database so later runs work offline with catalog.use_store enabled.`,
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogImportCmd())
	cmd.AddCommand(catalogValidateCmd())
	cmd.AddCommand(catalogStatusCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			result, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if result.UsedFallback {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(
					fmt.Sprintf("Could not load %s; showing the built-in sample catalog.", result.Source))); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderProducts(result.Products))
			return err
		},
	}
}

func catalogImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [source]",
		Short: "Import a catalog CSV into the local database",
		Long: `Parse a catalog CSV file or URL and replace the stored catalog with it.

The source defaults to catalog.source. The import is refused if the source
cannot be read, so a failed download never replaces a good catalog with the
built-in sample.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCatalogImport,
	}
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	return cmd
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	source := cfg.Catalog.Source
	if len(args) == 1 {
		source = args[0]
		if !catalog.IsURL(source) {
			source = config.ExpandPath(source)
		}
	}

	result := catalog.NewLoader().Load(ctx, source)
	if result.UsedFallback {
		return common.NewUserError(
			fmt.Sprintf("Could not read catalog %s.", source),
			fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, result.Err))
	}
	if len(result.Products) == 0 {
		return common.NewUserError(fmt.Sprintf("Catalog %s has no usable products.", source), common.ErrEmptyCatalog)
	}

	products := result.Products
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close storage", "error", closeErr)
		}
	}()

	var stored func()
	finish := func() {}
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress {
		bar := cli.NewImportProgress(cmd.ErrOrStderr(), len(products))
		stored = func() { _ = bar.Add(1) }
		finish = func() { _ = bar.Finish() }
	}
	err = store.ReplaceCatalogWithProgress(ctx, products, stored)
	finish()
	if err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}

	rec := storage.ImportRecord{
		ID:      uuid.NewString(),
		Source:  source,
		Rows:    result.Stats.Rows,
		Loaded:  len(products),
		Dropped: result.Stats.Dropped,
	}
	if err := store.RecordImport(ctx, rec); err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	slog.Info("Imported catalog", "source", source, "count", len(products), "dropped", result.Stats.Dropped, "import_id", rec.ID)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
		fmt.Sprintf("Imported %d products into %s (%d rows skipped)", len(products), store.Path(), result.Stats.Dropped)))
	return err
}

func catalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [source]",
		Short: "Check that a catalog CSV parses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			source := cfg.Catalog.Source
			if len(args) == 1 {
				source = args[0]
			}

			result := catalog.NewLoader().Load(cmd.Context(), source)
			out := cmd.OutOrStdout()
			if result.UsedFallback {
				return common.NewUserError(fmt.Sprintf("Catalog %s is not usable.", source),
					fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, result.Err))
			}

			_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf(
				"%s: %d rows, %d products loaded, %d dropped",
				source, result.Stats.Rows, result.Stats.Loaded, result.Stats.Dropped)))
			return err
		},
	}
}

func catalogStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the most recent catalog import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			out := cmd.OutOrStdout()
			latest, err := store.LatestImport(ctx)
			if errors.Is(err, common.ErrNotFound) {
				_, err = fmt.Fprintln(out, cli.FormatInfo("No catalog has been imported yet."))
				return err
			}
			if err != nil {
				return err
			}

			count, err := store.CountProducts(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, cli.RenderBox(cli.FolderIcon+" Catalog", fmt.Sprintf(
				"Source:   %s\nImported: %s\nProducts: %d stored (%d rows, %d dropped)",
				latest.Source, latest.ImportedAt.Local().Format(time.DateTime), count, latest.Rows, latest.Dropped)))
			return err
		},
	}
}

func renderProducts(products []model.Product) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Brand,
			p.Series,
			p.TypeLabel(),
			p.FrameLabel(),
			fmt.Sprintf("$%d-%d", p.PriceRangeLow, p.PriceRangeHigh),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(cli.SubtleColor)).
		Headers("ID", "Brand", "Series", "Type", "Frame", "Price").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.String() + "\n" + cli.SubtleStyle.Render(fmt.Sprintf("%d products", len(products)))
}
