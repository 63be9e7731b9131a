package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/windowwise/internal/cli"
	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/config"
	"github.com/Veraticus/windowwise/internal/export"
	"github.com/Veraticus/windowwise/internal/location"
	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/questionnaire"
	"github.com/Veraticus/windowwise/internal/tui"
	"github.com/Veraticus/windowwise/internal/tui/themes"
)

func wizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer the questionnaire interactively",
		Long: `Walk through five questions about your home and see ranked recommendations.

The full-screen interface includes a chat panel for questions about cost,
energy efficiency and frame materials. Use --plain on terminals that cannot
run it.`,
		Args: cobra.NoArgs,
		RunE: runWizard,
	}
	addWizardFlags(cmd)
	return cmd
}

func addWizardFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("plain", false, "use line-by-line prompts instead of the full-screen interface")
	cmd.Flags().Bool("sheets", false, "export the final comparison to Google Sheets")
	cmd.Flags().String("theme", "", fmt.Sprintf("color theme (%s)", strings.Join(themes.Names(), ", ")))
}

func runWizard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		viper.Set("tui.theme", theme)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	plain, _ := cmd.Flags().GetBool("plain")

	// The full-screen wizard detects the location in the background itself.
	run, err := prepareRun(ctx, cfg, plain)
	if err != nil {
		return err
	}
	engine := newEngine(cfg)

	var (
		answers model.Answers
		recs    []model.Recommendation
	)

	if plain {
		handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
		wctx := handler.HandleInterrupts(ctx)

		var opts []cli.WizardOption
		if run.Detected != "" {
			opts = append(opts, cli.WithDefaultLocation(run.Detected))
		}
		answers, err = cli.NewWizard(cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run(wctx, questionnaire.NewSession())
		if err != nil {
			if handler.WasInterrupted() || errors.Is(err, cli.ErrWizardAborted) {
				return nil
			}
			return err
		}

		recs = engine.Recommend(run.Catalog.Products, answers, answers.Location())
		if _, err := fmt.Fprint(cmd.OutOrStdout(), "\n"+cli.RenderRecommendations(recs, climate.Lookup(answers.Location()))); err != nil {
			return err
		}
	} else {
		opts := []tui.Option{
			tui.WithRecommender(engine),
			tui.WithCatalog(run.Catalog.Products),
			tui.WithTheme(themes.GetTheme(cfg.TUI.Theme)),
		}
		if cfg.Location.Detect {
			opts = append(opts, tui.WithDetector(location.NewDetector(cfg.Location.Endpoint)))
		}

		result, err := tui.Run(ctx, opts...)
		if errors.Is(err, tui.ErrAborted) {
			slog.Debug("Wizard closed before results")
			return nil
		}
		if err != nil {
			return err
		}
		answers, recs = result.Answers, result.Recommendations

		// Leave the comparison in the scrollback after the alternate screen closes.
		if len(recs) > 0 {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), export.RenderTable(recs)); err != nil {
				return err
			}
		}
	}

	slog.Info("Wizard complete", "run_id", run.RunID, "location", answers.Location(), "results", len(recs))

	if toSheets, _ := cmd.Flags().GetBool("sheets"); toSheets {
		return exportToSheets(ctx, recs, newSummary(run, answers.Location(), climate.Lookup(answers.Location())))
	}
	return nil
}
