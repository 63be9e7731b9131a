package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/windowwise/internal/cli"
	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/config"
	"github.com/Veraticus/windowwise/internal/engine"
	"github.com/Veraticus/windowwise/internal/export"
	"github.com/Veraticus/windowwise/internal/model"
)

// Output formats.
const (
	formatTable = "table"
	formatCards = "cards"
	formatJSON  = "json"
	formatCSV   = "csv"
)

type recommendOptions struct {
	location   string
	budget     string
	homeAge    string
	climate    string
	format     string
	output     string
	filter     string
	priorities []string
	types      []string
	limit      int
	sheets     bool
}

func recommendCmd() *cobra.Command {
	var opts recommendOptions

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend windows without the interactive wizard",
		Long: `Score the catalog against answers given as flags and print the top matches.

Unanswered questions count as "no preference". Example:

  windowwise recommend --location "Seattle, WA" --budget mid \
    --priority energy --type Sliding --home-age medium`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.location, "location", "l", "", `location as "City, ST"`)
	cmd.Flags().StringVarP(&opts.budget, "budget", "b", "", "budget tier (budget, mid, premium)")
	cmd.Flags().StringSliceVarP(&opts.priorities, "priority", "p", nil, "priority (energy, durability, maintenance, cost); repeatable")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "window type (Double-Hung, Casement, Sliding, Picture, Awning); repeatable")
	cmd.Flags().StringVar(&opts.homeAge, "home-age", "", "home age (new, medium, old, historic)")
	cmd.Flags().StringVar(&opts.climate, "climate", "", "climate (cold, hot, mixed); used when the location is not recognized")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, fmt.Sprintf("number of results, 1-%d (default engine.limit)", engine.MaxResults))
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, cards, json, csv)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "only show comparison rows containing this text (table and csv)")
	cmd.Flags().BoolVar(&opts.sheets, "sheets", false, "also export the comparison to Google Sheets")

	return cmd
}

func runRecommend(cmd *cobra.Command, opts recommendOptions) error {
	ctx := cmd.Context()

	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if err := validateFilter(opts.format, opts.filter); err != nil {
		return err
	}
	answers, err := buildAnswers(opts)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.limit != 0 {
		cfg.Engine.Limit = opts.limit
		if err := cfg.Validate(); err != nil {
			return common.NewUserError(fmt.Sprintf("--limit must be between 1 and %d", engine.MaxResults), err)
		}
	}

	run, err := prepareRun(ctx, cfg, answers.Location() == "")
	if err != nil {
		return err
	}
	if answers.Location() == "" && run.Detected != "" {
		answers.Set(model.QuestionLocation, run.Detected)
		slog.Info("Using detected location", "location", run.Detected)
	}

	loc := answers.Location()
	zone := climate.Lookup(loc)
	recs := newEngine(cfg).Recommend(run.Catalog.Products, answers, loc)
	slog.Debug("Scored catalog", "run_id", run.RunID, "catalog", len(run.Catalog.Products), "results", len(recs))

	w := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				slog.Warn("Failed to close output file", "error", closeErr)
			}
		}()
		w = f
	}

	rep := newReport(run.RunID, answers, zone, recs)
	rep.filter = opts.filter
	if err := renderReport(w, opts.format, rep); err != nil {
		return err
	}

	if opts.sheets {
		return exportToSheets(ctx, recs, newSummary(run, loc, zone))
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatCards, formatJSON, formatCSV:
		return nil
	default:
		return common.NewUserError(
			fmt.Sprintf("Unknown format %q: use table, cards, json or csv.", format),
			common.ErrInvalidConfig)
	}
}

// validateFilter rejects --filter for formats that are not comparison tables.
func validateFilter(format, filter string) error {
	if strings.TrimSpace(filter) == "" || format == formatTable || format == formatCSV {
		return nil
	}
	return common.NewUserError(
		fmt.Sprintf("--filter only applies to the table and csv formats, not %s.", format),
		common.ErrInvalidConfig)
}

// buildAnswers converts flag values into questionnaire answers.
func buildAnswers(opts recommendOptions) (model.Answers, error) {
	answers := model.NewAnswers()

	if loc := strings.TrimSpace(opts.location); loc != "" {
		if climate.RegionFromLocation(loc) == "" {
			return nil, invalidFlag("location", loc, `"City, ST"`)
		}
		answers.Set(model.QuestionLocation, loc)
	}

	if opts.budget != "" {
		tier, ok := model.ParseBudgetTier(opts.budget)
		if !ok {
			return nil, invalidFlag("budget", opts.budget, "budget, mid or premium")
		}
		answers.Set(model.QuestionBudget, string(tier))
	}

	for _, raw := range opts.priorities {
		p, ok := model.ParsePriority(raw)
		if !ok {
			return nil, invalidFlag("priority", raw, "energy, durability, maintenance or cost")
		}
		if !answers.HasPriority(p) {
			answers.Toggle(model.QuestionPriority, string(p))
		}
	}

	for _, raw := range opts.types {
		t, ok := model.ParseWindowType(raw)
		if !ok {
			return nil, invalidFlag("type", raw, "Double-Hung, Casement, Sliding, Picture or Awning")
		}
		if !answers.WantsWindowType(t) {
			answers.Toggle(model.QuestionWindowTypes, string(t))
		}
	}

	if opts.homeAge != "" {
		age, ok := model.ParseHomeAge(opts.homeAge)
		if !ok {
			return nil, invalidFlag("home-age", opts.homeAge, "new, medium, old or historic")
		}
		answers.Set(model.QuestionHomeAge, string(age))
	}

	if opts.climate != "" {
		c, ok := model.ParseClimate(opts.climate)
		if !ok {
			return nil, invalidFlag("climate", opts.climate, "cold, hot or mixed")
		}
		answers.Set(model.QuestionClimate, string(c))
	}

	return answers, nil
}

func invalidFlag(name, value, want string) error {
	return common.NewUserError(
		fmt.Sprintf("Invalid --%s %q: expected %s.", name, value, want),
		common.ErrInvalidConfig)
}

// report is the machine-readable result of a run.
type report struct {
	RunID           string        `json:"run_id"`
	Location        string        `json:"location,omitempty"`
	ClimateZone     string        `json:"climate_zone"`
	Climate         model.Climate `json:"climate"`
	Recommendations []reportItem  `json:"recommendations"`
	recs            []model.Recommendation
	zone            climate.Zone
	filter          string
}

type reportItem struct {
	Brand        string   `json:"brand"`
	Series       string   `json:"series,omitempty"`
	Model        string   `json:"model,omitempty"`
	WindowType   string   `json:"window_type"`
	Material     string   `json:"material"`
	Reasons      []string `json:"reasons"`
	Rank         int      `json:"rank"`
	Score        int      `json:"score"`
	Window       int      `json:"window_cost"`
	Installation int      `json:"installation_cost"`
	Total        int      `json:"total_cost"`
	UFactor      float64  `json:"u_factor,omitempty"`
	SHGC         float64  `json:"shgc,omitempty"`
}

func newReport(runID string, answers model.Answers, zone climate.Zone, recs []model.Recommendation) report {
	items := make([]reportItem, 0, len(recs))
	for i, rec := range recs {
		p := rec.Product
		items = append(items, reportItem{
			Rank:         i + 1,
			Brand:        p.Brand,
			Series:       p.Series,
			Model:        p.Model,
			WindowType:   p.TypeLabel(),
			Material:     p.FrameLabel(),
			Score:        rec.Score,
			Window:       rec.Pricing.Window,
			Installation: rec.Pricing.Installation,
			Total:        rec.Pricing.Total,
			UFactor:      p.UFactor,
			SHGC:         p.SHGC,
			Reasons:      rec.Reasons,
		})
	}
	return report{
		RunID:           runID,
		Location:        answers.Location(),
		ClimateZone:     zone.Label(),
		Climate:         engine.ResolveClimate(answers, answers.Location()),
		Recommendations: items,
		recs:            recs,
		zone:            zone,
	}
}

func renderReport(w io.Writer, format string, rep report) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode recommendations: %w", err)
		}
		return nil

	case formatCSV:
		return export.WriteRows(w, export.FilterRows(export.Rows(rep.recs), rep.filter))

	case formatCards:
		_, err := fmt.Fprint(w, cli.RenderRecommendations(rep.recs, rep.zone))
		return err

	default:
		var b strings.Builder
		b.WriteString(cli.FormatTitle("Window Recommendations"))
		b.WriteString("\n")
		b.WriteString(cli.SubtleStyle.Render("Climate zone: " + rep.zone.Label()))
		b.WriteString("\n\n")
		rows := export.FilterRows(export.Rows(rep.recs), rep.filter)
		switch {
		case len(rep.recs) == 0:
			b.WriteString(cli.FormatWarning("No windows match your selections. Try adding more window types."))
		case len(rows) == 0:
			b.WriteString(cli.FormatWarning(fmt.Sprintf("No recommendations contain %q.", strings.TrimSpace(rep.filter))))
		default:
			b.WriteString(export.RenderRows(rows))
		}
		b.WriteString("\n")
		_, err := fmt.Fprint(w, b.String())
		return err
	}
}
