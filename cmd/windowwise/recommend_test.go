package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/windowwise/internal/catalog"
	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/engine"
	"github.com/Veraticus/windowwise/internal/export"
	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/pricing"
	"github.com/Veraticus/windowwise/internal/service"
	"github.com/Veraticus/windowwise/internal/sheets"
	"github.com/Veraticus/windowwise/internal/testutil"
)

func TestBuildAnswers(t *testing.T) {
	tests := []struct {
		check   func(t *testing.T, a model.Answers)
		name    string
		wantErr string
		opts    recommendOptions
	}{
		{
			name: "no flags means no preferences",
			opts: recommendOptions{},
			check: func(t *testing.T, a model.Answers) {
				t.Helper()
				assert.Empty(t, a.Location())
				assert.False(t, a.Answered(model.QuestionBudget))
				assert.Empty(t, a.WindowTypes())
			},
		},
		{
			name: "all flags",
			opts: recommendOptions{
				location:   " Seattle, WA ",
				budget:     "MID",
				priorities: []string{"energy", "cost", "energy"},
				types:      []string{"sliding", "awning"},
				homeAge:    "old",
				climate:    "cold",
			},
			check: func(t *testing.T, a model.Answers) {
				t.Helper()
				assert.Equal(t, "Seattle, WA", a.Location())
				assert.Equal(t, model.BudgetMid, a.Budget())
				assert.Equal(t, []model.Priority{model.PriorityEnergy, model.PriorityCost}, a.Priorities())
				assert.Equal(t, []model.WindowType{model.WindowSliding, model.WindowAwning}, a.WindowTypes())
				assert.Equal(t, model.HomeAgeOld, a.HomeAge())
				assert.Equal(t, model.ClimateCold, a.Climate())
			},
		},
		{
			name: "unknown region is accepted",
			opts: recommendOptions{location: "Portland, OR"},
			check: func(t *testing.T, a model.Answers) {
				t.Helper()
				assert.Equal(t, "Portland, OR", a.Location())
			},
		},
		{name: "location without region", opts: recommendOptions{location: "Seattle"}, wantErr: "--location"},
		{name: "bad budget", opts: recommendOptions{budget: "cheap"}, wantErr: "--budget"},
		{name: "bad priority", opts: recommendOptions{priorities: []string{"looks"}}, wantErr: "--priority"},
		{name: "bad type", opts: recommendOptions{types: []string{"Bay"}}, wantErr: "--type"},
		{name: "bad home age", opts: recommendOptions{homeAge: "ancient"}, wantErr: "--home-age"},
		{name: "bad climate", opts: recommendOptions{climate: "arctic"}, wantErr: "--climate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers, err := buildAnswers(tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidConfig)

				var userErr *common.UserError
				require.True(t, errors.As(err, &userErr))
				assert.Contains(t, userErr.UserMessage, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, answers)
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{formatTable, formatCards, formatJSON, formatCSV} {
		assert.NoError(t, validateFormat(format), format)
	}

	err := validateFormat("xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func seattleAnswers() model.Answers {
	a := model.NewAnswers()
	a.Set(model.QuestionLocation, "Seattle, WA")
	a.Set(model.QuestionBudget, string(model.BudgetMid))
	a.Toggle(model.QuestionPriority, string(model.PriorityEnergy))
	a.Toggle(model.QuestionWindowTypes, string(model.WindowSliding))
	a.Set(model.QuestionHomeAge, string(model.HomeAgeMedium))
	return a
}

func seattleReport(t *testing.T) report {
	t.Helper()
	answers := seattleAnswers()
	e := engine.New(pricing.NewCalculator(), catalog.Manufacturers(), pricing.InstallRequirements)
	recs := e.Recommend(testutil.SampleCatalog(), answers, answers.Location())
	require.NotEmpty(t, recs)
	return newReport("run-1", answers, climate.Lookup(answers.Location()), recs)
}

func TestRenderReport(t *testing.T) {
	rep := seattleReport(t)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderReport(&buf, formatJSON, rep))

		var decoded report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "run-1", decoded.RunID)
		assert.Equal(t, "Seattle, WA", decoded.Location)
		assert.Equal(t, "4C - Mixed-Humid, Cold Winters", decoded.ClimateZone)
		assert.Equal(t, model.ClimateCold, decoded.Climate)
		require.Len(t, decoded.Recommendations, len(rep.recs))

		first := decoded.Recommendations[0]
		assert.Equal(t, 1, first.Rank)
		assert.Equal(t, "Milgard", first.Brand)
		assert.Equal(t, first.Window+first.Installation, first.Total)
		assert.NotEmpty(t, first.Reasons)
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderReport(&buf, formatCSV, rep))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, len(rep.recs)+1)
		assert.Equal(t, export.Header, records[0])
		assert.Equal(t, "Milgard", records[1][1])
	})

	t.Run("cards", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderReport(&buf, formatCards, rep))
		assert.Contains(t, buf.String(), "#1 Milgard Ultra C650")
		assert.Contains(t, buf.String(), "Climate zone: 4C")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderReport(&buf, formatTable, rep))
		out := buf.String()
		assert.Contains(t, out, "Window Recommendations")
		assert.Contains(t, out, "Milgard")
		assert.Contains(t, out, "Installation")
	})

	t.Run("table without results", func(t *testing.T) {
		empty := newReport("run-2", seattleAnswers(), climate.Lookup("Seattle, WA"), nil)
		var buf bytes.Buffer
		require.NoError(t, renderReport(&buf, formatTable, empty))
		assert.Contains(t, buf.String(), "No windows match your selections")
	})
}

func TestRenderReport_Filter(t *testing.T) {
	answers := model.NewAnswers()
	answers.Set(model.QuestionLocation, "Seattle, WA")
	e := engine.New(pricing.NewCalculator(), catalog.Manufacturers(), pricing.InstallRequirements)
	recs := e.Recommend(testutil.SampleCatalog(), answers, answers.Location())
	require.Greater(t, len(recs), 1)
	rep := newReport("run-3", answers, climate.Lookup(answers.Location()), recs)

	var andersen []string
	for _, row := range export.Rows(recs) {
		if row[1] == "Andersen" {
			andersen = row
		}
	}
	require.NotNil(t, andersen)

	t.Run("csv keeps overall rank", func(t *testing.T) {
		filtered := rep
		filtered.filter = "FIBREX"
		var buf bytes.Buffer
		require.NoError(t, renderReport(&buf, formatCSV, filtered))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, andersen, records[1])
	})

	t.Run("table warns when nothing matches", func(t *testing.T) {
		filtered := rep
		filtered.filter = " Bay "
		var buf bytes.Buffer
		require.NoError(t, renderReport(&buf, formatTable, filtered))
		assert.Contains(t, buf.String(), `No recommendations contain "Bay"`)
		assert.NotContains(t, buf.String(), "Andersen")
	})
}

func TestValidateFilter(t *testing.T) {
	assert.NoError(t, validateFilter(formatTable, "milgard"))
	assert.NoError(t, validateFilter(formatCSV, "milgard"))
	assert.NoError(t, validateFilter(formatJSON, " "))

	for _, format := range []string{formatJSON, formatCards} {
		err := validateFilter(format, "milgard")
		require.Error(t, err, format)
		assert.ErrorIs(t, err, common.ErrInvalidConfig)
	}
}

func TestWriteComparison(t *testing.T) {
	rep := seattleReport(t)
	summary := &service.ComparisonSummary{RunID: "run-1", Location: "Seattle, WA", ClimateZone: rep.ClimateZone}

	t.Run("passes recommendations through", func(t *testing.T) {
		w := sheets.NewMockWriter()
		require.NoError(t, writeComparison(context.Background(), w, rep.recs, summary))

		calls := w.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, rep.recs, calls[0].Recommendations)
		assert.Same(t, summary, calls[0].Summary)
	})

	t.Run("wraps writer errors", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		w := sheets.NewMockWriter()
		w.SetWriteError(boom)

		err := writeComparison(context.Background(), w, rep.recs, summary)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to export comparison"))
	})
}
