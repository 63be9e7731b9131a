package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/model"
)

// ErrAborted is returned when the user quits before seeing results.
var ErrAborted = errors.New("wizard aborted")

// Result is what the user ended the session with.
type Result struct {
	Answers         model.Answers
	Recommendations []model.Recommendation
	Zone            climate.Zone
}

// Run starts the full-screen wizard and blocks until the user quits.
func Run(ctx context.Context, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Recommender == nil {
		return Result{}, fmt.Errorf("recommender is required")
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("TUI error: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.result()
}

func (m Model) result() (Result, error) {
	if m.aborted {
		return Result{}, ErrAborted
	}
	return Result{
		Answers:         m.session.Answers(),
		Recommendations: m.recs,
		Zone:            m.zone,
	}, nil
}
