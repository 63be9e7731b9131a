package tui

import "github.com/Veraticus/windowwise/internal/model"

// Async results.
type locationDetectedMsg struct {
	err      error
	location string
}

type recommendationsMsg struct {
	recs []model.Recommendation
}

// State represents what the TUI is showing.
type State int

const (
	StateQuestion State = iota
	StateScoring
	StateResults
)

type chatEntry struct {
	question string
	reply    string
}
