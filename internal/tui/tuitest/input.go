// Package tuitest drives Bubble Tea models in unit tests without a terminal.
package tuitest

import (
	tea "github.com/charmbracelet/bubbletea"
)

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// KeyPress types s as a single rune message, the way a terminal reports a letter key.
func KeyPress(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// Special keys.
func KeyDown() tea.KeyMsg  { return key(tea.KeyDown) }
func KeyUp() tea.KeyMsg    { return key(tea.KeyUp) }
func KeyEnter() tea.KeyMsg { return key(tea.KeyEnter) }
func KeyEsc() tea.KeyMsg   { return key(tea.KeyEsc) }
func KeyCtrlC() tea.KeyMsg { return key(tea.KeyCtrlC) }
func KeySpace() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}} }

// WindowSize reports a terminal resize.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}

// InputSequence is an ordered script of messages fed to a model.
type InputSequence struct {
	msgs []tea.Msg
}

// NewInputSequence starts a script with msgs.
func NewInputSequence(msgs ...tea.Msg) *InputSequence {
	return &InputSequence{msgs: msgs}
}

// Add appends msgs.
func (s *InputSequence) Add(msgs ...tea.Msg) *InputSequence {
	s.msgs = append(s.msgs, msgs...)
	return s
}

// Type appends one rune message per character of text.
func (s *InputSequence) Type(text string) *InputSequence {
	for _, r := range text {
		s.msgs = append(s.msgs, KeyPress(string(r)))
	}
	return s
}

// Choose moves the cursor down n rows and selects with enter, which answers
// a radio question.
func (s *InputSequence) Choose(n int) *InputSequence {
	for range n {
		s.msgs = append(s.msgs, KeyDown())
	}
	return s.Add(KeyEnter())
}

// Apply feeds every message through renderer and returns the final model.
func (s *InputSequence) Apply(m tea.Model, renderer *TestRenderer) tea.Model {
	for _, msg := range s.msgs {
		m, _ = renderer.Update(m, msg)
	}
	return m
}
