package tuitest

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer steps a model through Update and keeps its latest View.
type TestRenderer struct {
	Output string
	cmds   []tea.Cmd
}

// NewTestRenderer returns an empty renderer.
func NewTestRenderer() *TestRenderer { return &TestRenderer{} }

// Update delivers msg, renders the resulting model and remembers its command.
func (r *TestRenderer) Update(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	if cmd != nil {
		r.cmds = append(r.cmds, cmd)
	}
	r.Output = next.View()
	return next, cmd
}

// LastCommand is the most recent non-nil command returned by Update.
func (r *TestRenderer) LastCommand() tea.Cmd {
	if n := len(r.cmds); n > 0 {
		return r.cmds[n-1]
	}
	return nil
}

// Stripped is Output with styling removed.
func (r *TestRenderer) Stripped() string { return StripANSI(r.Output) }

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes terminal color and cursor sequences.
func StripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

// ContainsInOrder reports whether every part appears in s, each after the last.
func ContainsInOrder(s string, parts ...string) bool {
	for _, p := range parts {
		_, rest, found := strings.Cut(s, p)
		if !found {
			return false
		}
		s = rest
	}
	return true
}

// Collect runs cmd and returns the messages it yields, expanding batches.
// Commands that sleep, such as tea.Tick, block the caller.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, Collect(c)...)
	}
	return msgs
}
