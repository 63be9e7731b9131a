// Package cli renders windowwise output for plain terminals: status lines,
// recommendation cards, the line-based wizard and import progress.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. PrimaryColor and SubtleColor are shared with the table renderers.
var (
	PrimaryColor = lipgloss.Color("#4A90D9") // glass blue
	SubtleColor  = lipgloss.Color("#7A8594") // frame gray
	frameColor   = lipgloss.Color("#3B4252")
	goodColor    = lipgloss.Color("#5FB49C")
	cautionColor = lipgloss.Color("#F2C14E")
	badColor     = lipgloss.Color("#E4572E")
	noteColor    = lipgloss.Color("#A3D5FF")
)

var (
	// TitleStyle heads a section or a card.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1)

	// SubtleStyle is for secondary details such as specs and explanations.
	SubtleStyle = lipgloss.NewStyle().Foreground(SubtleColor)

	BoldStyle     = lipgloss.NewStyle().Bold(true)
	ScoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(goodColor)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	PromptStyle   = SelectedStyle

	// BoxStyle frames a single recommendation.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frameColor).
			Padding(1, 2)

	successStyle = lipgloss.NewStyle().Foreground(goodColor)
	warningStyle = lipgloss.NewStyle().Foreground(cautionColor)
	errorStyle   = lipgloss.NewStyle().Foreground(badColor)
	infoStyle    = lipgloss.NewStyle().Foreground(noteColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	WindowIcon  = "🪟"
	HomeIcon    = "🏠"
	FolderIcon  = "🗄️"
	ChatIcon    = "💬"
)

func status(style lipgloss.Style, icon, message string) string {
	return style.Render(icon + " " + message)
}

// FormatSuccess prefixes message with a check mark.
func FormatSuccess(message string) string { return status(successStyle, SuccessIcon, message) }

// FormatError prefixes message with a cross.
func FormatError(message string) string { return status(errorStyle, ErrorIcon, message) }

// FormatWarning prefixes message with a warning sign.
func FormatWarning(message string) string { return status(warningStyle, WarningIcon, message) }

// FormatInfo prefixes message with an info sign.
func FormatInfo(message string) string { return status(infoStyle, InfoIcon, message) }

// FormatTitle renders a heading with the window icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(WindowIcon + " " + title)
}

// FormatPrompt renders an input prompt.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderBox draws content under a title inside BoxStyle.
func RenderBox(title, content string) string {
	heading := TitleStyle.UnsetMargins().Render(title)
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}
