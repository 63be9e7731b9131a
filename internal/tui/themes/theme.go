// Package themes holds the color schemes for the full-screen wizard.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	Cursor        lipgloss.Style
	RoundedBox    lipgloss.Style
	ChatBox       lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusInfo    lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:   "#4A90D9",
	secondary: "#9CC7F0",
	text:      "#FAFAFA",
	subtle:    "#A3A3A3",
	muted:     "#737373",
	border:    "#404040",
	success:   "#10B981",
	warning:   "#F59E0B",
	info:      "#3B82F6",
	selectBg:  "#1E3A5F",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:   "#89B4FA",
	secondary: "#B4BEFE",
	text:      "#CDD6F4",
	subtle:    "#A6ADC8",
	muted:     "#6C7086",
	border:    "#45475A",
	success:   "#A6E3A1",
	warning:   "#F9E2AF",
	info:      "#89DCEB",
	selectBg:  "#313244",
})

// Names lists the selectable themes.
func Names() []string {
	return []string{"default", "catppuccin-mocha"}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

type palette struct {
	primary   string
	secondary string
	text      string
	subtle    string
	muted     string
	border    string
	success   string
	warning   string
	info      string
	selectBg  string
}

func newTheme(p palette) Theme {
	return Theme{
		Primary:   lipgloss.Color(p.primary),
		Secondary: lipgloss.Color(p.secondary),
		Muted:     lipgloss.Color(p.muted),
		Border:    lipgloss.Color(p.border),
		Success:   lipgloss.Color(p.success),
		Warning:   lipgloss.Color(p.warning),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.text)),
		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.selectBg)).
			Foreground(lipgloss.Color(p.text)).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)).
			Bold(true),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 2),
		ChatBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),
	}
}
