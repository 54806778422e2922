package ui

import "github.com/charmbracelet/lipgloss"

// Palette for the admin console. One theme only; the console runs on
// operator machines, not end-user terminals.
const (
	colorText    = "#cdcecf"
	colorMuted   = "#738091"
	colorAccent  = "#719cd6"
	colorSuccess = "#81b29a"
	colorDanger  = "#c94f6d"
	colorSelBg   = "#2b3b51"
	colorBorder  = "#39506d"
)

// Styles contains the pre-built lipgloss styles used by the views.
type Styles struct {
	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Help     lipgloss.Style
	Box      lipgloss.Style
}

// DefaultStyles builds the console styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)).
			Padding(0, 1),

		TabOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)).
			Background(lipgloss.Color(colorSelBg)).
			Bold(true).
			Padding(0, 1),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDanger)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(colorSelBg)).
			Foreground(lipgloss.Color(colorText)),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)).
			Width(14),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1),
	}
}
