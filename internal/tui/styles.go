package tui

import "github.com/charmbracelet/lipgloss"

// Colors used by the default styles.
var (
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6b7280")
	Destructive = lipgloss.Color("#e53935")
	Border      = lipgloss.Color("#2a3850")
)

// Styles holds the styles for each part of the display.
type Styles struct {
	Display    lipgloss.Style
	Expression lipgloss.Style
	Preview    lipgloss.Style
	Result     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the styles used when none are given.
func DefaultStyles() Styles {
	return Styles{
		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1).
			Align(lipgloss.Right),
		Expression: lipgloss.NewStyle(),
		Preview:    lipgloss.NewStyle().Foreground(Muted),
		Result:     lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(Destructive),
		Help:       lipgloss.NewStyle().MarginTop(1),
	}
}
