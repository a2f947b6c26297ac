package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#1B4332")
	colorAccent  = lipgloss.Color("#E07A5F")
	colorMuted   = lipgloss.Color("#6C7086")
	colorError   = lipgloss.Color("#F38BA8")
)

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Count    lipgloss.Style
	Group    lipgloss.Style
	Item     lipgloss.Style
	Cursor   lipgloss.Style
	Feature  lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Detail   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the browser styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Subtitle: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Count:    lipgloss.NewStyle().Foreground(colorMuted),
		Group:    lipgloss.NewStyle().Bold(true).Underline(true),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Cursor:   lipgloss.NewStyle().PaddingLeft(2).Bold(true).Foreground(colorAccent),
		Feature:  lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(4),
		Focused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1),
		Blurred:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1),
		Detail:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorPrimary).Padding(1, 2),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Help:     lipgloss.NewStyle().Foreground(colorMuted),
	}
}
