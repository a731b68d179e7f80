package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#818cf8"))
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#c084fc"))
)

// Category styles a category heading for list output.
func Category(s string) string {
	return categoryStyle.Render(s)
}

// PatternName styles a pattern name for list output.
func PatternName(s string) string {
	return nameStyle.Render(s)
}
