package ui

import "github.com/charmbracelet/lipgloss"

var (
	settingsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	helpStyle = lipgloss.NewStyle().
			Faint(true)

	editHintStyle = lipgloss.NewStyle().
			Faint(true).
			Italic(true)
)
