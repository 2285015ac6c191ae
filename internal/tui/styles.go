package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("245") // Gray
	colorSuccess   = lipgloss.Color("76")  // Green
	colorMuted     = lipgloss.Color("240") // Dark gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	countStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	dirStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	okStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)
)
