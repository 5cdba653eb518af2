package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle       = lipgloss.NewStyle().Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	stagedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)
