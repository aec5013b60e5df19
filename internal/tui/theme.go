package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	primary  = lipgloss.Color("#0EA5E9") // Sky Blue
	accent   = lipgloss.Color("#F59E0B") // Amber
	success  = lipgloss.Color("#22C55E") // Green
	errColor = lipgloss.Color("#F43F5E") // Rose
	text     = lipgloss.Color("#F8FAFC") // White
	textDim  = lipgloss.Color("#94A3B8") // Slate
	border   = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(text)

	correctStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true)

	streakStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)
)
