package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorPurple = lipgloss.Color("#7D56F4")
	ColorGreen  = lipgloss.Color("#25A065")
	ColorYellow = lipgloss.Color("#FFD866")
	ColorRed    = lipgloss.Color("#FF6188")
	ColorGray   = lipgloss.Color("#6C6C6C")
	ColorWhite  = lipgloss.Color("#FAFAFA")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorPurple).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	doneStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Strikethrough(true)

	flagStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	pendingStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
