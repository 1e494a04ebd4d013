package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorError     = lipgloss.Color("9")   // bright red

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleInput = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleTitle = lipgloss.NewStyle().
			Bold(true)

	styleBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			MarginRight(1)

	styleSaved = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleFailed = lipgloss.NewStyle().
			Foreground(colorError)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim)

	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)
)
