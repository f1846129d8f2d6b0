package tui

import "github.com/charmbracelet/lipgloss"

// Tile colors
var (
	ColorNotInWord  = lipgloss.Color("#3A3A3C")
	ColorWrongPlace = lipgloss.Color("#B59F3B")
	ColorCorrect    = lipgloss.Color("#538D4E")
	ColorTileText   = lipgloss.Color("#000000")
	ColorMuted      = lipgloss.Color("#636B78")
	ColorError      = lipgloss.Color("#E06C75")
)

var (
	tileStyle = lipgloss.NewStyle().
			Foreground(ColorTileText).
			Bold(true)

	NotInWordStyle  = tileStyle.Background(ColorNotInWord)
	WrongPlaceStyle = tileStyle.Background(ColorWrongPlace)
	CorrectStyle    = tileStyle.Background(ColorCorrect)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorCorrect).
				Bold(true)
)
