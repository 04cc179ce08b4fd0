package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	accentColor = lipgloss.Color("14") // Cyan
	answerColor = lipgloss.Color("10") // Green
	errorColor  = lipgloss.Color("9")
	dimColor    = lipgloss.Color("8")

	// Execution id / stream colors (for log lines)
	paletteColorList = []lipgloss.Color{
		lipgloss.Color("14"),  // Cyan
		lipgloss.Color("13"),  // Magenta
		lipgloss.Color("12"),  // Blue
		lipgloss.Color("11"),  // Yellow
		lipgloss.Color("10"),  // Green
		lipgloss.Color("208"), // Orange
		lipgloss.Color("207"), // Pink
		lipgloss.Color("159"), // Light blue
		lipgloss.Color("156"), // Light green
	}
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	answerStyle = lipgloss.NewStyle().
			Foreground(answerColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// ErrorStyle renders error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// DimStyle renders timestamps and other secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	paletteStyles []lipgloss.Style
)

func init() {
	for _, color := range paletteColorList {
		paletteStyles = append(paletteStyles, lipgloss.NewStyle().Foreground(color))
	}
}

// PaletteStyle returns the i-th foreground style, cycling through the palette
func PaletteStyle(i int) lipgloss.Style {
	if i < 0 {
		i = -i
	}
	return paletteStyles[i%len(paletteStyles)]
}
