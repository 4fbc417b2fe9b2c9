package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication, using ANSI codes so output stays
// readable on both light and dark terminals.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Accent colors for the branded header and spinner
const (
	ColorCandyPink   lipgloss.Color = "#FF6B8B"
	ColorCandyPurple lipgloss.Color = "#BF40FF"
	ColorCandyCyan   lipgloss.Color = "#00FFF7"
	ColorCandyGreen  lipgloss.Color = "#39FF14"
	ColorBorderDim   lipgloss.Color = "#2A2A4A"
)

// GradientColors is the spinner's color cycle.
var GradientColors = []lipgloss.Color{
	ColorCandyPink,
	ColorCandyPurple,
	ColorCandyCyan,
	ColorCandyGreen,
}
