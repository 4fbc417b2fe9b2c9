package monitor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette - candy shop pastels over a dark surface
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF6B8B") // Bubblegum pink (title)
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	// Healthy zone tint for the chart
	ColorHealthyZone = lipgloss.Color("#2E8B57") // Sea green

	// Star row
	ColorStar = lipgloss.Color("#FFD700") // Gold
)

// Health score thresholds for coloring. Unlike load metrics, high is good here.
const (
	healthGoodThreshold = 70
	healthLowThreshold  = 30
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StarStyle = lipgloss.NewStyle().
			Foreground(ColorStar)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorAccentDim).
			Bold(true)
)

// HealthColor returns the color for a health score.
// High scores are healthy green, low scores alarming red.
func HealthColor(score int) lipgloss.Color {
	switch {
	case score >= healthGoodThreshold:
		return lipgloss.Color("#39FF14") // Neon green
	case score >= healthLowThreshold:
		return lipgloss.Color("#FFAA00") // Electric amber
	default:
		return lipgloss.Color("#FF0055") // Hot red-pink
	}
}

// HealthBar renders the health score as a colored progress bar.
func HealthBar(width, score int) string {
	if width < 1 {
		width = 1
	}
	if score < MinHealth {
		score = MinHealth
	}
	if score > MaxHealth {
		score = MaxHealth
	}

	filled := score * width / MaxHealth
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
	return lipgloss.NewStyle().Foreground(HealthColor(score)).Render(bar)
}

// StarRow renders earned stars, capped visually at MaxStarsShown.
// Beyond the cap the total rides along as "×N".
func StarRow(stars int) string {
	if stars <= 0 {
		return MutedStyle.Render("no stars yet")
	}

	shown := stars
	if shown > MaxStarsShown {
		shown = MaxStarsShown
	}

	row := StarStyle.Render(strings.Repeat("⭐", shown))
	if stars > MaxStarsShown {
		row += MutedStyle.Render(" ×" + strconv.Itoa(stars))
	}
	return row
}

// SectionHeader renders a section header with the title on the left and value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	// Left: "╭─ " + title + " "; right: " " + value + " ╮"
	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	valueStyle := lipgloss.NewStyle().Foreground(ColorAccentDim).Bold(true)

	return borderStyle.Render("╭─ ") +
		TitleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat("─", fillWidth)+" ") +
		valueStyle.Render(value) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}
	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	return borderStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// SectionContentLine renders a content line with side borders, padded to width.
// Format: │ content                                              │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	contentWidth := lipgloss.Width(content)
	innerWidth := width - 4

	padding := innerWidth - contentWidth
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}
