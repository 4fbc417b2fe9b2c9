package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHealthColor(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  lipgloss.Color
	}{
		{"full health is green", 100, lipgloss.Color("#39FF14")},
		{"good threshold is green", 70, lipgloss.Color("#39FF14")},
		{"middling is amber", 50, lipgloss.Color("#FFAA00")},
		{"low threshold is amber", 30, lipgloss.Color("#FFAA00")},
		{"critical is red", 10, lipgloss.Color("#FF0055")},
		{"zero is red", 0, lipgloss.Color("#FF0055")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthColor(tt.score))
		})
	}
}

func TestHealthBar(t *testing.T) {
	bar := HealthBar(10, 50)
	assert.Equal(t, 5, strings.Count(bar, "▰"))
	assert.Equal(t, 5, strings.Count(bar, "▱"))

	bar = HealthBar(10, 100)
	assert.Equal(t, 10, strings.Count(bar, "▰"))
	assert.Equal(t, 0, strings.Count(bar, "▱"))

	bar = HealthBar(10, 0)
	assert.Equal(t, 0, strings.Count(bar, "▰"))

	// Out-of-range scores are clamped, not panicked on.
	assert.Equal(t, 10, strings.Count(HealthBar(10, 150), "▰"))
	assert.Equal(t, 0, strings.Count(HealthBar(10, -5), "▰"))
}

func TestStarRow(t *testing.T) {
	assert.Contains(t, StarRow(0), "no stars yet")

	assert.Equal(t, 3, strings.Count(StarRow(3), "⭐"))

	// Beyond the visual cap the count rides along as a multiplier.
	row := StarRow(8)
	assert.Equal(t, MaxStarsShown, strings.Count(row, "⭐"))
	assert.Contains(t, row, "×8")
}

func TestSectionHeaderWidth(t *testing.T) {
	header := SectionHeader("Saliva pH", "last 50 readings", 60)
	assert.Equal(t, 60, lipgloss.Width(header))
	assert.Contains(t, header, "Saliva pH")
	assert.Contains(t, header, "last 50 readings")
	assert.Contains(t, header, "╭─")
	assert.Contains(t, header, "╮")
}

func TestSectionFooterWidth(t *testing.T) {
	footer := SectionFooter(60)
	assert.Equal(t, 60, lipgloss.Width(footer))
	assert.Contains(t, footer, "╰")
	assert.Contains(t, footer, "╯")
}

func TestSectionContentLine(t *testing.T) {
	line := SectionContentLine("hello", 40)
	assert.Equal(t, 40, lipgloss.Width(line))
	assert.Contains(t, line, "hello")
	assert.Contains(t, line, "│")
}
