package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/phbuddy/internal/band"
)

// Braille character rendering for the pH chart.
//
// Braille patterns use a 2x4 dot matrix per character, so each character
// column carries 2 horizontal readings at 4 vertical levels per row.
// Unicode braille starts at U+2800 (empty) with one bit per dot:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '⠀'

// brailleDots maps [row][col] to the bit offset for the braille pattern,
// row 0-3 top to bottom, col 0-1 left to right.
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// Chart axis bounds. The interesting saliva range; simulated readings are
// clamped here and hardware outliers are pinned to the edges.
const (
	ChartMinPH = 4.0
	ChartMaxPH = 9.0
)

// normalizePH converts a pH value to 0-1 within the chart bounds.
func normalizePH(ph float64) float64 {
	n := (ph - ChartMinPH) / (ChartMaxPH - ChartMinPH)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// clampInt clamps an integer to [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// RenderPHChart renders the reading history as a braille dot chart.
// Each character column holds 2 readings; columns are colored by the band
// of the higher reading in the column so excursions pop. Data fills from
// the right when fewer readings than the chart width exist.
func RenderPHChart(values []float64, width, height int) string {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	totalDots := height * 4
	targetPoints := width * 2

	// Keep only the most recent readings that fit
	if len(values) > targetPoints {
		values = values[len(values)-targetPoints:]
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	// Track the dominant value per character column for coloring
	colValues := make([]float64, width)
	colSet := make([]bool, width)

	// Right-align partial data
	horizOffset := targetPoints - len(values)

	for i, ph := range values {
		normalized := normalizePH(ph)
		// A reading sits at one dot height; fill down one dot for weight
		dotPos := clampInt(int(normalized*float64(totalDots-1)), totalDots-1)

		charCol := (i + horizOffset) / 2
		if charCol >= width {
			continue
		}

		if !colSet[charCol] || ph > colValues[charCol] {
			colValues[charCol] = ph
			colSet[charCol] = true
		}

		subCol := (i + horizOffset) % 2

		for _, dot := range []int{dotPos, dotPos - 1} {
			if dot < 0 {
				continue
			}
			row := height - 1 - (dot / 4)
			if row < 0 || row >= height {
				continue
			}
			subRow := 3 - (dot % 4)
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	var lines []string
	for _, row := range grid {
		var lineBuilder strings.Builder
		for colIdx, char := range row {
			color := band.NeutralColor
			if colSet[colIdx] {
				if b := band.Classify(colValues[colIdx]); b.Known() {
					color = b.Color
				}
			}
			style := lipgloss.NewStyle().Foreground(color).Background(ColorSurfaceBg)
			lineBuilder.WriteString(style.Render(string(char)))
		}
		lines = append(lines, lineBuilder.String())
	}

	return strings.Join(lines, "\n")
}

// RenderAxisLabels returns the y-axis labels for the chart rows, top to
// bottom, marking the pH value at each braille row boundary.
func RenderAxisLabels(height int) []string {
	if height <= 0 {
		return nil
	}

	labels := make([]string, height)
	span := ChartMaxPH - ChartMinPH
	for row := 0; row < height; row++ {
		// Top of each row in pH terms; one decimal is plenty for an axis
		ph := ChartMaxPH - span*float64(row)/float64(height)
		labels[row] = MutedStyle.Render(fmt.Sprintf("%.1f", ph))
	}
	return labels
}

// HealthyZoneRows reports which chart rows (0 = top) intersect the healthy
// pH zone so the view can tint their left gutter.
func HealthyZoneRows(height int) []bool {
	rows := make([]bool, height)
	if height <= 0 {
		return rows
	}

	lo, hi := 6.8, 7.5
	span := ChartMaxPH - ChartMinPH
	for row := 0; row < height; row++ {
		rowTop := ChartMaxPH - span*float64(row)/float64(height)
		rowBottom := ChartMaxPH - span*float64(row+1)/float64(height)
		rows[row] = rowBottom < hi && rowTop > lo
	}
	return rows
}
