package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SessionSummary holds the final totals of a monitoring run for the exit
// banner.
type SessionSummary struct {
	Duration     time.Duration
	Readings     int
	FinalHealth  int
	Stars        int
	SensorErrors int
}

// summaryRenderer formats session summaries for terminal display.
type summaryRenderer struct {
	titleStyle  lipgloss.Style
	labelStyle  lipgloss.Style
	goodStyle   lipgloss.Style
	warnStyle   lipgloss.Style
	badStyle    lipgloss.Style
	starStyle   lipgloss.Style
	mutedStyle  lipgloss.Style
	borderStyle lipgloss.Style
}

func newSummaryRenderer() *summaryRenderer {
	return &summaryRenderer{
		titleStyle:  lipgloss.NewStyle().Foreground(ColorCandyPink).Bold(true),
		labelStyle:  lipgloss.NewStyle().Foreground(ColorSecondary),
		goodStyle:   lipgloss.NewStyle().Foreground(ColorSuccess),
		warnStyle:   lipgloss.NewStyle().Foreground(ColorWarning),
		badStyle:    lipgloss.NewStyle().Foreground(ColorError),
		starStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		mutedStyle:  lipgloss.NewStyle().Foreground(ColorMuted),
		borderStyle: lipgloss.NewStyle().Foreground(ColorBorderDim),
	}
}

// RenderSessionSummary generates the end-of-run banner printed after the
// dashboard exits.
func RenderSessionSummary(s SessionSummary) string {
	r := newSummaryRenderer()
	return r.render(s)
}

func (r *summaryRenderer) render(s SessionSummary) string {
	var sb strings.Builder

	sb.WriteString(r.borderStyle.Render(strings.Repeat("━", 40)))
	sb.WriteString("\n")
	sb.WriteString(r.titleStyle.Render(SymbolTooth + " session complete"))
	sb.WriteString("\n\n")

	sb.WriteString(r.labelStyle.Render("  duration   "))
	sb.WriteString(formatSessionDuration(s.Duration))
	sb.WriteString("\n")

	sb.WriteString(r.labelStyle.Render("  readings   "))
	sb.WriteString(fmt.Sprintf("%d", s.Readings))
	sb.WriteString("\n")

	sb.WriteString(r.labelStyle.Render("  health     "))
	sb.WriteString(r.healthStyle(s.FinalHealth).Render(fmt.Sprintf("%d/100", s.FinalHealth)))
	sb.WriteString("\n")

	sb.WriteString(r.labelStyle.Render("  stars      "))
	if s.Stars > 0 {
		sb.WriteString(r.starStyle.Render(fmt.Sprintf("%s ×%d", SymbolStar, s.Stars)))
	} else {
		sb.WriteString(r.mutedStyle.Render("none this time"))
	}
	sb.WriteString("\n")

	if s.SensorErrors > 0 {
		sb.WriteString(r.labelStyle.Render("  errors     "))
		sb.WriteString(r.warnStyle.Render(fmt.Sprintf("%d sensor errors", s.SensorErrors)))
		sb.WriteString("\n")
	}

	sb.WriteString(r.borderStyle.Render(strings.Repeat("━", 40)))
	sb.WriteString("\n")

	return sb.String()
}

// healthStyle picks a style by score: high is healthy here.
func (r *summaryRenderer) healthStyle(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return r.goodStyle
	case score >= 30:
		return r.warnStyle
	default:
		return r.badStyle
	}
}

// formatSessionDuration renders a duration as "3m12s" or "42s".
func formatSessionDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) - m*60
	return fmt.Sprintf("%dm%02ds", m, s)
}
