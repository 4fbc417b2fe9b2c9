package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout constants for the dashboard.
const (
	defaultWidth = 80
	chartRows    = 6

	// gutterWidth holds the axis label plus the healthy-zone marker.
	gutterWidth = 6
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(width))
	b.WriteString("\n\n")

	b.WriteString(m.renderChart(width))
	b.WriteString("\n")

	b.WriteString(m.renderStatus(width))
	b.WriteString("\n")

	b.WriteString(m.renderAdvice(width))
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar with source and freshness info.
func (m Model) renderHeader(width int) string {
	title := TitleStyle.Render("phbuddy")

	elapsed := m.Elapsed()
	age := m.SecondsSinceUpdate()

	var updateText string
	switch {
	case m.lastUpdate.IsZero():
		updateText = "waiting for first reading"
	case age == 0:
		updateText = "just now"
	case age == 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", age)
	}

	stats := LabelStyle.Render(fmt.Sprintf(" | %s | up %ds | last reading %s",
		m.src.Describe(), int(elapsed.Seconds()), updateText))

	line := title + stats
	if m.paused {
		line += PausedStyle.Render("  ⏸ PAUSED")
	}
	if m.lastErr != "" {
		line += MutedStyle.Render("  (" + m.lastErr + ")")
	}

	return HeaderStyle.Render(line)
}

// renderChart renders the rolling pH history with axis labels and the
// healthy zone marked in the gutter.
func (m Model) renderChart(width int) string {
	chartWidth := width - gutterWidth - 4
	if chartWidth < 10 {
		chartWidth = 10
	}
	sectionWidth := chartWidth + gutterWidth + 4

	var b strings.Builder
	b.WriteString(SectionHeader("Saliva pH", fmt.Sprintf("last %d readings", m.history.Capacity()), sectionWidth))
	b.WriteString("\n")

	values := m.history.Values()
	if len(values) == 0 {
		b.WriteString(SectionContentLine(m.spin.View()+MutedStyle.Render(" collecting readings..."), sectionWidth))
		b.WriteString("\n")
		b.WriteString(SectionFooter(sectionWidth))
		return b.String()
	}

	chart := RenderPHChart(values, chartWidth, chartRows)
	chartLines := strings.Split(chart, "\n")
	labels := RenderAxisLabels(chartRows)
	zone := HealthyZoneRows(chartRows)

	zoneStyle := lipgloss.NewStyle().Foreground(ColorHealthyZone)
	for i, line := range chartLines {
		gutter := labels[i] + " "
		if zone[i] {
			gutter = labels[i] + zoneStyle.Render("▎")
		}
		b.WriteString(SectionContentLine(gutter+line, sectionWidth))
		b.WriteString("\n")
	}

	b.WriteString(SectionFooter(sectionWidth))
	return b.String()
}

// renderStatus renders the current reading, health score, and stars.
func (m Model) renderStatus(width int) string {
	var b strings.Builder
	b.WriteString(SectionHeader("Status", "", width))
	b.WriteString("\n")

	if !m.hasDisplay {
		b.WriteString(SectionContentLine(m.spin.View()+MutedStyle.Render(" waiting for the sensor..."), width))
		b.WriteString("\n")
		b.WriteString(SectionFooter(width))
		return b.String()
	}

	d := m.display

	bandStyle := lipgloss.NewStyle().Foreground(d.Band.Color).Bold(true)
	bandName := d.Band.Kind.String()
	if !d.Band.Known() {
		bandStyle = MutedStyle
	}

	reading := fmt.Sprintf("pH: %s %s  %s %s",
		ValueStyle.Render(fmt.Sprintf("%.2f", d.PH)),
		d.Emoji,
		bandStyle.Render(bandName),
		d.Band.Face)
	b.WriteString(SectionContentLine(reading, width))
	b.WriteString("\n")

	health := fmt.Sprintf("%s %s %s",
		LabelStyle.Render("Health"),
		HealthBar(20, m.state.Health),
		ValueStyle.Render(fmt.Sprintf("%d/100", m.state.Health)))
	b.WriteString(SectionContentLine(health, width))
	b.WriteString("\n")

	stars := LabelStyle.Render("Stars  ") + StarRow(m.state.Stars)
	b.WriteString(SectionContentLine(stars, width))
	b.WriteString("\n")

	if d.Annotation != "" {
		b.WriteString(SectionContentLine(TitleStyle.Render(d.Annotation), width))
		b.WriteString("\n")
	}

	if m.state.SensorErrors > 0 {
		b.WriteString(SectionContentLine(
			MutedStyle.Render(fmt.Sprintf("sensor errors: %d", m.state.SensorErrors)), width))
		b.WriteString("\n")
	}

	b.WriteString(SectionFooter(width))
	return b.String()
}

// renderAdvice renders the health advisor panel.
func (m Model) renderAdvice(width int) string {
	var b strings.Builder
	b.WriteString(SectionHeader("Health Advisor", "", width))
	b.WriteString("\n")

	text := "Initializing..."
	style := MutedStyle
	if m.hasDisplay {
		text = m.display.Advice
		style = lipgloss.NewStyle().Foreground(m.display.AdviceColor)
	}

	b.WriteString(SectionContentLine(style.Render(text), width))
	b.WriteString("\n")
	b.WriteString(SectionFooter(width))
	return b.String()
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"p pause",
		"r read now",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}
