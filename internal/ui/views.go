package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cwbudde/hilbert-envelope/dsp/param"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(9)

	barStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	peakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Italic(true)
)

func renderMeterView(m Model) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hilbert envelope follower"))
	b.WriteString("\n\n")

	width := max(m.Width-24, 10)
	b.WriteString(renderMeter("envelope", m.Current, width, barStyle))
	b.WriteString("\n")
	b.WriteString(renderMeter("peak", m.Peak, width, peakStyle))
	b.WriteString("\n\n")

	b.WriteString(renderParams(m.Values))
	b.WriteString("\n")

	if m.Status != "" {
		b.WriteString(m.Status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("m mode  +/- mix  [/] gain  r reset peak  q quit"))

	return b.String()
}

// renderMeter draws a horizontal bar for a value in [0, 1].
func renderMeter(label string, v float64, width int, style lipgloss.Style) string {
	filled := int(math.Round(math.Max(0, math.Min(1, v)) * float64(width)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return fmt.Sprintf("%s %s %5.3f", labelStyle.Render(label), style.Render(bar), v)
}

func renderParams(v param.Values) string {
	parts := make([]string, 0, param.Count)
	for _, id := range param.IDs() {
		parts = append(parts, fmt.Sprintf("%s %s", id, param.Format(id, v[id])))
	}

	return strings.Join(parts, " | ")
}
