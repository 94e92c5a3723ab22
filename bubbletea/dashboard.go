package bubbletea

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pandora"
	"github.com/fwojciec/pandora/goldmark"
	"github.com/rivo/uniseg"
)

const (
	minPlotWidth = 8
	valueColumn  = 6
)

// RenderDashboard draws the insights view. The palette is resolved from
// isDark on every call and the datasets are re-bound to it, so a theme
// change is reflected in the next frame without reshaping any series.
func RenderDashboard(ds pandora.Datasets, isDark bool, width int) string {
	styles := NewStyles(pandora.ResolvePalette(isDark))
	charts := pandora.BuildCharts(ds, styles.Palette)
	cards := make([]string, 0, len(charts))
	for _, c := range charts {
		cards = append(cards, renderChart(c, styles, width))
	}
	return strings.Join(cards, "\n\n")
}

// renderChart draws c. Series, grid and axis colors come from the
// descriptor; value labels use the tooltip style of s.
func renderChart(c pandora.Chart, s Styles, width int) string {
	p := s.Palette
	axis := lipgloss.NewStyle().Foreground(hexColor(c.Axis))
	grid := lipgloss.NewStyle().Foreground(hexColor(c.Grid))
	tooltip := s.Tooltip

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(hexColor(c.TitleColor)).Bold(true).Render(c.Title))
	if c.Caption != "" {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(hexColor(p.TextMuted)).Render(c.Caption))
	}
	b.WriteString("\n")

	labelW := labelWidth(c.Labels)
	plotW := max(width-labelW-valueColumn-3, minPlotWidth)
	top := maxValue(c.Values)

	for i, v := range c.Values {
		b.WriteString(axis.Render(padRight(c.Labels[i], labelW)))
		b.WriteString(grid.Render(" │"))
		switch c.Kind {
		case pandora.ChartBar:
			n := scale(v, top, plotW)
			fill := lipgloss.NewStyle().Foreground(hexColor(c.BarColors[i]))
			b.WriteString(fill.Render(strings.Repeat("█", n)))
			b.WriteString(strings.Repeat(" ", plotW-n))
		default:
			n := scale(v, top, plotW-1)
			dot := lipgloss.NewStyle().Foreground(hexColor(c.Stroke))
			if c.DotFill != "" {
				dot = dot.Background(hexColor(c.DotFill))
			}
			b.WriteString(grid.Render(strings.Repeat("·", n)))
			b.WriteString(dot.Render(pointGlyph(c.StrokeWidth)))
			b.WriteString(strings.Repeat(" ", plotW-1-n))
		}
		b.WriteString(" ")
		b.WriteString(tooltip.Render(formatValue(v)))
		b.WriteString("\n")
	}

	if c.ShowYAxis {
		b.WriteString(strings.Repeat(" ", labelW))
		b.WriteString(grid.Render(" └" + strings.Repeat("─", plotW)))
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", labelW+2))
		hi := formatValue(top)
		b.WriteString(axis.Render("0" + strings.Repeat(" ", max(plotW-1-uniseg.StringWidth(hi), 1)) + hi))
		b.WriteString("\n")
	}

	if c.Note != "" {
		b.WriteString("\n")
		b.WriteString(goldmark.Render(c.Note, width, p))
	}
	return strings.TrimRight(b.String(), "\n")
}

func pointGlyph(strokeWidth int) string {
	if strokeWidth >= 4 {
		return "●"
	}
	return "•"
}

// scale maps v in [0, top] to [0, cells].
func scale(v, top float64, cells int) int {
	if top <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / top * float64(cells)))
	return min(n, cells)
}

func maxValue(values []float64) float64 {
	top := 0.0
	for _, v := range values {
		top = math.Max(top, v)
	}
	return top
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, uniseg.StringWidth(l))
	}
	return w
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(width-uniseg.StringWidth(s), 0))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
