package bubbletea

import "github.com/fwojciec/pandora"

// RenderChart exports renderChart for testing.
func RenderChart(c pandora.Chart, p pandora.Palette, width int) string {
	return renderChart(c, NewStyles(p), width)
}
