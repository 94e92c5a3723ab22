package bubbletea_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pandora"
	bt "github.com/fwojciec/pandora/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// barCell returns a single bar cell drawn in hex, as lipgloss encodes it
// for the active color profile.
func barCell(hex string) string {
	r := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█")
	return r[:strings.Index(r, "█")+len("█")]
}

// collapse joins the words of s with single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestRenderDashboard(t *testing.T) {
	t.Parallel()

	t.Run("shows every chart with captions and notes", func(t *testing.T) {
		t.Parallel()
		out := collapse(stripANSI(bt.RenderDashboard(pandora.DefaultDatasets(), true, 80)))
		for _, s := range []string{
			"Stress Levels", "Last 24 Hours",
			"Mood Distribution", "This Week",
			"Sleep Trends",
			"breathing break", "Calmer days usually follow longer sleep.",
		} {
			assert.Contains(t, out, s)
		}
	})

	t.Run("theme recolors without reshaping", func(t *testing.T) {
		t.Parallel()
		ds := pandora.DefaultDatasets()
		dark := bt.RenderDashboard(ds, true, 80)
		light := bt.RenderDashboard(ds, false, 80)
		assert.NotEqual(t, dark, light)
		assert.Equal(t, stripANSI(dark), stripANSI(light))
		assert.Equal(t, pandora.DefaultDatasets(), ds)
	})

	t.Run("same flag renders identically", func(t *testing.T) {
		t.Parallel()
		ds := pandora.DefaultDatasets()
		assert.Equal(t, bt.RenderDashboard(ds, false, 80), bt.RenderDashboard(ds, false, 80))
	})

	t.Run("empty series still render titles", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(bt.RenderDashboard(pandora.Datasets{}, true, 80))
		assert.Contains(t, out, "Stress Levels")
		assert.Contains(t, out, "Sleep Trends")
	})
}

func TestRenderChart(t *testing.T) {
	t.Parallel()

	p := pandora.ResolvePalette(true)

	primary := barCell(p.PrimaryChart)
	secondary := barCell(p.SecondaryChart)

	t.Run("mood bars above threshold use the secondary color", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderChart(pandora.MoodChart([]pandora.MoodPoint{{Day: "Mon", Value: 6}}, p), p, 60)
		assert.Contains(t, out, secondary)
		assert.NotContains(t, out, primary)
	})

	t.Run("mood bars at threshold use the primary color", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderChart(pandora.MoodChart([]pandora.MoodPoint{{Day: "Mon", Value: 5}}, p), p, 60)
		assert.Contains(t, out, primary)
		assert.NotContains(t, out, secondary)
	})

	t.Run("each bar is colored by its own value", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderChart(pandora.MoodChart([]pandora.MoodPoint{
			{Day: "Mon", Value: 6},
			{Day: "Tue", Value: 5},
		}, p), p, 60)
		lines := strings.Split(out, "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		assert.Contains(t, lines[1], secondary)
		assert.NotContains(t, lines[1], primary)
		assert.Contains(t, lines[2], primary)
		assert.NotContains(t, lines[2], secondary)
	})

	t.Run("values use the tooltip style", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderChart(pandora.MoodChart([]pandora.MoodPoint{{Day: "Mon", Value: 6}}, p), p, 60)
		assert.Contains(t, out, bt.NewStyles(p).Tooltip.Render("6"))
	})

	t.Run("bar length is proportional to value", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(bt.RenderChart(pandora.MoodChart([]pandora.MoodPoint{
			{Day: "Mon", Value: 8},
			{Day: "Tue", Value: 4},
		}, p), p, 40))
		lines := strings.Split(out, "\n")
		assert.Equal(t, 2*strings.Count(lines[2], "█"), strings.Count(lines[1], "█"))
	})

	t.Run("labels of different widths align", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(bt.RenderChart(pandora.SleepChart([]pandora.SleepPoint{
			{Day: "M", Hours: 6},
			{Day: "Sun", Hours: 8},
		}, p), p, 40))
		lines := strings.Split(out, "\n")
		assert.Equal(t, strings.Index(lines[1], "│"), strings.Index(lines[2], "│"))
	})

	t.Run("line charts mark points and show values", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(bt.RenderChart(pandora.StressChart([]pandora.StressPoint{{Time: "2pm", Level: 65}}, p), p, 40))
		assert.Contains(t, out, "2pm")
		assert.Contains(t, out, "•")
		assert.Contains(t, out, "65")
		assert.Contains(t, out, "└")
	})

	t.Run("sleep points use the heavy glyph", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(bt.RenderChart(pandora.SleepChart([]pandora.SleepPoint{{Day: "Mon", Hours: 7.5}}, p), p, 40))
		assert.Contains(t, out, "●")
		assert.Contains(t, out, "7.5")
	})
}
