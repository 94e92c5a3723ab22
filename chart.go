package pandora

// MoodThreshold is the mood value above which a bar uses the secondary
// chart color.
const MoodThreshold = 5

// ChartKind selects how a chart is drawn.
type ChartKind int

const (
	ChartLine ChartKind = iota
	ChartBar
)

// Chart is a renderable chart descriptor. Labels and Values are copies of
// the source series; every color is taken from a Palette.
type Chart struct {
	Title   string
	Caption string // Time span shown next to the title
	Note    string // Markdown insight shown below the chart
	Kind    ChartKind

	Labels []string
	Values []float64

	TitleColor  string
	Stroke      string   // Line color; empty for bar charts
	StrokeWidth int      // Line width hint
	DotFill     string   // Empty when points are not marked
	BarColors   []string // One fill per value; bar charts only
	Grid        string
	Axis        string
	TooltipBg   string
	TooltipText string
	ShowYAxis   bool
}

const (
	stressNote = "You've been under a bit more pressure in the afternoons. Consider a **breathing break** at 2 PM."
	moodNote   = "Your mood lifted significantly towards the weekend. *Calmer days usually follow longer sleep.*"
)

// MoodBarColor returns the fill of a mood bar with the given value.
func MoodBarColor(value float64, p Palette) string {
	if value > MoodThreshold {
		return p.SecondaryChart
	}
	return p.PrimaryChart
}

// BuildCharts binds ds to p and returns the stress, mood and sleep charts
// in display order. ds is not modified and no returned slice aliases it, so
// calling BuildCharts again with another palette is side-effect free.
func BuildCharts(ds Datasets, p Palette) []Chart {
	return []Chart{
		StressChart(ds.Stress, p),
		MoodChart(ds.Mood, p),
		SleepChart(ds.Sleep, p),
	}
}

// StressChart returns the stress line chart.
func StressChart(series []StressPoint, p Palette) Chart {
	c := baseChart(p)
	c.Title = "Stress Levels"
	c.Caption = "Last 24 Hours"
	c.Note = stressNote
	c.Kind = ChartLine
	c.TitleColor = p.IdentitySecondary
	c.Stroke = p.PrimaryChart
	c.StrokeWidth = 3
	c.DotFill = p.BackgroundSecondary
	c.ShowYAxis = true
	c.Labels = make([]string, len(series))
	c.Values = make([]float64, len(series))
	for i, pt := range series {
		c.Labels[i] = pt.Time
		c.Values[i] = pt.Level
	}
	return c
}

// MoodChart returns the mood bar chart. Bars above MoodThreshold use the
// secondary chart color.
func MoodChart(series []MoodPoint, p Palette) Chart {
	c := baseChart(p)
	c.Title = "Mood Distribution"
	c.Caption = "This Week"
	c.Note = moodNote
	c.Kind = ChartBar
	c.TitleColor = p.IdentityPrimary
	c.Labels = make([]string, len(series))
	c.Values = make([]float64, len(series))
	c.BarColors = make([]string, len(series))
	for i, pt := range series {
		c.Labels[i] = pt.Day
		c.Values[i] = pt.Value
		c.BarColors[i] = MoodBarColor(pt.Value, p)
	}
	return c
}

// SleepChart returns the sleep trend line chart.
func SleepChart(series []SleepPoint, p Palette) Chart {
	c := baseChart(p)
	c.Title = "Sleep Trends"
	c.Kind = ChartLine
	c.TitleColor = p.SecondaryChart
	c.Stroke = p.SecondaryChart
	c.StrokeWidth = 4
	c.Labels = make([]string, len(series))
	c.Values = make([]float64, len(series))
	for i, pt := range series {
		c.Labels[i] = pt.Day
		c.Values[i] = pt.Hours
	}
	return c
}

func baseChart(p Palette) Chart {
	return Chart{
		Grid:        p.Grid,
		Axis:        p.Axis,
		TooltipBg:   p.TooltipBg,
		TooltipText: p.TooltipText,
	}
}
