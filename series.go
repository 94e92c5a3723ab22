package pandora

// MoodPoint is the average mood of a day on a 0-10 scale.
type MoodPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// StressPoint is the stress level at a time of day on a 0-100 scale.
type StressPoint struct {
	Time  string  `json:"time"`
	Level float64 `json:"level"`
}

// SleepPoint is the hours slept on a day.
type SleepPoint struct {
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

// Datasets holds the series shown by the analytics view.
type Datasets struct {
	Mood   []MoodPoint
	Stress []StressPoint
	Sleep  []SleepPoint
}

// DefaultDatasets returns a fresh copy of the built-in weekly series.
func DefaultDatasets() Datasets {
	return Datasets{
		Mood: []MoodPoint{
			{Day: "Mon", Value: 6},
			{Day: "Tue", Value: 5},
			{Day: "Wed", Value: 7},
			{Day: "Thu", Value: 4},
			{Day: "Fri", Value: 6},
			{Day: "Sat", Value: 8},
			{Day: "Sun", Value: 7},
		},
		Stress: []StressPoint{
			{Time: "Morning", Level: 30},
			{Time: "Noon", Level: 65},
			{Time: "Afternoon", Level: 50},
			{Time: "Evening", Level: 40},
			{Time: "Night", Level: 20},
		},
		Sleep: []SleepPoint{
			{Day: "Mon", Hours: 6.5},
			{Day: "Tue", Hours: 7},
			{Day: "Wed", Hours: 5.5},
			{Day: "Thu", Hours: 8},
			{Day: "Fri", Hours: 7.5},
			{Day: "Sat", Hours: 9},
			{Day: "Sun", Hours: 8},
		},
	}
}
