package pandora

// Palette defines the semantic colors of the analytics view for one theme.
// Colors are hex strings. Palette is comparable, so callers can use it as a
// dependency key when deciding whether rendered output must be rebuilt.
type Palette struct {
	Background          string // Screen background
	BackgroundSecondary string // Card background, line chart dot fill
	Text                string // Primary text
	TextMuted           string // Captions, placeholders

	Grid        string // Chart grid lines
	Axis        string // Axis labels and ticks
	TooltipBg   string // Tooltip background
	TooltipText string // Tooltip text

	PrimaryChart   string // Main series color
	SecondaryChart string // Second series color, high mood bars

	IdentityPrimary   string // Teal in dark mode, slate blue in light mode
	IdentitySecondary string // Violet in dark mode, tan in light mode
}

var darkPalette = Palette{
	Background:          "#0F1115",
	BackgroundSecondary: "#121826",
	Text:                "#E2E8F0",
	TextMuted:           "#94A3B8",
	Grid:                "#334155",
	Axis:                "#64748B",
	TooltipBg:           "#1E293B",
	TooltipText:         "#E2E8F0",
	PrimaryChart:        "#5EEAD4",
	SecondaryChart:      "#A78BFA",
	IdentityPrimary:     "#5EEAD4",
	IdentitySecondary:   "#A78BFA",
}

var lightPalette = Palette{
	Background:          "#FDF8EB",
	BackgroundSecondary: "#F4F1EA",
	Text:                "#2C3E50",
	TextMuted:           "#64748B",
	Grid:                "#CBD5E1",
	Axis:                "#64748B",
	TooltipBg:           "#FFFFFF",
	TooltipText:         "#1E293B",
	PrimaryChart:        "#5D8AA8",
	SecondaryChart:      "#C8A67B",
	IdentityPrimary:     "#5D8AA8",
	IdentitySecondary:   "#C8A67B",
}

// ResolvePalette returns the dark palette when isDark is set and the light
// palette otherwise.
func ResolvePalette(isDark bool) Palette {
	if isDark {
		return darkPalette
	}
	return lightPalette
}

// ThemeLabel returns the sidebar label for the current theme.
func ThemeLabel(isDark bool) string {
	if isDark {
		return "Night Mode"
	}
	return "Day Mode"
}

// ThemeIcon returns the glyph shown next to ThemeLabel.
func ThemeIcon(isDark bool) string {
	if isDark {
		return "☾"
	}
	return "☀"
}
