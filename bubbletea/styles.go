package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pandora"
)

// Styles maps a Palette to lipgloss styles for TUI rendering.
type Styles struct {
	Palette pandora.Palette

	Brand      lipgloss.Style
	Tagline    lipgloss.Style
	Item       lipgloss.Style
	ActiveItem lipgloss.Style
	Cursor     lipgloss.Style
	Section    lipgloss.Style
	Preview    lipgloss.Style
	Date       lipgloss.Style
	Muted      lipgloss.Style
	Text       lipgloss.Style
	Heading    lipgloss.Style
	Panel      lipgloss.Style
	Overlay    lipgloss.Style
	Tooltip    lipgloss.Style
}

// NewStyles creates Styles from a Palette.
func NewStyles(p pandora.Palette) Styles {
	return Styles{
		Palette:    p,
		Brand:      lipgloss.NewStyle().Foreground(hexColor(p.IdentityPrimary)).Bold(true),
		Tagline:    lipgloss.NewStyle().Foreground(hexColor(p.TextMuted)),
		Item:       lipgloss.NewStyle().Foreground(hexColor(p.TextMuted)),
		ActiveItem: lipgloss.NewStyle().Foreground(hexColor(p.IdentityPrimary)).Background(hexColor(p.TooltipBg)).Bold(true),
		Cursor:     lipgloss.NewStyle().Foreground(hexColor(p.IdentitySecondary)).Bold(true),
		Section:    lipgloss.NewStyle().Foreground(hexColor(p.Axis)).Bold(true),
		Preview:    lipgloss.NewStyle().Foreground(hexColor(p.Text)),
		Date:       lipgloss.NewStyle().Foreground(hexColor(p.TextMuted)).Faint(true),
		Muted:      lipgloss.NewStyle().Foreground(hexColor(p.TextMuted)).Faint(true),
		Text:       lipgloss.NewStyle().Foreground(hexColor(p.Text)),
		Heading:    lipgloss.NewStyle().Foreground(hexColor(p.IdentitySecondary)).Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(hexColor(p.Grid)).
			PaddingRight(1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hexColor(p.IdentityPrimary)).
			Padding(1, 2),
		Tooltip: lipgloss.NewStyle().Foreground(hexColor(p.TooltipText)).Background(hexColor(p.TooltipBg)),
	}
}

func hexColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}
