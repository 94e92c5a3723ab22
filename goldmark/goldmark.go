// Package goldmark renders the markdown insight notes of the analytics view
// to styled terminal text, using goldmark for parsing and lipgloss for
// styling in the active palette.
package goldmark

import "github.com/fwojciec/pandora"

// Render parses markdown source and returns styled terminal output wrapped
// to width. A non-positive width defaults to 80.
func Render(source string, width int, p pandora.Palette) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	return newRenderer(p).render([]byte(source), width)
}
