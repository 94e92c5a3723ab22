package http

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitizePreview makes server-provided preview text safe to draw in a
// single terminal row. ANSI escape sequences are stripped, line breaks and
// tabs become spaces, other control characters are dropped, and runs of
// whitespace collapse to one space.
func sanitizePreview(s string) string {
	s = ansi.Strip(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case r <= 0x1F || r == 0x7F:
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
