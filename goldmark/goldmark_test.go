package goldmark_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pandora"
	"github.com/fwojciec/pandora/goldmark"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// foreground returns the SGR parameters lipgloss emits for hex as a
// foreground color, e.g. "38;2;94;234;211".
func foreground(hex string) string {
	r := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("x")
	r = strings.TrimPrefix(r, "\x1b[")
	return r[:strings.Index(r, "m")]
}

func TestMain(m *testing.M) {
	// Force true color output so palette colors produce escape codes.
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

func TestRender(t *testing.T) {
	t.Parallel()

	dark := pandora.ResolvePalette(true)
	light := pandora.ResolvePalette(false)

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goldmark.Render("", 80, dark))
	})

	t.Run("plain paragraph keeps its text", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("Calmer days follow longer sleep.", 80, dark)
		assert.Equal(t, "Calmer days follow longer sleep.", strings.TrimSpace(stripANSI(result)))
	})

	t.Run("strong text uses the identity color", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("a **breathing break** now", 80, dark)
		assert.Contains(t, stripANSI(result), "breathing break")
		assert.Contains(t, result, foreground(dark.IdentityPrimary))
	})

	t.Run("output depends on palette", func(t *testing.T) {
		t.Parallel()
		src := "Your mood *lifted* this **week**."
		d := goldmark.Render(src, 80, dark)
		l := goldmark.Render(src, 80, light)
		assert.NotEqual(t, d, l)
		assert.Equal(t, stripANSI(d), stripANSI(l))
	})

	t.Run("heading is styled differently from paragraph", func(t *testing.T) {
		t.Parallel()
		heading := goldmark.Render("# Sleep", 80, dark)
		paragraph := goldmark.Render("Sleep", 80, dark)
		assert.Contains(t, stripANSI(heading), "Sleep")
		assert.NotEqual(t, heading, paragraph)
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		src := "You've been under a bit more pressure in the afternoons. Consider a breathing break at 2 PM."
		result := stripANSI(goldmark.Render(src, 30, dark))
		lines := strings.Split(result, "\n")
		assert.Greater(t, len(lines), 1)
		for _, line := range lines {
			assert.LessOrEqual(t, len(strings.TrimRight(line, " ")), 30)
		}
	})

	t.Run("multiple paragraphs are separated by a blank line", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("one\n\ntwo", 80, dark))
		assert.Contains(t, result, "one")
		assert.Contains(t, result, "two")
		assert.Contains(t, result, "\n\n")
	})

	t.Run("bullet and ordered lists", func(t *testing.T) {
		t.Parallel()
		bullets := stripANSI(goldmark.Render("- walk\n- stretch", 80, dark))
		assert.Contains(t, bullets, "• walk")
		assert.Contains(t, bullets, "• stretch")

		ordered := stripANSI(goldmark.Render("3. inhale\n4. exhale", 80, dark))
		assert.Contains(t, ordered, "3. inhale")
		assert.Contains(t, ordered, "4. exhale")
	})

	t.Run("nested list is indented", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("- evening\n  - tea\n  - journal", 80, dark))
		assert.Contains(t, result, "• evening")
		assert.Contains(t, result, "  • tea")
	})

	t.Run("list continuation lines hang under the marker", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("- "+strings.Repeat("rest ", 10), 20, dark))
		lines := strings.Split(result, "\n")
		assert.Greater(t, len(lines), 1)
		for _, line := range lines[1:] {
			assert.True(t, strings.HasPrefix(line, "  "), "line %q", line)
		}
	})

	t.Run("link shows text and destination", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("[guide](https://example.com)", 80, dark))
		assert.Contains(t, result, "guide")
		assert.Contains(t, result, "(https://example.com)")
	})

	t.Run("width zero defaults to 80", func(t *testing.T) {
		t.Parallel()
		src := strings.Repeat("word ", 15)
		assert.Equal(t, goldmark.Render(src, 80, dark), goldmark.Render(src, 0, dark))
	})
}
