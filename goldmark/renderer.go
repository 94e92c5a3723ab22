package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pandora"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type noteRenderer struct {
	text      lipgloss.Style
	strong    lipgloss.Style
	emphasis  lipgloss.Style
	heading   lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
}

func newRenderer(p pandora.Palette) *noteRenderer {
	return &noteRenderer{
		text:      lipgloss.NewStyle().Foreground(hexColor(p.Text)),
		strong:    lipgloss.NewStyle().Foreground(hexColor(p.IdentityPrimary)).Bold(true),
		emphasis:  lipgloss.NewStyle().Foreground(hexColor(p.TextMuted)).Italic(true),
		heading:   lipgloss.NewStyle().Foreground(hexColor(p.IdentitySecondary)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(hexColor(p.TextMuted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

func hexColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

func (r *noteRenderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, width, &buf)
		if c.NextSibling() != nil {
			buf.WriteString("\n")
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (r *noteRenderer) renderBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(r.collectInline(n, source)))
		buf.WriteString("\n")

	case *ast.Heading:
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(r.heading.Render(r.collectInline(n, source))))
		buf.WriteString("\n")

	case *ast.List:
		r.renderList(n, source, width, buf, 0)

	case *ast.ThematicBreak:
		buf.WriteString(r.muted.Render(strings.Repeat("─", min(width, 24))))
		buf.WriteString("\n")

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.WriteString(r.muted.Render(strings.TrimRight(string(line.Value(source)), "\n")))
			buf.WriteString("\n")
		}

	default:
		// Blockquotes and HTML: render the children as plain blocks.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderBlock(c, source, width, buf)
		}
	}
}

func (r *noteRenderer) renderList(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	num := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "• "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		prefix := strings.Repeat("  ", depth) + marker

		var content strings.Builder
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			if sub, ok := ic.(*ast.List); ok {
				r.writeItem(buf, prefix, content.String(), width)
				content.Reset()
				prefix = strings.Repeat(" ", lipgloss.Width(prefix))
				r.renderList(sub, source, width, buf, depth+1)
				continue
			}
			content.WriteString(r.collectInline(ic, source))
		}
		if content.Len() > 0 {
			r.writeItem(buf, prefix, content.String(), width)
		}
	}
}

// writeItem wraps content and hangs continuation lines under the marker.
func (r *noteRenderer) writeItem(buf *bytes.Buffer, prefix, content string, width int) {
	if content == "" {
		return
	}
	indent := lipgloss.Width(prefix)
	lines := strings.Split(lipgloss.NewStyle().Width(max(width-indent, 10)).Render(content), "\n")
	pad := strings.Repeat(" ", indent)
	for i, line := range lines {
		if i == 0 {
			buf.WriteString(prefix + line + "\n")
			continue
		}
		buf.WriteString(pad + line + "\n")
	}
}

func (r *noteRenderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *noteRenderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.WriteString(r.text.Render(string(n.Segment.Value(source))))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.WriteString(r.text.Render(string(n.Value)))

	case *ast.Emphasis:
		inner := plainInline(n, source)
		if n.Level == 1 {
			buf.WriteString(r.emphasis.Render(inner))
			return
		}
		buf.WriteString(r.strong.Render(inner))

	case *ast.CodeSpan:
		buf.WriteString(r.strong.Render(plainInline(n, source)))

	case *ast.Link:
		buf.WriteString(r.underline.Render(plainInline(n, source)))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}

// plainInline returns the unstyled text of node so that an enclosing style
// is not interrupted by nested resets.
func plainInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
