package bubbletea

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/pandora"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultSidebarWidth is the panel width including its border.
	DefaultSidebarWidth = 34

	// DefaultFetchTimeout bounds a single session list fetch.
	DefaultFetchTimeout = 10 * time.Second

	brandName = "PANDORA"
	tagline   = "Always here."
)

// navItem is a fixed entry at the top of the sidebar.
type navItem struct {
	label  string
	intent pandora.Intent
}

var navItems = []navItem{
	{label: "New Chat", intent: pandora.NewChat{}},
	{label: "Mood Insights", intent: pandora.SwitchView{View: pandora.ViewInsights}},
	{label: "Ritual Lab", intent: pandora.SwitchView{View: pandora.ViewRituals}},
	{label: "Wellness Check", intent: pandora.OpenWellnessCheck{}},
}

// Sidebar is the navigation panel. It owns its open flag, the cursor and the
// session history. Opening the panel refreshes the history; choosing an item
// closes the panel and yields the navigation intent for the caller to apply.
type Sidebar struct {
	fetcher SessionFetcher
	timeout time.Duration
	width   int
	logger  *log.Logger

	open    bool
	cursor  int
	history pandora.History
	spinner spinner.Model
}

// SidebarOption configures a [Sidebar].
type SidebarOption func(*Sidebar)

// WithFetchTimeout bounds each session fetch. Zero disables the timeout.
func WithFetchTimeout(d time.Duration) SidebarOption {
	return func(s *Sidebar) { s.timeout = d }
}

// WithSidebarWidth sets the panel width.
func WithSidebarWidth(w int) SidebarOption {
	return func(s *Sidebar) { s.width = w }
}

// WithSidebarLogger sets the logger stale results are reported to.
func WithSidebarLogger(l *log.Logger) SidebarOption {
	return func(s *Sidebar) { s.logger = l }
}

// NewSidebar creates a closed Sidebar that loads sessions through fetcher.
func NewSidebar(fetcher SessionFetcher, opts ...SidebarOption) Sidebar {
	s := Sidebar{
		fetcher: fetcher,
		timeout: DefaultFetchTimeout,
		width:   DefaultSidebarWidth,
		logger:  log.New(io.Discard),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// IsOpen reports whether the panel is shown.
func (s Sidebar) IsOpen() bool { return s.open }

// History returns the session history shown in the panel.
func (s Sidebar) History() pandora.History { return s.history }

// Cursor returns the index of the highlighted item.
func (s Sidebar) Cursor() int { return s.cursor }

// Width returns the panel width.
func (s Sidebar) Width() int { return s.width }

// Len returns the number of selectable items.
func (s Sidebar) Len() int { return len(navItems) + s.history.Len() }

// Open shows the panel. Only the closed to open transition starts a fetch;
// opening an open panel does nothing.
func (s Sidebar) Open(userID string) (Sidebar, tea.Cmd) {
	if s.open {
		return s, nil
	}
	s.open = true
	s.cursor = 0
	var gen uint64
	s.history, gen = s.history.Begin()
	return s, tea.Batch(s.fetch(gen, userID), s.spinner.Tick)
}

// Close hides the panel. An in-flight fetch still updates the history.
func (s Sidebar) Close() Sidebar {
	s.open = false
	return s
}

// Toggle opens a closed panel and closes an open one.
func (s Sidebar) Toggle(userID string) (Sidebar, tea.Cmd) {
	if s.open {
		return s.Close(), nil
	}
	return s.Open(userID)
}

// CursorUp moves the highlight one item up.
func (s Sidebar) CursorUp() Sidebar {
	if s.cursor > 0 {
		s.cursor--
	}
	return s
}

// CursorDown moves the highlight one item down.
func (s Sidebar) CursorDown() Sidebar {
	if s.cursor < s.Len()-1 {
		s.cursor++
	}
	return s
}

// Select closes the panel and returns the intent of the highlighted item.
// A closed panel returns a nil intent.
func (s Sidebar) Select() (Sidebar, pandora.Intent) {
	if !s.open {
		return s, nil
	}
	s.open = false
	if s.cursor < len(navItems) {
		return s, navItems[s.cursor].intent
	}
	return s, pandora.ResumeSession{ID: s.history.At(s.cursor - len(navItems)).ID}
}

// Update handles fetch results and spinner ticks.
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionsLoadedMsg:
		h, err := s.history.Complete(msg.Generation, msg.Sessions, msg.Err)
		if errors.Is(err, pandora.ErrStaleResponse) {
			s.logger.Debug("discarding stale session list", "generation", msg.Generation, "latest", s.history.Generation())
			return s, nil
		}
		s.history = h
		s.cursor = min(s.cursor, s.Len()-1)
		return s, nil

	case spinner.TickMsg:
		if !s.loading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s Sidebar) loading() bool {
	return s.history.State() == pandora.HistoryLoading || s.history.Refreshing()
}

func (s Sidebar) fetch(gen uint64, userID string) tea.Cmd {
	fetcher, timeout := s.fetcher, s.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		sessions, err := fetcher.Fetch(ctx, userID)
		return SessionsLoadedMsg{Generation: gen, Sessions: sessions, Err: err}
	}
}

// View renders the panel. nav marks the active item; isDark selects the
// footer label.
func (s Sidebar) View(nav pandora.Navigation, isDark bool, styles Styles, height int) string {
	inner := max(s.width-2, 8)
	var b strings.Builder

	b.WriteString(styles.Brand.Render(brandName))
	b.WriteString("\n")
	b.WriteString(styles.Tagline.Render(tagline))
	b.WriteString("\n\n")

	for i, item := range navItems {
		b.WriteString(s.itemLine(i, item.label, isActive(item.intent, nav), inner, styles))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Section.Render("PAST SESSIONS"))
	if s.history.Refreshing() {
		b.WriteString(" " + s.spinner.View())
	}
	b.WriteString("\n")

	switch s.history.State() {
	case pandora.HistoryLoading:
		b.WriteString(s.spinner.View() + " " + styles.Muted.Render("Loading…"))
		b.WriteString("\n")
	case pandora.HistoryEmpty:
		b.WriteString(styles.Muted.Render("No history yet"))
		b.WriteString("\n")
	default:
		for i := range s.history.Len() {
			sess := s.history.At(i)
			preview := runewidth.Truncate(sess.Preview, inner-2, "…")
			b.WriteString(s.itemLine(len(navItems)+i, preview, false, inner, styles))
			b.WriteString("\n")
			b.WriteString("  " + styles.Date.Render(sess.Date))
			b.WriteString("\n")
		}
	}

	body := b.String()
	footer := styles.Muted.Render(pandora.ThemeIcon(isDark) + " " + pandora.ThemeLabel(isDark))
	gap := height - lipgloss.Height(body) - lipgloss.Height(footer)
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return styles.Panel.Width(s.width - 1).Render(body + footer)
}

func (s Sidebar) itemLine(i int, label string, active bool, width int, styles Styles) string {
	marker := "  "
	if s.cursor == i {
		marker = styles.Cursor.Render("› ")
	}
	label = runewidth.Truncate(label, width-2, "…")
	switch {
	case active:
		return marker + styles.ActiveItem.Render(label)
	case i >= len(navItems):
		return marker + styles.Preview.Render(label)
	default:
		return marker + styles.Item.Render(label)
	}
}

// isActive reports whether a navigation item corresponds to the current
// view. New Chat is active on a fresh chat, not a resumed one.
func isActive(intent pandora.Intent, nav pandora.Navigation) bool {
	switch it := intent.(type) {
	case pandora.NewChat:
		_, resumed := nav.SelectedSession()
		return nav.View() == pandora.ViewChat && !resumed
	case pandora.SwitchView:
		return nav.View() == it.View
	default:
		return false
	}
}
