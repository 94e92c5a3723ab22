package bubbletea

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/pandora"
)

var _ tea.Model = Model{}

// Model is the root Bubble Tea model. It owns the navigation state and the
// theme flag; the sidebar owns the session history.
type Model struct {
	sidebar  Sidebar
	nav      pandora.Navigation
	isDark   bool
	wellness bool

	userID   string
	store    pandora.KeyValueStore
	datasets pandora.Datasets
	logger   *log.Logger

	width  int
	height int
	ready  bool
}

// Option configures a [Model].
type Option func(*Model)

// WithUserID sets the identity whose sessions are listed. Empty means no
// identity is available.
func WithUserID(id string) Option {
	return func(m *Model) { m.userID = id }
}

// WithDark sets the initial theme flag.
func WithDark(isDark bool) Option {
	return func(m *Model) { m.isDark = isDark }
}

// WithView sets the view shown at start-up. No session is selected.
func WithView(v pandora.View) Option {
	return func(m *Model) { m.nav = pandora.NewNavigation().GoTo(v) }
}

// WithStore sets where theme changes are persisted.
func WithStore(s pandora.KeyValueStore) Option {
	return func(m *Model) { m.store = s }
}

// WithDatasets sets the series shown in the insights view.
func WithDatasets(ds pandora.Datasets) Option {
	return func(m *Model) { m.datasets = ds }
}

// WithLogger sets the logger for the model and its sidebar.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
		m.sidebar.logger = l
	}
}

// WithSidebar replaces the sidebar, e.g. to change its width or timeout.
func WithSidebar(s Sidebar) Option {
	return func(m *Model) { m.sidebar = s }
}

// New creates the root model with a closed sidebar backed by fetcher.
func New(fetcher SessionFetcher, opts ...Option) Model {
	m := Model{
		sidebar:  NewSidebar(fetcher),
		nav:      pandora.NewNavigation(),
		isDark:   true,
		datasets: pandora.DefaultDatasets(),
		logger:   log.New(io.Discard),
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// Navigation returns the current view and selected session.
func (m Model) Navigation() pandora.Navigation { return m.nav }

// Sidebar returns the navigation panel.
func (m Model) Sidebar() Sidebar { return m.sidebar }

// IsDark reports the theme flag.
func (m Model) IsDark() bool { return m.isDark }

// WellnessOpen reports whether the wellness check overlay is shown.
func (m Model) WellnessOpen() bool { return m.wellness }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ThemeSavedMsg:
		if msg.Err != nil {
			m.logger.Warn("failed to persist theme", "dark", msg.IsDark, "err", msg.Err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.wellness {
		switch msg.String() {
		case "esc", "enter", "q":
			m.wellness = false
		}
		return m, nil
	}

	switch msg.String() {
	case "tab", "ctrl+b":
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Toggle(m.userID)
		return m, cmd
	case "t":
		return m.toggleTheme()
	}

	if m.sidebar.IsOpen() {
		switch msg.String() {
		case "up", "k":
			m.sidebar = m.sidebar.CursorUp()
		case "down", "j":
			m.sidebar = m.sidebar.CursorDown()
		case "esc":
			m.sidebar = m.sidebar.Close()
		case "enter":
			var intent pandora.Intent
			m.sidebar, intent = m.sidebar.Select()
			m = m.apply(intent)
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		m = m.apply(pandora.NewChat{})
	case "i":
		m = m.apply(pandora.SwitchView{View: pandora.ViewInsights})
	case "r":
		m = m.apply(pandora.SwitchView{View: pandora.ViewRituals})
	case "w":
		m = m.apply(pandora.OpenWellnessCheck{})
	}
	return m, nil
}

// apply routes an intent to the navigation state and opens the wellness
// overlay when asked to.
func (m Model) apply(intent pandora.Intent) Model {
	if intent == nil {
		return m
	}
	m.nav = m.nav.Apply(intent)
	if _, ok := intent.(pandora.OpenWellnessCheck); ok {
		m.wellness = true
	}
	id, _ := m.nav.SelectedSession()
	m.logger.Debug("navigate", "intent", fmt.Sprintf("%T", intent), "view", m.nav.View(), "session", id)
	return m
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.isDark = !m.isDark
	if m.store == nil {
		return m, nil
	}
	store, isDark := m.store, m.isDark
	return m, func() tea.Msg {
		return ThemeSavedMsg{IsDark: isDark, Err: pandora.StoreTheme(store, isDark)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	styles := NewStyles(pandora.ResolvePalette(m.isDark))
	bodyH := max(m.height-1, 1)

	mainW := m.width
	var panel string
	if m.sidebar.IsOpen() {
		panel = m.sidebar.View(m.nav, m.isDark, styles, bodyH)
		mainW = max(m.width-lipgloss.Width(panel)-1, 20)
	}

	main := m.renderMain(styles, mainW)
	if m.wellness {
		main = lipgloss.Place(mainW, bodyH, lipgloss.Center, lipgloss.Center, m.renderWellness(styles))
	}

	body := main
	if panel != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", main)
	}
	return body + "\n" + m.statusLine(styles)
}

func (m Model) renderMain(styles Styles, width int) string {
	var b strings.Builder
	b.WriteString(styles.Heading.Render(m.nav.View().Title()))
	b.WriteString("\n\n")

	switch m.nav.View() {
	case pandora.ViewInsights:
		b.WriteString(RenderDashboard(m.datasets, m.isDark, width))
	case pandora.ViewRituals:
		b.WriteString(styles.Text.Render("Small practices for steadier days."))
		b.WriteString("\n\n")
		for _, r := range rituals {
			b.WriteString(styles.Cursor.Render("• ") + styles.Text.Render(r))
			b.WriteString("\n")
		}
	default:
		b.WriteString(m.renderChat(styles))
	}
	return b.String()
}

var rituals = []string{
	"Box breathing, four counts each side",
	"Two-minute body scan",
	"Write down three good things",
	"Evening wind-down without screens",
}

func (m Model) renderChat(styles Styles) string {
	id, ok := m.nav.SelectedSession()
	if !ok {
		return styles.Text.Render("How are you feeling today?") + "\n" +
			styles.Muted.Render("A new conversation starts here.")
	}
	for _, s := range m.sidebar.History().Sessions() {
		if s.ID == id {
			return styles.Muted.Render("Resumed session from "+s.Date) + "\n" + styles.Text.Render(s.Preview)
		}
	}
	return styles.Muted.Render("Resumed session " + id)
}

func (m Model) renderWellness(styles Styles) string {
	content := styles.Heading.Render("Wellness Check") + "\n\n" +
		styles.Text.Render("A short check-in about sleep and daily routines.") + "\n" +
		styles.Muted.Render("Press esc to return.")
	return styles.Overlay.Render(content)
}

func (m Model) statusLine(styles Styles) string {
	if m.sidebar.IsOpen() {
		return styles.Muted.Render("↑/↓ move · enter select · esc close · t theme · ctrl+c quit")
	}
	return styles.Muted.Render("tab menu · n new chat · i insights · r rituals · w wellness · t theme · q quit")
}
