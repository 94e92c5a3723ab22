// Package bubbletea provides the Bubble Tea TUI for the Pandora companion:
// a toggleable sidebar with session history, the chat, insights and ritual
// views, and the wellness check overlay.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/pandora"
)

// SessionFetcher loads the display-ready session list of a user.
// [pandora.SessionDirectory] is the production implementation.
type SessionFetcher interface {
	Fetch(ctx context.Context, userID string) ([]pandora.Session, error)
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. When ctx is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// SessionsLoadedMsg carries the outcome of the session fetch started for
// Generation.
type SessionsLoadedMsg struct {
	Generation uint64
	Sessions   []pandora.Session
	Err        error
}

// ThemeSavedMsg reports whether the theme flag was persisted.
type ThemeSavedMsg struct {
	IsDark bool
	Err    error
}
