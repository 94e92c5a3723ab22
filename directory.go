package pandora

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// SessionDirectory fetches and normalizes the session list of a user.
// Every Fetch performs at most one lister call.
type SessionDirectory struct {
	lister SessionLister
	layout string
	loc    *time.Location
	logger *log.Logger
}

// DirectoryOption configures a [SessionDirectory].
type DirectoryOption func(*SessionDirectory)

// WithDateLayout sets the layout used to format session dates.
func WithDateLayout(layout string) DirectoryOption {
	return func(d *SessionDirectory) { d.layout = layout }
}

// WithLocation sets the time zone session dates are rendered in.
func WithLocation(loc *time.Location) DirectoryOption {
	return func(d *SessionDirectory) { d.loc = loc }
}

// WithDirectoryLogger sets the logger fetch failures are reported to.
func WithDirectoryLogger(l *log.Logger) DirectoryOption {
	return func(d *SessionDirectory) { d.logger = l }
}

// NewSessionDirectory creates a [SessionDirectory] backed by lister.
func NewSessionDirectory(lister SessionLister, opts ...DirectoryOption) *SessionDirectory {
	d := &SessionDirectory{
		lister: lister,
		layout: DefaultDateLayout,
		loc:    time.Local,
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Fetch returns the normalized sessions of userID.
//
// An empty userID returns ErrIdentityUnavailable without touching the
// network. Lister failures are logged and returned unchanged so the caller
// can keep the list it already shows.
func (d *SessionDirectory) Fetch(ctx context.Context, userID string) ([]Session, error) {
	if userID == "" {
		d.logger.Debug("session fetch skipped", "reason", ErrIdentityUnavailable)
		return nil, ErrIdentityUnavailable
	}
	records, err := d.lister.ListSessions(ctx, userID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			d.logger.Debug("session fetch canceled", "user", userID)
		} else {
			d.logger.Error("failed to load session history", "user", userID, "err", err)
		}
		return nil, err
	}
	sessions := NormalizeSessions(records, d.layout, d.loc)
	d.logger.Debug("session history loaded", "user", userID, "count", len(sessions))
	return sessions, nil
}
