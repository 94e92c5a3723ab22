// Package pandora coordinates the client-side state of the Pandora wellness
// companion: the active view, the resumed session, the history of past
// sessions and the palette used by the analytics view.
package pandora

import (
	"context"
	"time"
)

// DefaultDateLayout renders dates the way an en-US locale prints a short
// date, e.g. 1/1/2024.
const DefaultDateLayout = "1/2/2006"

// InvalidDate is shown for a session whose creation time is unknown.
const InvalidDate = "Invalid Date"

// Session is a past conversation as shown in the history panel.
// Date is derived once at fetch time and never re-derived on render.
type Session struct {
	ID      string
	Date    string
	Preview string
}

// SessionRecord is a session as reported by the server.
type SessionRecord struct {
	ID        string
	CreatedAt time.Time
	Preview   string
}

// SessionLister lists the past sessions of a user in the server's order.
type SessionLister interface {
	ListSessions(ctx context.Context, userID string) ([]SessionRecord, error)
}

// NormalizeSessions converts server records into display sessions. Order is
// preserved. Timestamps are converted to loc before formatting with layout;
// a zero timestamp is rendered as [InvalidDate].
func NormalizeSessions(records []SessionRecord, layout string, loc *time.Location) []Session {
	if layout == "" {
		layout = DefaultDateLayout
	}
	if loc == nil {
		loc = time.Local
	}
	sessions := make([]Session, len(records))
	for i, r := range records {
		date := InvalidDate
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.In(loc).Format(layout)
		}
		sessions[i] = Session{
			ID:      r.ID,
			Date:    date,
			Preview: r.Preview,
		}
	}
	return sessions
}
