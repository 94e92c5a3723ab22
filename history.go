package pandora

// HistoryState distinguishes a history that has not resolved yet from one
// that resolved with no sessions.
type HistoryState int

const (
	HistoryLoading   HistoryState = iota // No fetch has resolved yet.
	HistoryEmpty                         // Resolved, zero sessions to show.
	HistoryPopulated                     // Resolved, at least one session.
)

// String returns the lowercase state name.
func (s HistoryState) String() string {
	switch s {
	case HistoryLoading:
		return "loading"
	case HistoryEmpty:
		return "empty"
	case HistoryPopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// History is the displayed session list together with the generation
// counter that guards it against out-of-order fetch results.
//
// Each fetch is started with Begin and finished with Complete. Only the
// result of the most recently begun fetch may replace the list; results of
// superseded fetches are discarded with ErrStaleResponse.
type History struct {
	sessions   []Session
	settled    bool   // some fetch has resolved, successfully or not
	pending    bool   // the latest generation has not resolved yet
	generation uint64 // latest generation handed out by Begin
}

// Begin starts a new fetch generation and returns it.
func (h History) Begin() (History, uint64) {
	h.generation++
	h.pending = true
	return h, h.generation
}

// Complete resolves generation gen with the given fetch outcome.
//
// A successful result replaces the list wholesale. A failed result keeps the
// list that is already shown; if nothing was ever shown the history settles
// as empty. Fetch errors are absorbed here: the only error returned is
// ErrStaleResponse, when gen is not the latest pending generation.
func (h History) Complete(gen uint64, sessions []Session, err error) (History, error) {
	if gen != h.generation || !h.pending {
		return h, ErrStaleResponse
	}
	h.pending = false
	h.settled = true
	if err != nil {
		return h, nil
	}
	h.sessions = append([]Session(nil), sessions...)
	return h, nil
}

// State reports whether the history is loading, empty or populated.
func (h History) State() HistoryState {
	switch {
	case !h.settled:
		return HistoryLoading
	case len(h.sessions) == 0:
		return HistoryEmpty
	default:
		return HistoryPopulated
	}
}

// Refreshing reports whether a fetch is in flight while a previously
// resolved list is still being shown.
func (h History) Refreshing() bool { return h.settled && h.pending }

// Generation returns the latest generation handed out by Begin.
func (h History) Generation() uint64 { return h.generation }

// Sessions returns a copy of the displayed sessions.
func (h History) Sessions() []Session {
	return append([]Session(nil), h.sessions...)
}

// Len returns the number of displayed sessions.
func (h History) Len() int { return len(h.sessions) }

// At returns the session at index i.
func (h History) At(i int) Session { return h.sessions[i] }
