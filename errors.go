package pandora

import "errors"

// Sentinel errors for session directory failure modes. None of them reach
// navigation or rendering: History absorbs them at the directory boundary.
var (
	// ErrIdentityUnavailable indicates no user id is present. The fetch is
	// suppressed and nothing is shown to the user.
	ErrIdentityUnavailable = errors.New("identity unavailable")

	// ErrTransport indicates a network or decoding failure during a fetch.
	ErrTransport = errors.New("transport failure")

	// ErrServerRejection indicates the server answered with a non-2xx status.
	ErrServerRejection = errors.New("server rejection")

	// ErrStaleResponse indicates a fetch result was superseded by a newer
	// fetch. It is an expected outcome, not a failure.
	ErrStaleResponse = errors.New("stale response discarded")
)
