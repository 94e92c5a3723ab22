// Package http implements [pandora.SessionLister] over the companion's HTTP API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/pandora"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the address of a locally running companion API.
	DefaultBaseURL = "http://localhost:8000"

	sessionsPath    = "/chat/sessions/"
	requestIDHeader = "X-Request-Id"

	// maxErrorBody bounds how much of a rejected response is kept for logs.
	maxErrorBody = 512
)

// Interface compliance check.
var _ pandora.SessionLister = (*SessionClient)(nil)

// SessionClient lists past sessions via GET {base}/chat/sessions/{userID}.
type SessionClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	newID      func() string
}

// Option configures a [SessionClient].
type Option func(*SessionClient)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(baseURL string) Option {
	return func(c *SessionClient) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *SessionClient) { c.httpClient = hc }
}

// WithLogger sets the logger requests are traced to.
func WithLogger(l *log.Logger) Option {
	return func(c *SessionClient) { c.logger = l }
}

// NewSessionClient creates a [SessionClient] with the given options.
func NewSessionClient(opts ...Option) *SessionClient {
	c := &SessionClient{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     log.New(io.Discard),
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// sessionDTO is one element of the sessions response.
type sessionDTO struct {
	ID        string `json:"id"`
	Preview   string `json:"preview"`
	CreatedAt string `json:"created_at"`
}

// ListSessions fetches the sessions of userID in server order.
// Connection and decoding failures wrap [pandora.ErrTransport]; non-2xx
// responses wrap [pandora.ErrServerRejection]. A record whose created_at
// cannot be parsed is kept with a zero CreatedAt.
func (c *SessionClient) ListSessions(ctx context.Context, userID string) ([]pandora.SessionRecord, error) {
	endpoint := c.baseURL + sessionsPath + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http: %w: %w", pandora.ErrTransport, err)
	}
	reqID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http: %w: %w", pandora.ErrTransport, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("sessions request", "request_id", reqID, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseHTTPError(resp)
	}

	var dtos []sessionDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("http: %w: decode sessions: %w", pandora.ErrTransport, err)
	}

	records := make([]pandora.SessionRecord, 0, len(dtos))
	for i, dto := range dtos {
		createdAt, err := parseTimestamp(dto.CreatedAt)
		if err != nil {
			c.logger.Warn("unparseable session timestamp", "request_id", reqID, "index", i, "id", dto.ID, "err", err)
		}
		records = append(records, pandora.SessionRecord{
			ID:        dto.ID,
			CreatedAt: createdAt,
			Preview:   sanitizePreview(dto.Preview),
		})
	}
	return records, nil
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return fmt.Errorf("http: %w: HTTP %d", pandora.ErrServerRejection, resp.StatusCode)
	}
	return fmt.Errorf("http: %w: HTTP %d: %s", pandora.ErrServerRejection, resp.StatusCode, strings.TrimSpace(string(body)))
}

// timestampLayouts are tried in order. The server emits RFC 3339 with
// fractional seconds; naive timestamps are read in local time.
var timestampLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02 15:04:05.999999999Z07:00", false},
	{"2006-01-02 15:04:05.999999999", true},
}

func parseTimestamp(s string) (time.Time, error) {
	for _, l := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if l.naive {
			t, err = time.ParseInLocation(l.layout, s, time.Local)
		} else {
			t, err = time.Parse(l.layout, s)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid created_at %q", s)
}
