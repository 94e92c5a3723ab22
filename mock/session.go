// Package mock provides test doubles for pandora interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/pandora"
)

// Interface compliance checks.
var (
	_ pandora.SessionLister = (*SessionLister)(nil)
	_ pandora.KeyValueStore = (*KeyValueStore)(nil)
)

// SessionLister is a test double for pandora.SessionLister.
// Set ListSessionsFn before calling ListSessions.
type SessionLister struct {
	ListSessionsFn func(ctx context.Context, userID string) ([]pandora.SessionRecord, error)
}

// ListSessions delegates to ListSessionsFn.
func (l *SessionLister) ListSessions(ctx context.Context, userID string) ([]pandora.SessionRecord, error) {
	return l.ListSessionsFn(ctx, userID)
}

// KeyValueStore is a test double for pandora.KeyValueStore.
// Set the function fields for the methods you need.
type KeyValueStore struct {
	GetFn    func(key string) (string, bool, error)
	SetFn    func(key, value string) error
	DeleteFn func(key string) error
}

// Get delegates to GetFn.
func (s *KeyValueStore) Get(key string) (string, bool, error) {
	return s.GetFn(key)
}

// Set delegates to SetFn.
func (s *KeyValueStore) Set(key, value string) error {
	return s.SetFn(key, value)
}

// Delete delegates to DeleteFn.
func (s *KeyValueStore) Delete(key string) error {
	return s.DeleteFn(key)
}
