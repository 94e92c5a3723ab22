// Package json persists the companion's key-value slots in a JSON file.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/pandora"
)

// Interface compliance check.
var _ pandora.KeyValueStore = (*Store)(nil)

// envelope is the v1 wire format of the state file.
type envelope struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// Store is a [pandora.KeyValueStore] backed by a single JSON file. Every
// call reads the file so that changes made by another process are visible;
// writes replace the file atomically.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a Store for the file at path. The file is created on the
// first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the value stored under key. A missing file or key is reported
// with ok == false.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

// MarshalValues serializes values in v1 envelope format.
func MarshalValues(values map[string]string) ([]byte, error) {
	if values == nil {
		values = map[string]string{}
	}
	return json.MarshalIndent(envelope{Version: 1, Values: values}, "", "  ")
}

// UnmarshalValues deserializes values from v1 envelope format.
func UnmarshalValues(data []byte) (map[string]string, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	if env.Values == nil {
		env.Values = map[string]string{}
	}
	return env.Values, nil
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	values, err := UnmarshalValues(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return values, nil
}

func (s *Store) save(values map[string]string) error {
	data, err := MarshalValues(values)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
