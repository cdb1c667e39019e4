package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps every key in a single JSON document on disk, rewritten in
// full on each Put.
type JSONStore struct {
	path    string
	entries map[string]json.RawMessage
}

// OpenJSONStore loads the store at path, creating the parent directory when
// needed. A missing file yields an empty store.
func OpenJSONStore(path string) (*JSONStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &JSONStore{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.entries == nil {
		s.entries = make(map[string]json.RawMessage)
	}

	return s, nil
}

func (s *JSONStore) Get(key string) ([]byte, bool) {
	data, ok := s.entries[key]
	return data, ok
}

func (s *JSONStore) Put(key string, data []byte) error {
	s.entries[key] = json.RawMessage(data)
	return s.flush()
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) flush() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}
