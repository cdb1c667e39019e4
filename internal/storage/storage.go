// Package storage is the sole gateway between in-memory collections and
// durable state. Values are JSON-encoded, one entry per key, with a
// read-through default on load and a write-through save on every mutation.
package storage

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

// Durable keys, one per collection plus the settings singleton.
const (
	KeyHabits   = "life-dashboard-habits"
	KeyJournal  = "life-dashboard-journal"
	KeyExpenses = "life-dashboard-expenses"
	KeyHealth   = "life-dashboard-health"
	KeyGoals    = "life-dashboard-goals"
	KeyTasks    = "life-dashboard-tasks"
	KeySettings = "life-dashboard-settings"
)

// Open selects a backend for the given data path: ".json" files use the JSON
// file store, everything else SQLite. When the backend cannot be opened the
// store degrades to memory-only for the session; the dashboard keeps working
// and nothing is surfaced to the user beyond a log line.
func Open(path string) Backend {
	if strings.HasSuffix(path, ".json") {
		b, err := OpenJSONStore(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("storage unavailable, running in memory")
			return NewMemStore()
		}
		return b
	}

	b, err := OpenSQLiteStore(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("storage unavailable, running in memory")
		return NewMemStore()
	}
	return b
}

// Load returns the value stored under key deserialized as T. Absent keys and
// unparseable values both yield def; a corrupt entry never propagates an
// error to the caller.
func Load[T any](b Backend, key string, def T) T {
	data, ok := b.Get(key)
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unparseable stored value")
		return def
	}
	return v
}

// Save serializes v and writes it under key. Write failures degrade to a
// logged no-op so a broken backend never blocks a mutation.
func Save[T any](b Backend, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to serialize value")
		return
	}

	if err := b.Put(key, data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to persist value")
	}
}
