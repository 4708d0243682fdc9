// Package store persists the event collection. Every backend stores the
// whole collection at once: load all at startup, save all on change.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hy4ri/countdown-tui/internal/config"
	"github.com/hy4ri/countdown-tui/internal/countdown"
	applog "github.com/hy4ri/countdown-tui/internal/log"
)

// Store loads and saves the full event collection.
type Store interface {
	// Load returns the stored events. Absent or malformed data yields an
	// empty slice and a nil error.
	Load() ([]countdown.Event, error)

	// Save replaces the stored events.
	Save(events []countdown.Event) error

	// Close releases backend resources.
	Close() error
}

// Error describes a failed backend operation.
type Error struct {
	Backend string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsStoreError checks if an error is a store Error and returns it.
func IsStoreError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}

// Open returns the backend selected by cfg.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendKeyring:
		return NewKeyringStore(config.AppName), nil
	case config.BackendSQLite:
		path, err := cfg.StoragePath()
		if err != nil {
			return nil, err
		}
		return OpenSQLite(path)
	case config.BackendFile, "":
		path, err := cfg.StoragePath()
		if err != nil {
			return nil, err
		}
		return NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// decodeEvents parses a stored JSON array. Anything that is not an array
// yields no events; elements that fail to decode or validate are skipped.
func decodeEvents(data []byte, backend string) []countdown.Event {
	if len(data) == 0 {
		return []countdown.Event{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		applog.Warn("stored events are malformed, starting empty", "backend", backend, "err", err)
		return []countdown.Event{}
	}

	return keepValid(decodeEach(raw, backend), backend)
}

func decodeEach(raw []json.RawMessage, backend string) []countdown.Event {
	events := make([]countdown.Event, 0, len(raw))
	for i, r := range raw {
		var e countdown.Event
		if err := json.Unmarshal(r, &e); err != nil {
			applog.Warn("skipping undecodable event", "backend", backend, "index", i, "err", err)
			continue
		}
		events = append(events, e)
	}
	return events
}

// keepValid drops events that fail validation or repeat an ID.
func keepValid(events []countdown.Event, backend string) []countdown.Event {
	out := make([]countdown.Event, 0, len(events))
	seen := make(map[int64]bool, len(events))
	for _, e := range events {
		if err := e.Validate(); err != nil {
			applog.Warn("skipping invalid event", "backend", backend, "id", e.ID, "err", err)
			continue
		}
		if seen[e.ID] {
			applog.Warn("skipping duplicate event", "backend", backend, "id", e.ID)
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

func encodeEvents(events []countdown.Event) ([]byte, error) {
	if events == nil {
		events = []countdown.Event{}
	}
	return json.Marshal(events)
}
