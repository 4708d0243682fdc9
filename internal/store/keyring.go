package store

import (
	"errors"

	"github.com/zalando/go-keyring"

	"github.com/hy4ri/countdown-tui/internal/countdown"
)

const (
	backendKeyring = "keyring"
	keyringUser    = "events"
)

// KeyringStore keeps the collection as one JSON secret in the system
// keyring, the closest thing a desktop has to browser local storage.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a store under the given keyring service name.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

// Load implements Store.
func (s *KeyringStore) Load() ([]countdown.Event, error) {
	data, err := keyring.Get(s.service, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return []countdown.Event{}, nil
		}
		return []countdown.Event{}, &Error{Backend: backendKeyring, Op: "get", Err: err}
	}
	return decodeEvents([]byte(data), backendKeyring), nil
}

// Save implements Store.
func (s *KeyringStore) Save(events []countdown.Event) error {
	data, err := encodeEvents(events)
	if err != nil {
		return &Error{Backend: backendKeyring, Op: "encode", Err: err}
	}
	if err := keyring.Set(s.service, keyringUser, string(data)); err != nil {
		return &Error{Backend: backendKeyring, Op: "set", Err: err}
	}
	return nil
}

// Close implements Store.
func (s *KeyringStore) Close() error {
	return nil
}
