package store

import (
	"os"
	"path/filepath"

	"github.com/hy4ri/countdown-tui/internal/countdown"
)

const backendFile = "file"

// FileStore keeps the collection as a JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the
// first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store.
func (s *FileStore) Load() ([]countdown.Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []countdown.Event{}, nil
		}
		return []countdown.Event{}, &Error{Backend: backendFile, Op: "read", Err: err}
	}
	return decodeEvents(data, backendFile), nil
}

// Save implements Store. The file is replaced atomically.
func (s *FileStore) Save(events []countdown.Event) error {
	data, err := encodeEvents(events)
	if err != nil {
		return &Error{Backend: backendFile, Op: "encode", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return &Error{Backend: backendFile, Op: "mkdir", Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".events-*.json")
	if err != nil {
		return &Error{Backend: backendFile, Op: "create temp", Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &Error{Backend: backendFile, Op: "write", Err: err}
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return &Error{Backend: backendFile, Op: "chmod", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Backend: backendFile, Op: "close", Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &Error{Backend: backendFile, Op: "rename", Err: err}
	}
	return nil
}

// Close implements Store.
func (s *FileStore) Close() error {
	return nil
}
