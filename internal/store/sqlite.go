package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hy4ri/countdown-tui/internal/countdown"
	applog "github.com/hy4ri/countdown-tui/internal/log"
)

const backendSQLite = "sqlite"

// SQLiteStore keeps the collection in an events table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, &Error{Backend: backendSQLite, Op: "mkdir", Err: err}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &Error{Backend: backendSQLite, Op: "open", Err: err}
	}
	// One connection keeps :memory: databases alive between calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &Error{Backend: backendSQLite, Op: "ping", Err: err}
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0
	)`)
	if err != nil {
		return &Error{Backend: backendSQLite, Op: "create schema", Err: err}
	}
	return nil
}

// Load implements Store. Rows come back in the order they were saved.
func (s *SQLiteStore) Load() ([]countdown.Event, error) {
	rows, err := s.db.Query(`SELECT id, name, date, time, icon, color, created_at FROM events ORDER BY position, id`)
	if err != nil {
		return []countdown.Event{}, &Error{Backend: backendSQLite, Op: "query", Err: err}
	}
	defer rows.Close()

	var events []countdown.Event
	for rows.Next() {
		var e countdown.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Time, &e.Icon, &e.Color, &e.CreatedAt); err != nil {
			applog.Warn("skipping unreadable event row", "backend", backendSQLite, "err", err)
			continue
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return []countdown.Event{}, &Error{Backend: backendSQLite, Op: "iterate", Err: err}
	}

	return keepValid(events, backendSQLite), nil
}

// Save implements Store. The table is replaced in one transaction.
func (s *SQLiteStore) Save(events []countdown.Event) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return &Error{Backend: backendSQLite, Op: "begin", Err: err}
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM events`); err != nil {
		return &Error{Backend: backendSQLite, Op: "clear", Err: err}
	}

	stmt, err := tx.Prepare(`INSERT INTO events (id, name, date, time, icon, color, created_at, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return &Error{Backend: backendSQLite, Op: "prepare", Err: err}
	}
	defer stmt.Close()

	for i, e := range events {
		if _, err = stmt.Exec(e.ID, e.Name, e.Date, e.Time, e.Icon, e.Color, e.CreatedAt, i); err != nil {
			return &Error{Backend: backendSQLite, Op: fmt.Sprintf("insert %d", e.ID), Err: err}
		}
	}

	if err = tx.Commit(); err != nil {
		return &Error{Backend: backendSQLite, Op: "commit", Err: err}
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
