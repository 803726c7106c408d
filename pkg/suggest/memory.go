package suggest

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Memory is the persistent suggestion store. Keys are the normalized
// image filename plus the file size, so renamed copies of the same
// image still hit.
type Memory struct {
	db *sql.DB
}

// OpenMemory opens (or creates) the store at the given path. Use
// ":memory:" for an ephemeral store in tests.
func OpenMemory(path string) (*Memory, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open suggestion store: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure suggestion store: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS suggestions (
		filename   TEXT    NOT NULL,
		file_size  INTEGER NOT NULL,
		text       TEXT    NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (filename, file_size)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize suggestion store: %w", err)
	}
	return &Memory{db: db}, nil
}

// Close releases the store.
func (m *Memory) Close() error {
	return m.db.Close()
}

// Get looks up a remembered suggestion.
func (m *Memory) Get(filename string, size int64) (string, bool, error) {
	var text string
	err := m.db.QueryRow(
		"SELECT text FROM suggestions WHERE filename = ? AND file_size = ?",
		NormalizeFilename(filename), size,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read suggestion: %w", err)
	}
	return text, true, nil
}

// Put stores or replaces a suggestion.
func (m *Memory) Put(filename string, size int64, text string) error {
	_, err := m.db.Exec(
		`INSERT INTO suggestions (filename, file_size, text, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (filename, file_size) DO UPDATE SET text = excluded.text, updated_at = excluded.updated_at`,
		NormalizeFilename(filename), size, text, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store suggestion: %w", err)
	}
	return nil
}

// NormalizeFilename reduces a path to a lowercase basename so the same
// image referenced through different directories keys identically.
func NormalizeFilename(name string) string {
	return strings.ToLower(strings.TrimSpace(filepath.Base(name)))
}
