// Package store provides a SQLite-backed cache for advisory responses.
// Only advisor text is cached; the trip document itself is never persisted.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed advisory response caching. It satisfies
// advisor.ResponseCache.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached response for a prompt digest, if any.
func (c *Cache) Get(kind, digest string) (string, bool) {
	var response string
	err := c.db.QueryRow(
		"SELECT response FROM advisor_responses WHERE kind = ? AND digest = ?",
		kind, digest,
	).Scan(&response)
	if err != nil {
		return "", false
	}
	return response, true
}

// Put stores a response under its prompt digest, replacing any prior one.
func (c *Cache) Put(kind, digest, text string) error {
	_, err := c.db.Exec(`
		INSERT INTO advisor_responses (kind, digest, response, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(kind, digest) DO UPDATE SET
			response = excluded.response,
			fetched_at = excluded.fetched_at`,
		kind, digest, text, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Prune removes responses fetched before the cutoff. Stale advisory text
// is worse than a refetch once the trip state has moved on.
func (c *Cache) Prune(maxAge time.Duration) error {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)
	_, err := c.db.Exec("DELETE FROM advisor_responses WHERE fetched_at < ?", cutoff)
	return err
}
