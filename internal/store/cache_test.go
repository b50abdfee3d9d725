package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "advisor.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := openTestCache(t)

	if _, ok := c.Get("budget", "abc123"); ok {
		t.Fatal("Get on empty cache returned a hit")
	}

	if err := c.Put("budget", "abc123", "You are under budget."); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := c.Get("budget", "abc123")
	if !ok {
		t.Fatal("Get after Put missed")
	}
	if got != "You are under budget." {
		t.Fatalf("Get = %q", got)
	}
}

func TestCache_KindsAreSeparate(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("budget", "same-digest", "budget answer"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, ok := c.Get("pivot", "same-digest"); ok {
		t.Fatal("digest leaked across kinds")
	}
}

func TestCache_PutReplaces(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("question", "d1", "first"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put("question", "d1", "second"); err != nil {
		t.Fatalf("Put replace: %v", err)
	}

	got, ok := c.Get("question", "d1")
	if !ok || got != "second" {
		t.Fatalf("Get = %q/%v, want replaced value", got, ok)
	}
}

func TestCache_PruneRemovesOldEntries(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("budget", "old", "stale"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	// Backdate the entry past the cutoff.
	old := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	if _, err := c.db.Exec("UPDATE advisor_responses SET fetched_at = ?", old); err != nil {
		t.Fatalf("backdating entry: %v", err)
	}

	if err := c.Prune(24 * time.Hour); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	if _, ok := c.Get("budget", "old"); ok {
		t.Fatal("pruned entry still present")
	}
}
