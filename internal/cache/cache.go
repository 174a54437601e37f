// Package cache persists DOI search results in SQLite so repeated runs
// do not re-query the metadata API for the same entries.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/matsen/bibtidy/internal/normalize"
)

// Cache wraps a SQLite database of past DOI lookups, keyed by simplified
// title. A stored empty DOI records a search that found nothing, so
// misses are cached too.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path, creating
// parent directories as needed.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS doi_lookups (
			title_key  TEXT PRIMARY KEY,
			doi        TEXT NOT NULL,
			checked_at TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// titleKey reduces a title to the cache key: normalized, alphanumerics only.
func titleKey(title string) string {
	return normalize.Alnum(normalize.Text(title))
}

// Get returns the cached DOI for a title. found reports whether a lookup
// was ever recorded; a found-but-empty DOI means the search came up empty.
func (c *Cache) Get(title string) (doi string, found bool, err error) {
	if c == nil {
		return "", false, nil
	}
	key := titleKey(title)
	if key == "" {
		return "", false, nil
	}

	row := c.db.QueryRow(`SELECT doi FROM doi_lookups WHERE title_key = ?`, key)
	if err := row.Scan(&doi); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("querying cache: %w", err)
	}
	return doi, true, nil
}

// Put records the result of a DOI search. An empty doi records a miss.
func (c *Cache) Put(title, doi string) error {
	if c == nil {
		return nil
	}
	key := titleKey(title)
	if key == "" {
		return nil
	}

	_, err := c.db.Exec(`
		INSERT INTO doi_lookups (title_key, doi, checked_at)
		VALUES (?, ?, ?)
		ON CONFLICT(title_key) DO UPDATE SET doi = excluded.doi, checked_at = excluded.checked_at`,
		key, doi, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
