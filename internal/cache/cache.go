// Package cache is a persistent response cache: named caches mapping a fully
// qualified request URL to the last successful response body for that URL.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/restohub/internal/db"
)

// ErrCache marks a failure to open, read or write a cache.
var ErrCache = errors.New("cache failure")

// Entry is one cached response.
type Entry struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

// Storage owns all named caches.
type Storage struct {
	db *db.DB
}

// NewStorage creates a Storage backed by the given database.
func NewStorage(database *db.DB) *Storage {
	return &Storage{db: database}
}

// Open returns the cache with the given name, creating it if needed.
func (s *Storage) Open(ctx context.Context, name string) (*Cache, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: cache name is required", ErrCache)
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO response_caches (name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("%w: opening cache %s: %v", ErrCache, name, err)
	}
	return &Cache{db: s.db, name: name}, nil
}

// Names lists the caches that have been opened at least once.
func (s *Storage) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM response_caches ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("%w: listing caches: %v", ErrCache, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: scanning cache name: %v", ErrCache, err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete drops a cache and every entry in it. It reports whether the cache
// existed.
func (s *Storage) Delete(ctx context.Context, name string) (bool, error) {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cached_responses WHERE cache_name = ?", name); err != nil {
		return false, fmt.Errorf("%w: deleting entries of %s: %v", ErrCache, name, err)
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM response_caches WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("%w: deleting cache %s: %v", ErrCache, name, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Cache is a single named cache.
type Cache struct {
	db   *db.DB
	name string
}

// Name returns the cache name.
func (c *Cache) Name() string { return c.name }

// Match looks up the entry for url. A miss returns (nil, false, nil).
func (c *Cache) Match(ctx context.Context, url string) (*Entry, bool, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT url, status, content_type, body, stored_at
		FROM cached_responses WHERE cache_name = ? AND url = ?`, c.name, url)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: matching %s: %v", ErrCache, url, err)
	}
	return e, true, nil
}

// Put stores the entry, replacing any earlier entry for the same URL.
func (c *Cache) Put(ctx context.Context, e Entry) error {
	if e.URL == "" {
		return fmt.Errorf("%w: entry url is required", ErrCache)
	}
	if e.StatusCode == 0 {
		e.StatusCode = 200
	}
	if e.Body == nil {
		e.Body = []byte{}
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cached_responses (cache_name, url, status, content_type, body, stored_at)
		VALUES (?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(cache_name, url) DO UPDATE SET
			status = excluded.status,
			content_type = excluded.content_type,
			body = excluded.body,
			stored_at = excluded.stored_at`,
		c.name, e.URL, e.StatusCode, e.ContentType, e.Body,
	)
	if err != nil {
		return fmt.Errorf("%w: storing %s: %v", ErrCache, e.URL, err)
	}
	return nil
}

// Delete removes the entry for url and reports whether one existed.
func (c *Cache) Delete(ctx context.Context, url string) (bool, error) {
	res, err := c.db.ExecContext(ctx,
		"DELETE FROM cached_responses WHERE cache_name = ? AND url = ?", c.name, url)
	if err != nil {
		return false, fmt.Errorf("%w: deleting %s: %v", ErrCache, url, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Entries returns every entry in the cache ordered by URL.
func (c *Cache) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT url, status, content_type, body, stored_at
		FROM cached_responses WHERE cache_name = ? ORDER BY url`, c.name)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", ErrCache, c.name, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning entry: %v", ErrCache, err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Keys returns the cached URLs.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	entries, err := c.Entries(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.URL
	}
	return keys, nil
}

// Purge deletes every entry whose URL matches the glob pattern ("**" crosses
// path separators) and returns the number removed. An empty pattern removes
// everything.
func (c *Cache) Purge(ctx context.Context, pattern string) (int, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return 0, fmt.Errorf("%w: invalid pattern %q", ErrCache, pattern)
	}

	keys, err := c.Keys(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range keys {
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, key); !ok {
				continue
			}
		}
		ok, err := c.Delete(ctx, key)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var (
		e  Entry
		ts string
	)
	if err := sc.Scan(&e.URL, &e.StatusCode, &e.ContentType, &e.Body, &ts); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		e.StoredAt = t
	} else if t, err := time.Parse(time.RFC3339, ts); err == nil {
		e.StoredAt = t
	}
	return &e, nil
}
