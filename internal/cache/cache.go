// Package cache is a CLI-level memoization layer: a persistent,
// content-hash-keyed record of files ecmaparse has already proven parse
// clean, so re-running the CLI over an unchanged tree can skip re-invoking
// the parser on files it already knows are valid. This is a driver-level
// optimization, not a change to the core parser's contract -- internal/parser
// still parses each file it is asked to parse, start to finish, in one
// pass.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"

	_ "modernc.org/sqlite"
)

// Cache is a handle on the on-disk parse-result cache.
type Cache struct {
	db *sql.DB
}

// Open creates (if needed) and opens the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS parsed_files (
	content_hash TEXT PRIMARY KEY,
	path         TEXT NOT NULL,
	source_type  TEXT NOT NULL,
	byte_size    INTEGER NOT NULL,
	node_count   INTEGER NOT NULL,
	run_id       TEXT NOT NULL,
	parsed_at    TEXT NOT NULL
);
`

// HashSource returns the content-hash key this cache indexes by: a file's
// clean-parse entry is keyed on its exact bytes plus the source type it was
// parsed under, since a script-mode and a module-mode parse of the same
// text are not interchangeable (strict mode, and therefore legal syntax,
// differs between the two).
func HashSource(source string, sourceType string) string {
	sum := sha256.Sum256([]byte(sourceType + "\x00" + source))
	return hex.EncodeToString(sum[:])
}

// Lookup reports whether contentHash already has a recorded clean parse.
func (c *Cache) Lookup(contentHash string) (bool, error) {
	if c == nil || c.db == nil {
		return false, ErrClosed
	}
	var n int
	err := c.db.QueryRow(`SELECT COUNT(1) FROM parsed_files WHERE content_hash = ?`, contentHash).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("cache: lookup: %w", err)
	}
	return n > 0, nil
}

// Record stores a clean-parse entry, timestamped with go-strftime, and
// overwrites any prior entry for the same content hash.
func (c *Cache) Record(contentHash, path, sourceType string, byteSize, nodeCount int, runID string) error {
	if c == nil || c.db == nil {
		return ErrClosed
	}
	parsedAt := strftime.Format("%Y-%m-%dT%H:%M:%SZ", time.Now().UTC())
	_, err := c.db.Exec(
		`INSERT INTO parsed_files (content_hash, path, source_type, byte_size, node_count, run_id, parsed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(content_hash) DO UPDATE SET
			path = excluded.path, source_type = excluded.source_type,
			byte_size = excluded.byte_size, node_count = excluded.node_count,
			run_id = excluded.run_id, parsed_at = excluded.parsed_at`,
		contentHash, path, sourceType, byteSize, nodeCount, runID, parsedAt,
	)
	if err != nil {
		return fmt.Errorf("cache: record: %w", err)
	}
	return nil
}

// Stats summarizes the cache's content for the CLI's end-of-run report.
type Stats struct {
	Entries int
}

func (c *Cache) Stats() (Stats, error) {
	if c == nil || c.db == nil {
		return Stats{}, ErrClosed
	}
	var n int
	if err := c.db.QueryRow(`SELECT COUNT(1) FROM parsed_files`).Scan(&n); err != nil {
		return Stats{}, fmt.Errorf("cache: stats: %w", err)
	}
	return Stats{Entries: n}, nil
}

// ErrClosed is returned by operations on a nil or already-closed Cache.
var ErrClosed = errors.New("cache: closed")
