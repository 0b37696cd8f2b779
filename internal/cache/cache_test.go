package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parse-cache.db")
	c, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_LookupMissesBeforeRecord(t *testing.T) {
	c := openTestCache(t)
	hash := HashSource("var x = 1;", "script")

	hit, err := c.Lookup(hash)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_RecordThenLookupHits(t *testing.T) {
	c := openTestCache(t)
	hash := HashSource("var x = 1;", "script")

	require.NoError(t, c.Record(hash, "a.js", "script", 11, 3, "run-1"))

	hit, err := c.Lookup(hash)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCache_HashDependsOnSourceTypeNotJustBytes(t *testing.T) {
	// script-mode and module-mode parses of identical bytes aren't
	// interchangeable (module source is always strict), so the same text
	// must hash differently under each source type.
	scriptHash := HashSource("a", "script")
	moduleHash := HashSource("a", "module")
	assert.NotEqual(t, scriptHash, moduleHash)
}

func TestCache_RecordIsIdempotentOnConflict(t *testing.T) {
	c := openTestCache(t)
	hash := HashSource("var x = 1;", "script")

	require.NoError(t, c.Record(hash, "a.js", "script", 11, 3, "run-1"))
	require.NoError(t, c.Record(hash, "a.js", "script", 11, 3, "run-2"))

	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Entries, "re-recording the same content hash must update in place, not duplicate")
}

func TestCache_StatsCountsDistinctEntries(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Record(HashSource("a", "script"), "a.js", "script", 1, 1, "run-1"))
	require.NoError(t, c.Record(HashSource("b", "script"), "b.js", "script", 1, 1, "run-1"))

	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Entries)
}

func TestCache_CloseOnNilIsSafe(t *testing.T) {
	var c *Cache
	assert.NoError(t, c.Close())
}
