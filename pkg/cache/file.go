package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache stores puzzles and rendered artifacts on disk, one entry per
// file. The CLI keeps it under the XDG cache dir so repeated generate and
// render runs with the same options skip the work entirely.
//
// Entries are grouped by key namespace: "puzzle:<hash>" keys land under
// puzzle/, "artifact:<hash>" keys under artifact/, scoped server keys under
// their prefix. Within a namespace the first two hash characters shard the
// files so a large book build doesn't pile thousands of entries into one
// directory.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// cacheEntry wraps the stored bytes (serialized puzzle JSON or rendered
// artifact) with their expiry, set from TTLPuzzle or TTLArtifact.
type cacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves an entry. Expired or unreadable entries are removed and
// reported as a miss so the pipeline regenerates them.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores an entry. A zero ttl means the entry never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := cacheEntry{
		Data: data,
	}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, entryData, 0644)
}

// Delete removes an entry. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	path := c.path(key)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a cache key to its file. The key's namespace prefix (the part
// before the first colon: "puzzle" or "artifact" for keys from
// DefaultKeyer) becomes a directory, and the remainder is hashed and
// sharded by its first two characters.
func (c *FileCache) path(key string) string {
	namespace := "entry"
	rest := key
	if i := strings.Index(key, ":"); i > 0 {
		namespace = key[:i]
		rest = key[i+1:]
	}
	hash := Hash([]byte(rest))
	return filepath.Join(c.dir, namespace, hash[:2], hash[2:]+".json")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
