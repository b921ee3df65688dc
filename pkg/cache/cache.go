// Package cache provides pluggable caching for generated puzzles and
// rendered artifacts.
//
// Three backends are available:
//   - FileCache: XDG cache directory storage for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching
//
// Keys are produced by a Keyer so that CLI, server, and book builder agree on
// the cache layout. Generation keys hash the full word list together with the
// options that affect placement; artifact keys hash the finished puzzle plus
// the render options.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Cache TTLs. Puzzle data is deterministic given its options, so entries can
// live long; they exist to skip recomputation, not to stay fresh.
const (
	TTLPuzzle   = 30 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// PuzzleKeyOpts are the generation options that affect puzzle content.
type PuzzleKeyOpts struct {
	Size        int
	Mode        string
	Seed        uint64
	MaxAttempts int
	KeepOrder   bool
	Alphabet    string
}

// ArtifactKeyOpts are the render options that affect artifact bytes.
type ArtifactKeyOpts struct {
	Format       string
	ShowSolution bool
	ShowUnplaced bool
	CellSize     float64
	Scale        float64
}

// Keyer generates cache keys for the two cacheable stages.
type Keyer interface {
	// PuzzleKey generates a key for a generated puzzle. wordsHash is the
	// hash of the normalized word list.
	PuzzleKey(wordsHash string, opts PuzzleKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact. puzzleHash is the
	// hash of the serialized puzzle.
	ArtifactKey(puzzleHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generation scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PuzzleKey generates a key in the form "puzzle:<hash>".
func (k *DefaultKeyer) PuzzleKey(wordsHash string, opts PuzzleKeyOpts) string {
	return hashKey("puzzle", wordsHash, opts)
}

// ArtifactKey generates a key in the form "artifact:<hash>".
func (k *DefaultKeyer) ArtifactKey(puzzleHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", puzzleHash, opts)
}
