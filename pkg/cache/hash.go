package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a "<prefix>:<hash>" cache key from the stage's inputs.
// DefaultKeyer calls it with "puzzle" plus the word-list hash and
// PuzzleKeyOpts, or "artifact" plus the puzzle hash and ArtifactKeyOpts, so
// any option that changes the output changes the key.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes the SHA-256 hex digest of data. Used for the normalized
// word list (generation stage key) and the serialized puzzle (artifact
// stage key and the pipeline's PuzzleHash).
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
