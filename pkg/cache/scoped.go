package cache

// ScopedKeyer wraps a Keyer with a prefix so separate deployments sharing one
// backend (e.g. the HTTP server and a book build worker on the same Redis)
// keep distinct namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PuzzleKey generates a prefixed key for puzzle caching.
func (k *ScopedKeyer) PuzzleKey(wordsHash string, opts PuzzleKeyOpts) string {
	return k.prefix + k.inner.PuzzleKey(wordsHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(puzzleHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(puzzleHash, opts)
}
