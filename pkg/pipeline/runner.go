package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordgrid/wordgrid/pkg/cache"
	"github.com/wordgrid/wordgrid/pkg/errors"
	"github.com/wordgrid/wordgrid/pkg/puzzle"
	"github.com/wordgrid/wordgrid/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	genStart := time.Now()
	p, genHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(errors.CodeOrInternal(err), err, "generate")
	}
	result.Puzzle = p
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.WordCount = len(p.Placements) + len(p.Unplaced)
	result.Stats.PlacedCount = len(p.Placements)
	result.Stats.UnplacedCount = len(p.Unplaced)
	result.CacheInfo.GenerateHit = genHit

	// Compute puzzle hash for cache keys and API responses
	if data, err := puzzle.MarshalPuzzle(p); err == nil {
		result.PuzzleHash = cache.Hash(data)
	}

	r.Logger.Info("generated puzzle",
		"size", p.Size,
		"placed", len(p.Placements),
		"unplaced", len(p.Unplaced),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		return nil, errors.Wrap(errors.CodeOrInternal(err), err, "render")
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo builds a puzzle with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*puzzle.Puzzle, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// The key hashes the normalized word list so "Cat, dog" and "DOG CAT"
	// with the same options map to the same entry only when the words match
	// in content and order.
	words, err := puzzle.NormalizeWords(opts.Words)
	if err != nil {
		return nil, false, err
	}
	wordsHash := cache.Hash([]byte(strings.Join(words, "\n")))
	cacheKey := r.Keyer.PuzzleKey(wordsHash, opts.PuzzleKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			p, err := puzzle.UnmarshalPuzzle(data)
			if err == nil {
				return p, true, nil // Cache hit
			}
		}
	}

	// Generate
	p, err := puzzle.Generate(opts.GenerateOptions())
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := puzzle.MarshalPuzzle(p); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPuzzle)
	}

	return p, false, nil // Cache miss
}

// Generate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*puzzle.Puzzle, error) {
	p, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return p, err
}

// RenderWithCacheInfo produces artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *puzzle.Puzzle, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the serialized puzzle
	data, err := puzzle.MarshalPuzzle(p)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize puzzle for cache key")
	}
	puzzleHash := cache.Hash(data)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(puzzleHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	renderOpts := opts.RenderOptions()
	for _, format := range opts.Formats {
		out, err := render.Render(p, format, renderOpts...)
		if err != nil {
			return nil, false, err
		}
		rendered[format] = out
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(puzzleHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p *puzzle.Puzzle, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
