// Package pipeline provides the core generation pipeline for Wordgrid.
//
// This package implements the complete generate → render pipeline that can be
// used by CLI, API, and book-builder components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Build a puzzle grid from a word list (place words, fill noise)
//  2. Render: Produce output artifacts in various formats (text, SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Title:   "Animals",
//	    Words:   []string{"cat", "dog", "lion"},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Generate only
//	p, err := runner.Generate(ctx, opts)
//
//	// Render an existing puzzle
//	artifacts, err := runner.Render(ctx, p, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordgrid/wordgrid/pkg/cache"
	"github.com/wordgrid/wordgrid/pkg/puzzle"
	"github.com/wordgrid/wordgrid/pkg/render"
)

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Title       string   `json:"title,omitempty"`
	Words       []string `json:"words"`
	Size        int      `json:"size,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Seed        uint64   `json:"seed,omitempty"`
	MaxAttempts int      `json:"max_attempts,omitempty"`
	KeepOrder   bool     `json:"keep_order,omitempty"`
	Alphabet    string   `json:"alphabet,omitempty"` // noise letter pool, uniform (default A-Z)
	Refresh     bool     `json:"refresh,omitempty"`

	// Render options
	Formats      []string `json:"formats,omitempty"`
	ShowSolution bool     `json:"show_solution,omitempty"`
	ShowUnplaced bool     `json:"show_unplaced,omitempty"`
	CellSize     float64  `json:"cell_size,omitempty"`
	Scale        float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Puzzle is the generated puzzle.
	Puzzle *puzzle.Puzzle

	// PuzzleHash is the content hash of the serialized puzzle.
	PuzzleHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount     int
	PlacedCount   int
	UnplacedCount int
	GenerateTime  time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the puzzle came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks required fields for puzzle generation.
func (o *Options) ValidateForGenerate() error {
	gen := o.GenerateOptions()
	if err := gen.ValidateAndSetDefaults(); err != nil {
		return err
	}
	o.Size = gen.Size
	o.Mode = string(gen.Mode)
	o.Seed = gen.Seed
	o.MaxAttempts = gen.MaxAttempts
	o.Alphabet = gen.Alphabet.Letters

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatText}
	}
	if o.CellSize == 0 {
		o.CellSize = render.DefaultCellSize
	}
	if o.Scale == 0 {
		o.Scale = 2.0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return render.ValidateFormats(o.Formats)
}

// GenerateOptions converts to the options consumed by puzzle.Generate.
func (o *Options) GenerateOptions() puzzle.Options {
	return puzzle.Options{
		Title:       o.Title,
		Words:       o.Words,
		Size:        o.Size,
		Mode:        puzzle.Mode(o.Mode),
		Seed:        o.Seed,
		MaxAttempts: o.MaxAttempts,
		KeepOrder:   o.KeepOrder,
		Alphabet:    puzzle.Alphabet{Letters: strings.ToUpper(o.Alphabet)},
	}
}

// RenderOptions converts to the functional options consumed by render sinks.
func (o *Options) RenderOptions() []render.Option {
	opts := []render.Option{
		render.WithCellSize(o.CellSize),
		render.WithScale(o.Scale),
	}
	if o.ShowSolution {
		opts = append(opts, render.WithSolution())
	}
	if o.ShowUnplaced {
		opts = append(opts, render.WithUnplaced())
	}
	return opts
}

// PuzzleKeyOpts returns cache key options for puzzle generation.
func (o *Options) PuzzleKeyOpts() cache.PuzzleKeyOpts {
	return cache.PuzzleKeyOpts{
		Size:        o.Size,
		Mode:        o.Mode,
		Seed:        o.Seed,
		MaxAttempts: o.MaxAttempts,
		KeepOrder:   o.KeepOrder,
		Alphabet:    o.Alphabet,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		ShowSolution: o.ShowSolution,
		ShowUnplaced: o.ShowUnplaced,
		CellSize:     o.CellSize,
		Scale:        o.Scale,
	}
}
