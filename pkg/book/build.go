package book

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/wordgrid/wordgrid/pkg/errors"
	"github.com/wordgrid/wordgrid/pkg/pipeline"
	"github.com/wordgrid/wordgrid/pkg/puzzle"
	"github.com/wordgrid/wordgrid/pkg/render"
)

// BuildOptions configures a book build.
type BuildOptions struct {
	// OutputDir receives all generated files. Created if missing.
	OutputDir string

	// Formats are the page formats to render (default: svg).
	Formats []string

	// Mode selects the direction set for every puzzle (default: full).
	Mode string

	// Seed is the base seed; puzzle i is generated with Seed+i so a book
	// rebuild reproduces every grid.
	Seed uint64

	// MaxAttempts bounds the random placement search per word.
	MaxAttempts int

	// Workers bounds concurrent puzzle generation (default: NumCPU).
	Workers int

	// Cover renders a cover image from the first puzzle.
	Cover bool

	// Refresh bypasses the puzzle cache.
	Refresh bool
}

func (o *BuildOptions) setDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if o.Mode == "" {
		o.Mode = string(puzzle.ModeFull)
	}
	if o.Seed == 0 {
		o.Seed = puzzle.DefaultSeed
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
}

// Manifest describes a completed book build.
type Manifest struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Version     float64       `json:"version,omitempty"`
	Color       string        `json:"color,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
	Formats     []string      `json:"formats"`
	Puzzles     []PuzzleEntry `json:"puzzles"`
}

// PuzzleEntry records one generated puzzle in the manifest.
type PuzzleEntry struct {
	ID       string            `json:"id"`
	Index    int               `json:"index"`
	Title    string            `json:"title"`
	Size     int               `json:"size"`
	Seed     uint64            `json:"seed"`
	Placed   int               `json:"placed"`
	Unplaced []string          `json:"unplaced,omitempty"`
	Pages    map[string]string `json:"pages"`
	Solution map[string]string `json:"solution"`
}

// Builder assembles books using a shared pipeline runner.
type Builder struct {
	Runner *pipeline.Runner
	Logger *log.Logger
}

// NewBuilder creates a builder. A nil runner gets an uncached default.
func NewBuilder(runner *pipeline.Runner, logger *log.Logger) *Builder {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{Runner: runner, Logger: logger}
}

// Build validates the book, generates every puzzle, and writes puzzle pages,
// solution pages, front matter, and a manifest under opts.OutputDir.
//
// Puzzles are generated concurrently; each puzzle is independent once its
// seed is fixed. A failed puzzle aborts the build.
func (bd *Builder) Build(ctx context.Context, b *Book, opts BuildOptions) (*Manifest, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	opts.setDefaults()
	if err := render.ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	puzzleDir := filepath.Join(opts.OutputDir, "puzzles")
	solutionDir := filepath.Join(opts.OutputDir, "solutions")
	for _, dir := range []string{opts.OutputDir, puzzleDir, solutionDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output dir %s", dir)
		}
	}

	bd.Logger.Info("building book",
		"title", b.Title,
		"puzzles", len(b.Puzzles),
		"formats", opts.Formats,
		"workers", opts.Workers)

	entries := make([]PuzzleEntry, len(b.Puzzles))
	puzzles := make([]*puzzle.Puzzle, len(b.Puzzles))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, opts.Workers)

	for i, def := range b.Puzzles {
		wg.Add(1)
		go func(i int, def PuzzleDef) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			mu.Lock()
			failed := firstErr != nil
			mu.Unlock()
			if failed || ctx.Err() != nil {
				return
			}

			entry, p, err := bd.buildPuzzle(ctx, def, i, opts, puzzleDir, solutionDir)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = errors.Wrap(errors.CodeOrInternal(err), err, "puzzle %q", def.Title)
				}
				return
			}
			entries[i] = entry
			puzzles[i] = p
		}(i, def)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build canceled")
	}

	if err := bd.writeFrontMatter(b, opts); err != nil {
		return nil, err
	}
	if opts.Cover && len(puzzles) > 0 {
		if err := bd.writeCover(b, puzzles[0], opts); err != nil {
			return nil, err
		}
	}

	manifest := &Manifest{
		ID:          uuid.NewString(),
		Title:       b.Title,
		Version:     b.Version,
		Color:       b.Color,
		GeneratedAt: time.Now().UTC(),
		Formats:     opts.Formats,
		Puzzles:     entries,
	}
	if err := writeManifest(manifest, opts.OutputDir); err != nil {
		return nil, err
	}

	bd.Logger.Info("book complete", "output", opts.OutputDir)
	return manifest, nil
}

// buildPuzzle generates one puzzle and writes its page and solution files.
func (bd *Builder) buildPuzzle(ctx context.Context, def PuzzleDef, index int, opts BuildOptions, puzzleDir, solutionDir string) (PuzzleEntry, *puzzle.Puzzle, error) {
	pipeOpts := pipeline.Options{
		Title:       def.Title,
		Words:       def.Words,
		Size:        def.Size,
		Mode:        opts.Mode,
		Seed:        opts.Seed + uint64(index),
		MaxAttempts: opts.MaxAttempts,
		Refresh:     opts.Refresh,
		Formats:     opts.Formats,
		Logger:      bd.Logger,
	}

	result, err := bd.Runner.Execute(ctx, pipeOpts)
	if err != nil {
		return PuzzleEntry{}, nil, err
	}
	p := result.Puzzle

	if len(p.Unplaced) > 0 {
		bd.Logger.Warn("words not placed",
			"puzzle", def.Title,
			"unplaced", p.Unplaced)
	}

	prefix := fmt.Sprintf("%02d_%s", index+1, slugify(def.Title))
	entry := PuzzleEntry{
		ID:       uuid.NewString(),
		Index:    index,
		Title:    def.Title,
		Size:     p.Size,
		Seed:     pipeOpts.Seed,
		Placed:   len(p.Placements),
		Unplaced: p.Unplaced,
		Pages:    make(map[string]string, len(opts.Formats)),
		Solution: make(map[string]string, len(opts.Formats)),
	}

	for format, data := range result.Artifacts {
		name := prefix + "." + format
		if err := os.WriteFile(filepath.Join(puzzleDir, name), data, 0o644); err != nil {
			return PuzzleEntry{}, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", name)
		}
		entry.Pages[format] = filepath.Join("puzzles", name)
	}

	// Solution pages reuse the same formats with the highlight overlay.
	pipeOpts.ShowSolution = true
	solutions, err := bd.Runner.Render(ctx, p, pipeOpts)
	if err != nil {
		return PuzzleEntry{}, nil, err
	}
	for format, data := range solutions {
		name := prefix + "." + format
		if err := os.WriteFile(filepath.Join(solutionDir, name), data, 0o644); err != nil {
			return PuzzleEntry{}, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "write solution %s", name)
		}
		entry.Solution[format] = filepath.Join("solutions", name)
	}

	return entry, p, nil
}

// writeFrontMatter writes the intro pages and the solutions divider as SVG,
// plus PDF copies when the book is built for print.
func (bd *Builder) writeFrontMatter(b *Book, opts BuildOptions) error {
	wantPDF := false
	for _, f := range opts.Formats {
		if f == render.FormatPDF {
			wantPDF = true
		}
	}

	pages := IntroPages(b)
	pages = append(pages, SolutionIntroPage())
	names := []string{"intro_1", "intro_2", "intro_3", "intro_4", "solutions_intro"}

	for i, svg := range pages {
		path := filepath.Join(opts.OutputDir, names[i]+".svg")
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		if wantPDF {
			pdf, err := render.ToPDF(svg)
			if err != nil {
				return err
			}
			path = filepath.Join(opts.OutputDir, names[i]+".pdf")
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
			}
		}
	}
	return nil
}

// writeCover renders the cover image from the first puzzle's grid.
func (bd *Builder) writeCover(b *Book, p *puzzle.Puzzle, opts BuildOptions) error {
	cover, err := render.RenderCover(p, render.CoverOptions{})
	if err != nil {
		return err
	}
	path := filepath.Join(opts.OutputDir, "cover.png")
	if err := os.WriteFile(path, cover, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write cover")
	}
	bd.Logger.Info("rendered cover", "path", path)
	return nil
}

func writeManifest(m *Manifest, dir string) error {
	sort.Slice(m.Puzzles, func(i, j int) bool { return m.Puzzles[i].Index < m.Puzzles[j].Index })
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal manifest")
	}
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write manifest")
	}
	return nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	var out strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			out.WriteRune(r)
		}
	}
	if out.Len() == 0 {
		return "puzzle"
	}
	return out.String()
}
