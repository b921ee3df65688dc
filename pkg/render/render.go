// Package render turns finished puzzles into display artifacts.
//
// Each output format has its own sink function (RenderText, RenderSVG,
// RenderPNG, RenderPDF) configured through functional options. All formats
// share the same page model: title, letter grid, word list, and an optional
// solution overlay that highlights each placement's path. PDF output is
// produced from the SVG via rsvg-convert, matching how print-ready pages are
// generated elsewhere in the toolchain; PNG is rasterized natively.
//
// Renderers read the puzzle and never mutate it.
package render

import (
	"fmt"

	"github.com/wordgrid/wordgrid/pkg/errors"
	"github.com/wordgrid/wordgrid/pkg/puzzle"
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Default page geometry.
const (
	DefaultCellSize = 32.0 // grid cell edge in pixels
	DefaultMargin   = 40.0
	defaultTitleGap = 56.0 // vertical space reserved for the title
)

// HighlightColor is the solution overlay color.
const HighlightColor = "#E1AD01"

// Option configures a render sink.
type Option func(*renderer)

type renderer struct {
	cellSize     float64
	margin       float64
	showSolution bool
	showWords    bool
	showUnplaced bool
	scale        float64 // PNG oversampling factor
}

func newRenderer(opts ...Option) renderer {
	r := renderer{
		cellSize:  DefaultCellSize,
		margin:    DefaultMargin,
		showWords: true,
		scale:     2.0,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithSolution overlays the placement paths on the grid.
func WithSolution() Option { return func(r *renderer) { r.showSolution = true } }

// WithCellSize sets the grid cell edge in pixels (default 32).
func WithCellSize(s float64) Option { return func(r *renderer) { r.cellSize = s } }

// WithoutWordList omits the word list under the grid.
func WithoutWordList() Option { return func(r *renderer) { r.showWords = false } }

// WithUnplaced lists words that could not be placed. Off by default: a
// puzzle page must not reveal which words are missing from the grid.
func WithUnplaced() Option { return func(r *renderer) { r.showUnplaced = true } }

// WithScale sets the PNG oversampling factor (default 2.0 for 2x resolution).
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// Render dispatches to the sink for the requested format.
func Render(p *puzzle.Puzzle, format string, opts ...Option) ([]byte, error) {
	switch format {
	case FormatText:
		return RenderText(p, opts...), nil
	case FormatSVG:
		return RenderSVG(p, opts...), nil
	case FormatPNG:
		return RenderPNG(p, opts...)
	case FormatPDF:
		return RenderPDF(p, opts...)
	case FormatJSON:
		return puzzle.MarshalPuzzle(p)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
}

// page computes shared geometry for the SVG and PNG sinks.
type page struct {
	cell       float64
	margin     float64
	gridSize   float64 // grid edge length
	gridTop    float64
	width      float64
	height     float64
	wordRows   int
	wordTop    float64
	lineHeight float64
}

const wordColumns = 3

func (r renderer) layout(p *puzzle.Puzzle) page {
	pg := page{
		cell:       r.cellSize,
		margin:     r.margin,
		lineHeight: 24,
	}
	pg.gridSize = float64(p.Size) * pg.cell
	pg.gridTop = pg.margin + defaultTitleGap
	pg.width = pg.gridSize + 2*pg.margin
	pg.height = pg.gridTop + pg.gridSize + pg.margin

	if r.showWords {
		words := len(p.Placements)
		if r.showUnplaced {
			words += len(p.Unplaced)
		}
		pg.wordRows = (words + wordColumns - 1) / wordColumns
		pg.wordTop = pg.gridTop + pg.gridSize + pg.margin/2
		pg.height = pg.wordTop + float64(pg.wordRows)*pg.lineHeight + pg.margin
	}
	return pg
}

// cellCenter returns the pixel center of a grid cell.
func (pg page) cellCenter(row, col int) (x, y float64) {
	x = pg.margin + (float64(col)+0.5)*pg.cell
	y = pg.gridTop + (float64(row)+0.5)*pg.cell
	return x, y
}

// wordListEntries returns the strings shown under the grid, column-major like
// a printed word list. Unplaced words are marked when requested.
func (r renderer) wordListEntries(p *puzzle.Puzzle) []string {
	entries := make([]string, 0, len(p.Placements)+len(p.Unplaced))
	for _, pl := range p.Placements {
		entries = append(entries, pl.Word)
	}
	if r.showUnplaced {
		for _, w := range p.Unplaced {
			entries = append(entries, fmt.Sprintf("%s (not placed)", w))
		}
	}
	return entries
}
