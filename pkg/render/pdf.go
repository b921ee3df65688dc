package render

import "github.com/wordgrid/wordgrid/pkg/puzzle"

// RenderPDF renders the puzzle page as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(p *puzzle.Puzzle, opts ...Option) ([]byte, error) {
	svg := RenderSVG(p, opts...)
	return ToPDF(svg)
}
