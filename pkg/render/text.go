package render

import (
	"fmt"
	"strings"

	"github.com/wordgrid/wordgrid/pkg/puzzle"
)

// RenderText renders the puzzle as plain text: title, grid, word list, and
// optionally the solution key with start coordinates and direction arrows.
func RenderText(p *puzzle.Puzzle, opts ...Option) []byte {
	r := newRenderer(opts...)
	var b strings.Builder

	if p.Title != "" {
		fmt.Fprintf(&b, "%s - %dx%d\n\n", strings.ToUpper(p.Title), p.Size, p.Size)
	}
	b.WriteString(p.Grid.String())

	if r.showWords {
		b.WriteString("\nWords:\n")
		for _, w := range p.Words() {
			fmt.Fprintf(&b, "  %s\n", w)
		}
	}
	if r.showUnplaced && len(p.Unplaced) > 0 {
		b.WriteString("\nNot placed:\n")
		for _, w := range p.Unplaced {
			fmt.Fprintf(&b, "  %s\n", w)
		}
	}
	if r.showSolution {
		b.WriteString("\nSolution:\n")
		for _, pl := range p.Placements {
			fmt.Fprintf(&b, "  %-15s (%d,%d) %c\n", pl.Word, pl.Row, pl.Col, pl.Dir.Arrow())
		}
	}
	return []byte(b.String())
}
