package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/wordgrid/wordgrid/pkg/puzzle"
)

const svgFontFamily = `'Helvetica Neue', Helvetica, Arial, sans-serif`

// RenderSVG renders the puzzle page as SVG. With WithSolution, each
// placement's path is drawn as a rounded highlight stroke behind the letters.
func RenderSVG(p *puzzle.Puzzle, opts ...Option) []byte {
	r := newRenderer(opts...)
	pg := r.layout(p)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		pg.width, pg.height, pg.width, pg.height)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")

	if p.Title != "" {
		fmt.Fprintf(&buf,
			`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="28" font-weight="bold">%s</text>`+"\n",
			pg.width/2, pg.margin+16, svgFontFamily, html.EscapeString(p.Title))
	}

	// Solution strokes go first so letters stay readable on top.
	if r.showSolution {
		renderHighlights(&buf, p, pg)
	}

	renderGrid(&buf, p, pg)

	if r.showWords {
		renderWordList(&buf, r.wordListEntries(p), pg)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderGrid draws the outer border and the letters.
func renderGrid(buf *bytes.Buffer, p *puzzle.Puzzle, pg page) {
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="black" stroke-width="2"/>`+"\n",
		pg.margin, pg.gridTop, pg.gridSize, pg.gridSize)

	fontSize := pg.cell * 0.6
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			x, y := pg.cellCenter(row, col)
			fmt.Fprintf(buf,
				`<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" font-weight="bold">%c</text>`+"\n",
				x, y, svgFontFamily, fontSize, p.Grid[row][col])
		}
	}
}

// renderHighlights draws one rounded stroke per placement along its path.
func renderHighlights(buf *bytes.Buffer, p *puzzle.Puzzle, pg page) {
	for _, pl := range p.Placements {
		x1, y1 := pg.cellCenter(pl.Row, pl.Col)
		r2, c2 := pl.Cell(len(pl.Word) - 1)
		x2, y2 := pg.cellCenter(r2, c2)
		fmt.Fprintf(buf,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="0.45" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
			x1, y1, x2, y2, HighlightColor, pg.cell*0.8)
	}
}

// renderWordList lays the words out column-major across three columns,
// the way printed puzzle pages list them.
func renderWordList(buf *bytes.Buffer, entries []string, pg page) {
	if len(entries) == 0 || pg.wordRows == 0 {
		return
	}
	colWidth := pg.width / wordColumns
	for i, entry := range entries {
		col := i / pg.wordRows
		row := i % pg.wordRows
		x := colWidth*float64(col) + colWidth/2
		y := pg.wordTop + float64(row+1)*pg.lineHeight
		fmt.Fprintf(buf,
			`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="15">%s</text>`+"\n",
			x, y, svgFontFamily, html.EscapeString(entry))
	}
}
