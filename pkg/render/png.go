package render

import (
	"bytes"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/wordgrid/wordgrid/pkg/errors"
	"github.com/wordgrid/wordgrid/pkg/puzzle"
)

// RenderPNG rasterizes the puzzle page natively. The scale option controls
// oversampling (default 2x) so print exports stay crisp.
func RenderPNG(p *puzzle.Puzzle, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	pg := r.layout(p)

	scale := r.scale
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(pg.width*scale), int(pg.height*scale))
	dc.Scale(scale, scale)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if p.Title != "" {
		if err := setFace(dc, 24); err != nil {
			return nil, err
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(p.Title, pg.width/2, pg.margin+10, 0.5, 0.5)
	}

	if r.showSolution {
		dc.SetLineCapRound()
		dc.SetLineWidth(pg.cell * 0.8)
		dc.SetRGBA(225.0/255, 173.0/255, 1.0/255, 0.45)
		for _, pl := range p.Placements {
			x1, y1 := pg.cellCenter(pl.Row, pl.Col)
			r2, c2 := pl.Cell(len(pl.Word) - 1)
			x2, y2 := pg.cellCenter(r2, c2)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
	}

	// Outer border.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawRectangle(pg.margin, pg.gridTop, pg.gridSize, pg.gridSize)
	dc.Stroke()

	// Letters.
	if err := setFace(dc, pg.cell*0.55); err != nil {
		return nil, err
	}
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			x, y := pg.cellCenter(row, col)
			dc.DrawStringAnchored(string(rune(p.Grid[row][col])), x, y, 0.5, 0.35)
		}
	}

	if r.showWords {
		if err := setFace(dc, 13); err != nil {
			return nil, err
		}
		entries := r.wordListEntries(p)
		colWidth := pg.width / wordColumns
		for i, entry := range entries {
			col := i / pg.wordRows
			row := i % pg.wordRows
			x := colWidth*float64(col) + colWidth/2
			y := pg.wordTop + float64(row+1)*pg.lineHeight
			dc.DrawStringAnchored(entry, x, y, 0.5, 0.35)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// setFace installs the shared system font on the drawing context.
func setFace(dc *gg.Context, points float64) error {
	f, opts, err := fontFace(points)
	if err != nil {
		return err
	}
	dc.SetFontFace(truetype.NewFace(f, opts))
	return nil
}
