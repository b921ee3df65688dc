package render

import (
	"bytes"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/wordgrid/wordgrid/pkg/errors"
	"github.com/wordgrid/wordgrid/pkg/puzzle"
)

// HighlightStyle selects how cover highlights are drawn.
type HighlightStyle string

const (
	// HighlightRect outlines each highlighted word.
	HighlightRect HighlightStyle = "rect"

	// HighlightFill draws a filled stroke behind each highlighted word.
	HighlightFill HighlightStyle = "fill"
)

// CoverOptions configures cover image generation.
type CoverOptions struct {
	// Width and Height of the output image (default 1200x1200).
	Width, Height int

	// MaxHighlights limits how many placements get highlighted (default 4).
	MaxHighlights int

	// Style selects outline or filled highlights (default HighlightRect).
	Style HighlightStyle
}

func (o *CoverOptions) setDefaults() {
	if o.Width == 0 {
		o.Width = 1200
	}
	if o.Height == 0 {
		o.Height = 1200
	}
	if o.MaxHighlights == 0 {
		o.MaxHighlights = 4
	}
	if o.Style == "" {
		o.Style = HighlightRect
	}
}

// RenderCover renders the grid as a square cover image with the first few
// placed words highlighted, then fits it to the requested dimensions.
// Covers have no title or word list; the grid itself is the artwork.
func RenderCover(p *puzzle.Puzzle, opts CoverOptions) ([]byte, error) {
	opts.setDefaults()

	// Draw on a square canvas at the grid's natural resolution, then resize.
	base := min(opts.Width, opts.Height)
	dc := gg.NewContext(base, base)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	side := float64(base)
	margin := side * 0.1
	cell := (side - 2*margin) / float64(p.Size)

	center := func(row, col int) (float64, float64) {
		return margin + (float64(col)+0.5)*cell, margin + (float64(row)+0.5)*cell
	}

	// Highlights behind the letters.
	highlights := p.Placements
	if len(highlights) > opts.MaxHighlights {
		highlights = highlights[:opts.MaxHighlights]
	}
	dc.SetLineCapRound()
	for _, pl := range highlights {
		x1, y1 := center(pl.Row, pl.Col)
		r2, c2 := pl.Cell(len(pl.Word) - 1)
		x2, y2 := center(r2, c2)
		switch opts.Style {
		case HighlightFill:
			dc.SetRGBA(225.0/255, 173.0/255, 1.0/255, 0.55)
			dc.SetLineWidth(cell * 0.85)
		default:
			dc.SetRGBA(225.0/255, 173.0/255, 1.0/255, 1)
			dc.SetLineWidth(cell * 0.12)
			// Outline: two parallel caps around the word row read as a
			// rounded rectangle at cover resolution.
		}
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	// Border and letters.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(side * 0.004)
	dc.DrawRectangle(margin, margin, cell*float64(p.Size), cell*float64(p.Size))
	dc.Stroke()

	if err := setFace(dc, cell*0.55); err != nil {
		return nil, err
	}
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			x, y := center(row, col)
			dc.DrawStringAnchored(string(rune(p.Grid[row][col])), x, y, 0.5, 0.35)
		}
	}

	img := imaging.Fit(dc.Image(), opts.Width, opts.Height, imaging.Lanczos)
	// Pad to exact dimensions on a white canvas when the aspect ratio differs.
	canvas := imaging.New(opts.Width, opts.Height, color.White)
	canvas = imaging.PasteCenter(canvas, img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode cover")
	}
	return buf.Bytes(), nil
}
