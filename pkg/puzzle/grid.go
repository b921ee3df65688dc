package puzzle

import (
	"strings"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// Supported grid size range. Below 8 most word lists cannot fit; above 30 the
// rendered page becomes unreadable at print cell sizes.
const (
	MinSize = 8
	MaxSize = 30
)

// Empty is the sentinel value for a cell no word has claimed yet.
const Empty byte = ' '

// Grid is the square letter matrix forming the puzzle. Every cell holds either
// Empty, a letter written by the placement engine, or a noise letter.
type Grid [][]byte

// NewGrid creates a size×size grid with all cells marked Empty.
func NewGrid(size int) (Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, errors.New(errors.ErrCodeInvalidSize,
			"grid size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]byte, size)
		for c := range g[r] {
			g[r][c] = Empty
		}
	}
	return g, nil
}

// Size returns the grid dimension.
func (g Grid) Size() int { return len(g) }

// Full reports whether no Empty cell remains.
func (g Grid) Full() bool {
	for _, row := range g {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]byte, len(row))
		copy(out[r], row)
	}
	return out
}

// Rows returns the grid as one string per row, e.g. for serialization.
func (g Grid) Rows() []string {
	rows := make([]string, len(g))
	for r, row := range g {
		rows[r] = string(row)
	}
	return rows
}

// String renders the grid with space-separated letters, one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// gridFromRows rebuilds a Grid from serialized rows, checking squareness.
func gridFromRows(rows []string) (Grid, error) {
	size := len(rows)
	g := make(Grid, size)
	for r, row := range rows {
		if len(row) != size {
			return nil, errors.New(errors.ErrCodeInvalidPuzzle,
				"row %d has %d cells, want %d", r, len(row), size)
		}
		g[r] = []byte(row)
	}
	return g, nil
}
