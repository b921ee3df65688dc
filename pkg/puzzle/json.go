package puzzle

import (
	"encoding/json"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// puzzleJSON is the wire form of a Puzzle. The grid is stored as one string
// per row, which keeps saved puzzles readable and diffs small.
type puzzleJSON struct {
	Title      string      `json:"title,omitempty"`
	Size       int         `json:"size"`
	Mode       Mode        `json:"mode"`
	Seed       uint64      `json:"seed,omitempty"`
	Grid       []string    `json:"grid"`
	Placements []Placement `json:"placements"`
	Unplaced   []string    `json:"unplaced,omitempty"`
}

// MarshalPuzzle encodes a puzzle as indented JSON. The format round-trips
// losslessly through UnmarshalPuzzle, so saved puzzle data can be re-rendered
// later without recomputation.
func MarshalPuzzle(p *Puzzle) ([]byte, error) {
	out := puzzleJSON{
		Title:      p.Title,
		Size:       p.Size,
		Mode:       p.Mode,
		Seed:       p.Seed,
		Grid:       p.Grid.Rows(),
		Placements: p.Placements,
		Unplaced:   p.Unplaced,
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalPuzzle decodes puzzle data produced by MarshalPuzzle.
// It validates grid squareness and placement bounds so a corrupted file is
// rejected before any renderer touches it.
func UnmarshalPuzzle(data []byte) (*Puzzle, error) {
	var in puzzleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPuzzle, err, "decode puzzle")
	}
	if in.Size != len(in.Grid) {
		return nil, errors.New(errors.ErrCodeInvalidPuzzle,
			"size %d does not match %d grid rows", in.Size, len(in.Grid))
	}
	g, err := gridFromRows(in.Grid)
	if err != nil {
		return nil, err
	}
	for _, pl := range in.Placements {
		if err := checkPlacement(g, pl); err != nil {
			return nil, err
		}
	}
	return &Puzzle{
		Title:      in.Title,
		Size:       in.Size,
		Mode:       in.Mode,
		Seed:       in.Seed,
		Grid:       g,
		Placements: in.Placements,
		Unplaced:   in.Unplaced,
	}, nil
}

// checkPlacement verifies a placement stays in bounds and matches the grid's
// letters along its path.
func checkPlacement(g Grid, pl Placement) error {
	if !pl.Dir.Valid() {
		return errors.New(errors.ErrCodeInvalidPuzzle,
			"placement %q has invalid direction (%d,%d)", pl.Word, pl.Dir.DR, pl.Dir.DC)
	}
	size := g.Size()
	for i := 0; i < len(pl.Word); i++ {
		r, c := pl.Cell(i)
		if r < 0 || r >= size || c < 0 || c >= size {
			return errors.New(errors.ErrCodeInvalidPuzzle,
				"placement %q leaves the grid at (%d,%d)", pl.Word, r, c)
		}
		if g[r][c] != pl.Word[i] {
			return errors.New(errors.ErrCodeInvalidPuzzle,
				"placement %q does not match grid at (%d,%d)", pl.Word, r, c)
		}
	}
	return nil
}
