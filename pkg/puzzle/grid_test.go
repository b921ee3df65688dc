package puzzle

import (
	"testing"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(10)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	if g.Size() != 10 {
		t.Errorf("Size = %d, want 10", g.Size())
	}
	for r := range g {
		if len(g[r]) != 10 {
			t.Fatalf("row %d has %d cells", r, len(g[r]))
		}
		for c := range g[r] {
			if g[r][c] != Empty {
				t.Fatalf("cell (%d,%d) not empty", r, c)
			}
		}
	}
}

func TestNewGridRejectsOutOfRange(t *testing.T) {
	for _, size := range []int{-1, 0, 7, 31, 100} {
		_, err := NewGrid(size)
		if !errors.Is(err, errors.ErrCodeInvalidSize) {
			t.Errorf("NewGrid(%d) error = %v, want INVALID_SIZE", size, err)
		}
	}
}

func TestGridClone(t *testing.T) {
	g, _ := NewGrid(8)
	clone := g.Clone()
	clone[0][0] = 'X'
	if g[0][0] != Empty {
		t.Error("mutating a clone must not touch the original")
	}
}

func TestGridFull(t *testing.T) {
	g, _ := NewGrid(8)
	if g.Full() {
		t.Error("fresh grid should not be full")
	}
	for r := range g {
		for c := range g[r] {
			g[r][c] = 'A'
		}
	}
	if !g.Full() {
		t.Error("completely written grid should be full")
	}
}

func TestGridRowsRoundTrip(t *testing.T) {
	g, _ := NewGrid(8)
	g[3][4] = 'Q'
	rebuilt, err := gridFromRows(g.Rows())
	if err != nil {
		t.Fatalf("gridFromRows error: %v", err)
	}
	if rebuilt[3][4] != 'Q' || rebuilt.Size() != 8 {
		t.Error("rows round-trip lost data")
	}
}

func TestGridFromRowsRejectsRagged(t *testing.T) {
	_, err := gridFromRows([]string{"AB", "A"})
	if !errors.Is(err, errors.ErrCodeInvalidPuzzle) {
		t.Errorf("ragged rows error = %v, want INVALID_PUZZLE", err)
	}
}
