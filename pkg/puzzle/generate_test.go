package puzzle

import (
	"reflect"
	"strings"
	"testing"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

func TestGenerateBasicScenario(t *testing.T) {
	// size=10, CAT+DOG, basic mode, seed 42: both words place easily.
	p, err := Generate(Options{
		Words: []string{"CAT", "DOG"},
		Size:  10,
		Mode:  ModeBasic,
		Seed:  42,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(p.Placements) != 2 {
		t.Errorf("placements = %d, want 2", len(p.Placements))
	}
	if len(p.Unplaced) != 0 {
		t.Errorf("unplaced = %v, want none", p.Unplaced)
	}
	if !p.Grid.Full() {
		t.Error("grid should be fully filled")
	}
	for _, row := range p.Grid.Rows() {
		for _, r := range row {
			if r < 'A' || r > 'Z' {
				t.Fatalf("grid contains non-uppercase cell %q", r)
			}
		}
	}
	for _, pl := range p.Placements {
		if !pl.Dir.IsBasic() {
			t.Errorf("basic mode produced direction %s", pl.Dir)
		}
	}
}

func TestGenerateWordLongerThanGrid(t *testing.T) {
	p, err := Generate(Options{Words: []string{"ELEPHANT"}, Size: 8, Seed: 1})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	// 8 letters fit an 8x8 grid; shrink below via a word that cannot fit.
	p2, err := Generate(Options{Words: []string{"ELEPHANTS"}, Size: 8, Seed: 1})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(p2.Placements) != 0 {
		t.Errorf("9-letter word placed on 8x8 grid: %v", p2.Placements)
	}
	if !reflect.DeepEqual(p2.Unplaced, []string{"ELEPHANTS"}) {
		t.Errorf("unplaced = %v, want [ELEPHANTS]", p2.Unplaced)
	}
	if len(p.Unplaced) != 0 && len(p.Placements) != 1 {
		t.Errorf("ELEPHANT must be either placed or unplaced, got neither")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{
		Words: []string{"alpha", "bravo", "charlie", "delta"},
		Size:  12,
		Mode:  ModeFull,
		Seed:  7,
	}
	p1, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	p2, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !reflect.DeepEqual(p1.Grid, p2.Grid) {
		t.Error("same seed should produce identical grids")
	}
	if !reflect.DeepEqual(p1.Placements, p2.Placements) {
		t.Error("same seed should produce identical placements")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	base := Options{Words: []string{"alpha", "bravo", "charlie"}, Size: 12, Mode: ModeFull}
	a := base
	a.Seed = 1
	b := base
	b.Seed = 2
	p1, _ := Generate(a)
	p2, _ := Generate(b)
	if reflect.DeepEqual(p1.Grid, p2.Grid) {
		t.Error("different seeds produced identical grids")
	}
}

func TestGenerateNormalizesWords(t *testing.T) {
	p, err := Generate(Options{Words: []string{"jack fruit"}, Size: 12, Seed: 5})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(p.Placements) != 1 || p.Placements[0].Word != "JACKFRUIT" {
		t.Errorf("placements = %v, want JACKFRUIT placed", p.Placements)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"empty words", Options{Size: 10}, errors.ErrCodeInvalidInput},
		{"size too small", Options{Words: []string{"CAT"}, Size: 4}, errors.ErrCodeInvalidSize},
		{"size too large", Options{Words: []string{"CAT"}, Size: 64}, errors.ErrCodeInvalidSize},
		{"bad mode", Options{Words: []string{"CAT"}, Size: 10, Mode: "diagonal"}, errors.ErrCodeInvalidMode},
		{"bad word", Options{Words: []string{"C-3PO"}, Size: 10}, errors.ErrCodeInvalidWord},
		{"bad alphabet", Options{Words: []string{"CAT"}, Size: 10,
			Alphabet: Alphabet{Letters: "AB", Weights: []float64{1}}}, errors.ErrCodeInvalidAlphabet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestGenerateLongestFirstOrder(t *testing.T) {
	p, err := Generate(Options{
		Words: []string{"AB", "ABCDEFGH", "ABCDE"},
		Size:  10,
		Seed:  9,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	lengths := make([]int, len(p.Placements))
	for i, pl := range p.Placements {
		lengths[i] = len(pl.Word)
	}
	for i := 1; i < len(lengths); i++ {
		if lengths[i] > lengths[i-1] {
			t.Errorf("placements not longest-first: %v", lengths)
		}
	}
}

func TestGenerateEveryPlacementReadsBack(t *testing.T) {
	// Mirrors how the solution key consumer walks the grid: each placement's
	// path must spell the word in the final (noise-filled) grid.
	p, err := Generate(Options{
		Words: []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel", "VeryVeryLongWord"},
		Size:  12,
		Mode:  ModeFull,
		Seed:  11,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	for _, pl := range p.Placements {
		var b strings.Builder
		for i := 0; i < len(pl.Word); i++ {
			r, c := pl.Cell(i)
			b.WriteByte(p.Grid[r][c])
		}
		if b.String() != pl.Word {
			t.Errorf("grid spells %q along path of %q", b.String(), pl.Word)
		}
	}
	if len(p.Placements)+len(p.Unplaced) != 9 {
		t.Errorf("every input word must be accounted for")
	}
}
