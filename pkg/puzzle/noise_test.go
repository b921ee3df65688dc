package puzzle

import (
	"strings"
	"testing"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

func TestFillNoiseFillsEveryCell(t *testing.T) {
	g, _ := NewGrid(10)
	if err := FillNoise(g, DefaultNoise, newTestRNG(1)); err != nil {
		t.Fatalf("FillNoise error: %v", err)
	}
	if !g.Full() {
		t.Error("grid should be full after noise fill")
	}
	for r := range g {
		for c := range g[r] {
			if !strings.ContainsRune(DefaultAlphabet, rune(g[r][c])) {
				t.Fatalf("cell (%d,%d) = %c not in alphabet", r, c, g[r][c])
			}
		}
	}
}

func TestFillNoisePreservesPlacedLetters(t *testing.T) {
	g, _ := NewGrid(10)
	placements, _ := PlaceWords(g, []string{"KEEPSAKE"}, ModeBasic, newTestRNG(2), 300)
	if len(placements) != 1 {
		t.Fatal("setup: word not placed")
	}
	if err := FillNoise(g, DefaultNoise, newTestRNG(3)); err != nil {
		t.Fatalf("FillNoise error: %v", err)
	}
	p := placements[0]
	for i := 0; i < len(p.Word); i++ {
		r, c := p.Cell(i)
		if g[r][c] != p.Word[i] {
			t.Errorf("noise overwrote placed letter at (%d,%d)", r, c)
		}
	}
}

func TestFillNoiseEmptyAlphabet(t *testing.T) {
	g, _ := NewGrid(8)
	err := FillNoise(g, Alphabet{}, newTestRNG(1))
	if !errors.Is(err, errors.ErrCodeInvalidAlphabet) {
		t.Errorf("error = %v, want INVALID_ALPHABET", err)
	}
}

func TestAlphabetValidate(t *testing.T) {
	tests := []struct {
		name    string
		a       Alphabet
		wantErr bool
	}{
		{"uniform", Alphabet{Letters: "ABC"}, false},
		{"weighted", Alphabet{Letters: "ABC", Weights: []float64{1, 2, 3}}, false},
		{"empty", Alphabet{}, true},
		{"length mismatch", Alphabet{Letters: "ABC", Weights: []float64{1}}, true},
		{"negative weight", Alphabet{Letters: "AB", Weights: []float64{1, -1}}, true},
		{"zero weights", Alphabet{Letters: "AB", Weights: []float64{0, 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFillNoiseWeightedRespectsZeroWeight(t *testing.T) {
	// Letter B has weight zero; it must never appear.
	g, _ := NewGrid(12)
	a := Alphabet{Letters: "AB", Weights: []float64{1, 0}}
	if err := FillNoise(g, a, newTestRNG(4)); err != nil {
		t.Fatalf("FillNoise error: %v", err)
	}
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 'B' {
				t.Fatal("zero-weight letter drawn as noise")
			}
		}
	}
}
