package puzzle

import (
	"math/rand/v2"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// DefaultAlphabet is the noise alphabet used when none is configured.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet describes the pool noise letters are drawn from. With no weights
// every letter is equally likely; with weights the draw follows the given
// relative frequencies (e.g. English letter frequency for harder puzzles).
type Alphabet struct {
	Letters string    `json:"letters"`
	Weights []float64 `json:"weights,omitempty"`
}

// DefaultNoise is the uniform A-Z alphabet.
var DefaultNoise = Alphabet{Letters: DefaultAlphabet}

// Validate checks the alphabet is usable for noise filling.
func (a Alphabet) Validate() error {
	if len(a.Letters) == 0 {
		return errors.New(errors.ErrCodeInvalidAlphabet, "alphabet is empty")
	}
	if a.Weights != nil && len(a.Weights) != len(a.Letters) {
		return errors.New(errors.ErrCodeInvalidAlphabet,
			"alphabet has %d letters but %d weights", len(a.Letters), len(a.Weights))
	}
	total := 0.0
	for i, w := range a.Weights {
		if w < 0 {
			return errors.New(errors.ErrCodeInvalidAlphabet,
				"weight for %q is negative", a.Letters[i])
		}
		total += w
	}
	if a.Weights != nil && total == 0 {
		return errors.New(errors.ErrCodeInvalidAlphabet, "alphabet weights sum to zero")
	}
	return nil
}

// pick draws one letter according to the alphabet's distribution.
func (a Alphabet) pick(rng *rand.Rand) byte {
	if a.Weights == nil {
		return a.Letters[rng.IntN(len(a.Letters))]
	}
	total := 0.0
	for _, w := range a.Weights {
		total += w
	}
	x := rng.Float64() * total
	for i, w := range a.Weights {
		x -= w
		if x < 0 {
			return a.Letters[i]
		}
	}
	return a.Letters[len(a.Letters)-1]
}

// FillNoise assigns a letter from the alphabet to every still-empty cell,
// mutating the grid in place. Cells already holding placed-word letters are
// never touched.
func FillNoise(g Grid, alphabet Alphabet, rng *rand.Rand) error {
	if err := alphabet.Validate(); err != nil {
		return err
	}
	for r := range g {
		for c := range g[r] {
			if g[r][c] == Empty {
				g[r][c] = alphabet.pick(rng)
			}
		}
	}
	return nil
}
