package puzzle

import "math/rand/v2"

// DefaultMaxAttempts is the per-word retry budget. Anywhere in the 100-500
// range works in practice; 300 keeps dense grids filling reliably without
// noticeable cost on sparse ones.
const DefaultMaxAttempts = 300

// Placement records where a word was written into the grid. It is created
// once per successfully placed word and immutable thereafter.
type Placement struct {
	Word string    `json:"word"`
	Row  int       `json:"row"`
	Col  int       `json:"col"`
	Dir  Direction `json:"dir"`
}

// Cell returns the grid coordinate of the i-th letter of the placed word.
func (p Placement) Cell(i int) (row, col int) {
	return p.Row + p.Dir.DR*i, p.Col + p.Dir.DC*i
}

// PlaceWords attempts to place each word into the grid in the given order,
// mutating the grid in place. Words are tried independently: duplicates are
// each attempted, and a word that exhausts its attempt budget lands in the
// unplaced list instead of failing the run.
//
// Each attempt samples a direction uniformly from the mode's direction set
// and a start coordinate uniformly from the range where the whole word stays
// in bounds. A cell may be reused when it already holds the same letter the
// word needs there, so crossings are allowed; any other conflict invalidates
// the attempt.
//
// Words must already be normalized (see NormalizeWords). The rng is the only
// source of randomness, so a fixed seed reproduces the same layout.
func PlaceWords(g Grid, words []string, mode Mode, rng *rand.Rand, maxAttempts int) (placements []Placement, unplaced []string) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	dirs := mode.Directions()

	for _, word := range words {
		// Longer than the grid along every direction: unplaceable a priori,
		// no point burning the attempt budget.
		if len(word) > g.Size() {
			unplaced = append(unplaced, word)
			continue
		}

		p, ok := placeWord(g, word, dirs, rng, maxAttempts)
		if !ok {
			unplaced = append(unplaced, word)
			continue
		}
		placements = append(placements, p)
	}
	return placements, unplaced
}

// placeWord runs the bounded random search for a single word.
func placeWord(g Grid, word string, dirs []Direction, rng *rand.Rand, maxAttempts int) (Placement, bool) {
	size := g.Size()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		dir := dirs[rng.IntN(len(dirs))]
		row := randStart(rng, dir.DR, len(word), size)
		col := randStart(rng, dir.DC, len(word), size)

		if !fits(g, word, row, col, dir) {
			continue
		}
		for i := 0; i < len(word); i++ {
			r, c := row+dir.DR*i, col+dir.DC*i
			g[r][c] = word[i]
		}
		return Placement{Word: word, Row: row, Col: col, Dir: dir}, true
	}
	return Placement{}, false
}

// randStart picks a uniform start coordinate on one axis such that
// start + (len-1)*delta stays within [0, size).
func randStart(rng *rand.Rand, delta, wordLen, size int) int {
	span := size - wordLen + 1
	switch delta {
	case 1:
		return rng.IntN(span)
	case -1:
		return wordLen - 1 + rng.IntN(span)
	default:
		return rng.IntN(size)
	}
}

// fits reports whether every cell the word would occupy is either empty or
// already holds the matching letter.
func fits(g Grid, word string, row, col int, dir Direction) bool {
	for i := 0; i < len(word); i++ {
		r, c := row+dir.DR*i, col+dir.DC*i
		if cell := g[r][c]; cell != Empty && cell != word[i] {
			return false
		}
	}
	return true
}
