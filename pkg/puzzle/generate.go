// Package puzzle generates wordsearch puzzle grids.
//
// Generation happens in three strictly sequenced steps over a single
// exclusively-owned grid:
//
//  1. Allocate an empty size×size grid (NewGrid)
//  2. Place each word along a random conflict-free direction (PlaceWords)
//  3. Fill the remaining cells with noise letters (FillNoise)
//
// The result is a Puzzle holding the finished grid, the placement records
// needed to render a solution key, and the words that could not be fitted.
// All randomness flows through one seeded generator, so the same Options
// always produce the same puzzle.
//
// # Usage
//
//	p, err := puzzle.Generate(puzzle.Options{
//	    Title: "Fruits",
//	    Words: []string{"apple", "banana", "cherry"},
//	    Size:  12,
//	    Mode:  puzzle.ModeFull,
//	    Seed:  42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(p.Grid)
package puzzle

import (
	"math/rand/v2"
	"sort"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// DefaultSeed is the seed used when Options.Seed is zero.
const DefaultSeed = uint64(42)

// DefaultSize is the grid dimension used when Options.Size is zero.
const DefaultSize = 15

// Options configures puzzle generation.
type Options struct {
	Title string   `json:"title,omitempty"`
	Words []string `json:"words"`
	Size  int      `json:"size,omitempty"`
	Mode  Mode     `json:"mode,omitempty"`
	Seed  uint64   `json:"seed,omitempty"`

	// MaxAttempts bounds the random search per word (default 300).
	MaxAttempts int `json:"max_attempts,omitempty"`

	// KeepOrder places words in input order instead of longest-first.
	KeepOrder bool `json:"keep_order,omitempty"`

	// Alphabet for noise letters (default: uniform A-Z).
	Alphabet Alphabet `json:"alphabet,omitempty"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Words) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "word list is empty")
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Size < MinSize || o.Size > MaxSize {
		return errors.New(errors.ErrCodeInvalidSize,
			"grid size %d out of range [%d, %d]", o.Size, MinSize, MaxSize)
	}
	mode, err := ParseMode(string(o.Mode))
	if err != nil {
		return err
	}
	o.Mode = mode
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Alphabet.Letters == "" {
		o.Alphabet = DefaultNoise
	}
	return o.Alphabet.Validate()
}

// Puzzle is the finished result handed to renderers and stores. The grid is
// fully filled; Placements and Unplaced keep attempt order. Callers own the
// value and must treat it as immutable once rendering begins.
type Puzzle struct {
	Title      string      `json:"title,omitempty"`
	Size       int         `json:"size"`
	Mode       Mode        `json:"mode"`
	Seed       uint64      `json:"seed"`
	Grid       Grid        `json:"-"`
	Placements []Placement `json:"placements"`
	Unplaced   []string    `json:"unplaced,omitempty"`
}

// Generate builds a complete puzzle from the options.
//
// Words are normalized once at ingestion (uppercased, spaces stripped); a
// word with other non-letter characters is a configuration error. Placement
// runs longest-first by default, which reduces fragmentation when long words
// compete for diagonal space; set Options.KeepOrder to preserve input order.
// Words that exhaust their attempt budget are reported in Puzzle.Unplaced,
// never dropped and never an error.
func Generate(opts Options) (*Puzzle, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	words, err := NormalizeWords(opts.Words)
	if err != nil {
		return nil, err
	}
	if !opts.KeepOrder {
		sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	}

	g, err := NewGrid(opts.Size)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	placements, unplaced := PlaceWords(g, words, opts.Mode, rng, opts.MaxAttempts)
	if err := FillNoise(g, opts.Alphabet, rng); err != nil {
		return nil, err
	}

	return &Puzzle{
		Title:      opts.Title,
		Size:       opts.Size,
		Mode:       opts.Mode,
		Seed:       opts.Seed,
		Grid:       g,
		Placements: placements,
		Unplaced:   unplaced,
	}, nil
}

// Words returns the placed words in attempt order.
func (p *Puzzle) Words() []string {
	out := make([]string, len(p.Placements))
	for i, pl := range p.Placements {
		out[i] = pl.Word
	}
	return out
}
