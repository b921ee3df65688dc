package puzzle

import (
	"fmt"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// Direction is a unit step (row delta, column delta) along which consecutive
// letters of a word advance across the grid.
type Direction struct {
	DR int `json:"dr"`
	DC int `json:"dc"`
}

// The eight supported directions.
var (
	DirRight     = Direction{0, 1}
	DirLeft      = Direction{0, -1}
	DirDown      = Direction{1, 0}
	DirUp        = Direction{-1, 0}
	DirDownRight = Direction{1, 1}
	DirUpLeft    = Direction{-1, -1}
	DirDownLeft  = Direction{1, -1}
	DirUpRight   = Direction{-1, 1}
)

// Mode selects which direction set the placement engine may use.
type Mode string

const (
	// ModeBasic restricts placement to the three forward directions:
	// left-to-right, top-to-bottom, and the top-left-to-bottom-right diagonal.
	ModeBasic Mode = "basic"

	// ModeFull allows all eight directions, including reversed and upward ones.
	ModeFull Mode = "full"
)

// basicDirections are the forward-only vectors used by ModeBasic.
var basicDirections = []Direction{DirRight, DirDown, DirDownRight}

// fullDirections are all eight unit vectors used by ModeFull.
var fullDirections = []Direction{
	DirRight, DirLeft, DirDown, DirUp,
	DirDownRight, DirUpLeft, DirDownLeft, DirUpRight,
}

// Directions returns the direction set for the mode. Unknown modes fall back
// to ModeBasic.
func (m Mode) Directions() []Direction {
	if m == ModeFull {
		return fullDirections
	}
	return basicDirections
}

// ParseMode validates a mode string. An empty string selects ModeBasic.
// Every mode input (Options, the --mode flag, API requests) funnels through
// here so they all produce the same coded error.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBasic, ModeFull:
		return Mode(s), nil
	case "":
		return ModeBasic, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be 'basic' or 'full')", s)
}

// IsBasic reports whether d belongs to the basic direction set.
func (d Direction) IsBasic() bool {
	for _, b := range basicDirections {
		if d == b {
			return true
		}
	}
	return false
}

// Valid reports whether d is one of the eight unit vectors.
func (d Direction) Valid() bool {
	if d.DR == 0 && d.DC == 0 {
		return false
	}
	return d.DR >= -1 && d.DR <= 1 && d.DC >= -1 && d.DC <= 1
}

// String returns a stable lowercase name, e.g. "down-right".
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("(%d,%d)", d.DR, d.DC)
}

var directionNames = map[Direction]string{
	DirRight:     "right",
	DirLeft:      "left",
	DirDown:      "down",
	DirUp:        "up",
	DirDownRight: "down-right",
	DirUpLeft:    "up-left",
	DirDownLeft:  "down-left",
	DirUpRight:   "up-right",
}

// Arrow returns the arrow rune used when printing solution keys.
func (d Direction) Arrow() rune {
	switch d {
	case DirRight:
		return '→'
	case DirLeft:
		return '←'
	case DirDown:
		return '↓'
	case DirUp:
		return '↑'
	case DirDownRight:
		return '↘'
	case DirUpLeft:
		return '↖'
	case DirDownLeft:
		return '↙'
	case DirUpRight:
		return '↗'
	}
	return '?'
}
