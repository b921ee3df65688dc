package puzzle

import (
	"testing"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

func TestModeDirections(t *testing.T) {
	if got := len(ModeBasic.Directions()); got != 3 {
		t.Errorf("basic directions = %d, want 3", got)
	}
	if got := len(ModeFull.Directions()); got != 8 {
		t.Errorf("full directions = %d, want 8", got)
	}
	for _, d := range ModeBasic.Directions() {
		if !d.IsBasic() {
			t.Errorf("direction %s should be basic", d)
		}
		// Basic vectors never move up or right-to-left.
		if d.DR < 0 || d.DC < 0 {
			t.Errorf("basic direction %s is reversed", d)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"basic", ModeBasic, false},
		{"full", ModeFull, false},
		{"", ModeBasic, false},
		{"diagonal", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseModeCodedError(t *testing.T) {
	_, err := ParseMode("diagonal")
	if !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("ParseMode error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidMode)
	}

	// Options validation funnels through ParseMode, so a bad mode surfaces
	// with the same code.
	opts := Options{Words: []string{"CAT"}, Mode: "diagonal"}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("ValidateAndSetDefaults error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidMode)
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range fullDirections {
		if !d.Valid() {
			t.Errorf("direction %s should be valid", d)
		}
	}
	for _, d := range []Direction{{0, 0}, {2, 0}, {0, -2}, {3, 3}} {
		if d.Valid() {
			t.Errorf("direction (%d,%d) should be invalid", d.DR, d.DC)
		}
	}
}

func TestDirectionArrows(t *testing.T) {
	seen := map[rune]bool{}
	for _, d := range fullDirections {
		a := d.Arrow()
		if a == '?' {
			t.Errorf("direction %s has no arrow", d)
		}
		if seen[a] {
			t.Errorf("arrow %c reused", a)
		}
		seen[a] = true
	}
	if (Direction{2, 2}).Arrow() != '?' {
		t.Error("unknown direction should map to '?'")
	}
}
