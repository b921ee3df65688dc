package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "animals.json", `{
		"title": "Animal Puzzles",
		"version": 1.0,
		"color": "#E1AD01",
		"puzzles": [
			{"title": "Farm", "words": ["cow", "pig", "hen"], "size": 10},
			{"title": "Jungle", "words": ["lion", "tiger"], "size": 12}
		]
	}`)

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if b.Title != "Animal Puzzles" {
		t.Errorf("Title = %q", b.Title)
	}
	if len(b.Puzzles) != 2 {
		t.Fatalf("got %d puzzles", len(b.Puzzles))
	}
	if b.Puzzles[1].Size != 12 {
		t.Errorf("second puzzle size = %d", b.Puzzles[1].Size)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeTemp(t, "animals.toml", `
title = "Animal Puzzles"
version = 1.0
color = "#fa0"

[[puzzles]]
title = "Farm"
words = ["cow", "pig"]
size = 10
`)

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if b.Color != "#fa0" {
		t.Errorf("Color = %q", b.Color)
	}
	if len(b.Puzzles) != 1 || b.Puzzles[0].Title != "Farm" {
		t.Errorf("puzzles = %+v", b.Puzzles)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("/nonexistent/book.json"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	bad := writeTemp(t, "bad.json", `{not json`)
	if _, err := Load(bad); !errors.Is(err, errors.ErrCodeInvalidBook) {
		t.Errorf("bad JSON error = %v, want INVALID_BOOK", err)
	}

	yaml := writeTemp(t, "book.yaml", `title: x`)
	if _, err := Load(yaml); !errors.Is(err, errors.ErrCodeInvalidBook) {
		t.Errorf("unsupported extension error = %v, want INVALID_BOOK", err)
	}
}

func TestValidate(t *testing.T) {
	valid := &Book{
		Title:   "Animals",
		Version: 1.0,
		Color:   "#E1AD01",
		Puzzles: []PuzzleDef{
			{Title: "Farm", Words: []string{"cow", "pig"}, Size: 10},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid book failed: %v", err)
	}
}

func TestValidateProblems(t *testing.T) {
	tests := []struct {
		name string
		book Book
		want string
	}{
		{
			"missing title",
			Book{Puzzles: []PuzzleDef{{Words: []string{"a"}, Size: 8}}},
			"missing 'title'",
		},
		{
			"missing puzzles",
			Book{Title: "X"},
			"missing 'puzzles'",
		},
		{
			"missing color for v1",
			Book{Title: "X", Version: 1.0, Puzzles: []PuzzleDef{{Title: "P", Words: []string{"a"}, Size: 8}}},
			"missing 'color'",
		},
		{
			"bad hex color",
			Book{Title: "X", Version: 1.2, Color: "#zzz", Puzzles: []PuzzleDef{{Title: "P", Words: []string{"a"}, Size: 8}}},
			"not a valid hex color",
		},
		{
			"duplicate words",
			Book{Title: "X", Puzzles: []PuzzleDef{{Title: "P", Words: []string{"cow", "pig", "cow"}, Size: 8}}},
			"duplicate words: cow",
		},
		{
			"word exceeds size",
			Book{Title: "X", Puzzles: []PuzzleDef{{Title: "P", Words: []string{"hippopotamus"}, Size: 8}}},
			`word "hippopotamus" exceeds puzzle size 8`,
		},
		{
			"missing size",
			Book{Title: "X", Puzzles: []PuzzleDef{{Title: "P", Words: []string{"cow"}}}},
			"missing 'size'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.book.Problems()
			found := false
			for _, p := range problems {
				if strings.Contains(p, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("problems %v missing %q", problems, tt.want)
			}
			if err := tt.book.Validate(); !errors.Is(err, errors.ErrCodeInvalidBook) {
				t.Errorf("Validate error = %v, want INVALID_BOOK", err)
			}
		})
	}
}

func TestValidateColorSkippedBeforeV1(t *testing.T) {
	b := Book{
		Title:   "X",
		Version: 0.5,
		Puzzles: []PuzzleDef{{Title: "P", Words: []string{"cow"}, Size: 8}},
	}
	if err := b.Validate(); err != nil {
		t.Errorf("pre-1.0 book without color failed: %v", err)
	}
}

func TestValidateSpacesDoNotCountAgainstSize(t *testing.T) {
	b := Book{
		Title:   "X",
		Puzzles: []PuzzleDef{{Title: "P", Words: []string{"polar bear"}, Size: 9}},
	}
	if err := b.Validate(); err != nil {
		t.Errorf("spaced word should fit: %v", err)
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Animal Puzzles":  "animal_puzzles",
		"Kids' Fun #1":    "kids_fun_1",
		"  Trimmed  ":     "trimmed",
		"":                "book",
		"ALL-CAPS TITLES": "all-caps_titles",
	}
	for in, want := range tests {
		b := Book{Title: in}
		if got := b.Slug(); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDescriptionHTML(t *testing.T) {
	b := Book{
		Title:       "Animals",
		Description: []string{"Fifty puzzles."},
		Catchphrase: "Find them all!",
		Puzzles: []PuzzleDef{
			{Title: "farm", Words: []string{"COW", "PIG"}},
		},
	}
	out, err := b.DescriptionHTML("")
	if err != nil {
		t.Fatalf("DescriptionHTML error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "ANIMALS") || !strings.Contains(s, "<b>Farm</b>: Cow, Pig") {
		t.Errorf("unexpected output: %s", s)
	}
}
