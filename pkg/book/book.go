// Package book loads, validates, and builds complete puzzle books.
//
// A book file defines a title, a format version, and a list of puzzle
// definitions (title, word list, grid size). Book files are JSON or TOML.
// Building a book generates every puzzle, renders puzzle and solution pages,
// produces front matter, and writes a manifest describing the output.
package book

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// PuzzleDef is one puzzle entry in a book file.
type PuzzleDef struct {
	Title string   `json:"title" toml:"title"`
	Words []string `json:"words" toml:"words"`
	Size  int      `json:"size" toml:"size"`
}

// Book is a parsed book definition.
type Book struct {
	Title       string      `json:"title" toml:"title"`
	Version     float64     `json:"version,omitempty" toml:"version"`
	Color       string      `json:"color,omitempty" toml:"color"`
	Description []string    `json:"description,omitempty" toml:"description"`
	Catchphrase string      `json:"catchphrase,omitempty" toml:"catchphrase"`
	Puzzles     []PuzzleDef `json:"puzzles" toml:"puzzles"`
}

// Load reads a book definition from a JSON or TOML file, chosen by extension.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "book file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read book file %s", path)
	}

	var b Book
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBook, err, "parse book JSON %s", path)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBook, err, "parse book TOML %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidBook,
			"unsupported book file extension %q (want .json or .toml)", filepath.Ext(path))
	}
	return &b, nil
}

// Slug returns the book title as a filesystem-friendly name.
func (b *Book) Slug() string {
	s := strings.ToLower(strings.TrimSpace(b.Title))
	s = strings.ReplaceAll(s, " ", "_")
	var out strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			out.WriteRune(r)
		}
	}
	if out.Len() == 0 {
		return "book"
	}
	return out.String()
}
