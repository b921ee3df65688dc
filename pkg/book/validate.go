package book

import (
	"fmt"
	"strings"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// Problems runs every validation rule and returns one message per violation.
// An empty slice means the book is valid.
func (b *Book) Problems() []string {
	var problems []string

	if b.Title == "" {
		problems = append(problems, "missing 'title'")
	}
	if len(b.Puzzles) == 0 {
		problems = append(problems, "missing 'puzzles'")
	}

	// Version 1.0 introduced the cover color field.
	if b.Version >= 1.0 {
		if b.Color == "" {
			problems = append(problems, "missing 'color' for version >= 1.0")
		} else if !validHexColor(b.Color) {
			problems = append(problems, fmt.Sprintf("'color' %q is not a valid hex color code", b.Color))
		}
	}

	for i, def := range b.Puzzles {
		label := def.Title
		if label == "" {
			label = fmt.Sprintf("puzzle at index %d", i)
		}

		if len(def.Words) == 0 {
			problems = append(problems, fmt.Sprintf("%s: missing 'words'", label))
		}
		if def.Size == 0 {
			problems = append(problems, fmt.Sprintf("%s: missing 'size'", label))
		}

		if dups := duplicateWords(def.Words); len(dups) > 0 {
			problems = append(problems,
				fmt.Sprintf("%s: duplicate words: %s", label, strings.Join(dups, ", ")))
		}

		// Spaces are stripped at generation time, so they don't count
		// against the grid size.
		if def.Size > 0 {
			for _, w := range def.Words {
				if len(strings.ReplaceAll(w, " ", "")) > def.Size {
					problems = append(problems,
						fmt.Sprintf("%s: word %q exceeds puzzle size %d", label, w, def.Size))
				}
			}
		}
	}

	return problems
}

// Validate returns an error listing every problem, or nil if the book is valid.
func (b *Book) Validate() error {
	problems := b.Problems()
	if len(problems) == 0 {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidBook, "invalid book: %s", strings.Join(problems, "; "))
}

// validHexColor accepts #rgb and #rrggbb.
func validHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// duplicateWords returns each word that appears more than once, preserving
// first-occurrence order. Comparison is case-sensitive, matching how book
// files are authored.
func duplicateWords(words []string) []string {
	seen := make(map[string]int, len(words))
	for _, w := range words {
		seen[w]++
	}
	var dups []string
	reported := make(map[string]bool)
	for _, w := range words {
		if seen[w] > 1 && !reported[w] {
			dups = append(dups, w)
			reported[w] = true
		}
	}
	return dups
}
