package puzzle

import (
	"strings"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// NormalizeWord uppercases a word and strips spaces. Multi-word entries like
// "jack fruit" collapse into a single placeable string. Any remaining
// character outside A-Z is rejected at ingestion rather than silently skipped.
func NormalizeWord(word string) (string, error) {
	w := strings.ToUpper(strings.ReplaceAll(word, " ", ""))
	if w == "" {
		return "", errors.New(errors.ErrCodeInvalidWord, "word %q is empty after normalization", word)
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return "", errors.New(errors.ErrCodeInvalidWord,
				"word %q contains unsupported character %q", word, r)
		}
	}
	return w, nil
}

// NormalizeWords normalizes every word in the list, preserving order.
// The first invalid word aborts ingestion.
func NormalizeWords(words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "word list is empty")
	}
	out := make([]string, len(words))
	for i, word := range words {
		w, err := NormalizeWord(word)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}
