package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "animals")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"text": []byte("grid"),
			"svg":  []byte("<svg/>"),
		},
		formats: []string{"text", "svg"},
		base:    base,
		placed:  3,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for _, name := range []string{"animals.text", "animals.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestWriteArtifactsExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "puzzle.svg")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		base:      filepath.Join(dir, "ignored"),
		output:    out,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected output at %s: %v", out, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ignored.svg")); err == nil {
		t.Error("file should not be written under base when --output is given")
	}
}

func TestWriteArtifactsOutputWithFormatExtension(t *testing.T) {
	// With multiple formats, an --output ending in a format extension is
	// treated as the base name.
	dir := t.TempDir()
	out := filepath.Join(dir, "puzzle.svg")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"svg":  []byte("<svg/>"),
			"text": []byte("grid"),
		},
		formats: []string{"svg", "text"},
		base:    filepath.Join(dir, "ignored"),
		output:  out,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for _, name := range []string{"puzzle.svg", "puzzle.text"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}
}

func TestWriteArtifactsSkipsMissingFormats(t *testing.T) {
	dir := t.TempDir()

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"text": []byte("grid")},
		formats:   []string{"text", "png"},
		base:      filepath.Join(dir, "out"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "out.png")); err == nil {
		t.Error("png should not exist when no artifact was rendered for it")
	}
}
