package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wordgrid/wordgrid/pkg/render"
)

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // base path without extension
	output    string // explicit output path from --output, may be empty
	placed    int
	unplaced  int
	cacheHit  bool
}

// writeArtifacts writes each rendered format to disk and prints a summary.
// With a single format and an explicit --output the file is written exactly
// there; otherwise files are written as <base>.<format>.
func writeArtifacts(p artifactWriteParams) error {
	base := p.base
	if p.output != "" {
		ext := filepath.Ext(p.output)
		if render.ValidFormats[strings.TrimPrefix(ext, ".")] {
			base = strings.TrimSuffix(p.output, ext)
		} else {
			base = p.output
		}
	}

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if p.output != "" && len(p.formats) == 1 {
			path = p.output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Generated %d file(s)", len(paths))
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.placed, p.unplaced, p.cacheHit)
	return nil
}
