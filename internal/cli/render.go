package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordgrid/wordgrid/pkg/pipeline"
	"github.com/wordgrid/wordgrid/pkg/puzzle"
	"github.com/wordgrid/wordgrid/pkg/render"
)

// renderCommand creates the render command for re-rendering saved puzzles.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [puzzle.json]",
		Short: "Render a saved puzzle without regenerating it",
		Long: `Render a saved puzzle without regenerating it.

The render command takes a puzzle.json file (produced by 'generate -f json')
and renders it to any supported format. The file contains the finished grid
and all placements, so no generation work is repeated.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), svg, png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.ShowSolution, "solution", false, "overlay the solution on the grid")
	cmd.Flags().BoolVar(&opts.ShowUnplaced, "show-unplaced", false, "list words that could not be placed")
	cmd.Flags().Float64Var(&opts.CellSize, "cell-size", 0, "grid cell size in pixels (default 32)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG oversampling factor (default 2)")

	return cmd
}

// runRender loads the saved puzzle and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read puzzle %s: %w", input, err)
	}
	p, err := puzzle.UnmarshalPuzzle(data)
	if err != nil {
		return fmt.Errorf("load puzzle %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering puzzle...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      strings.TrimSuffix(input, filepath.Ext(input)),
		output:    output,
		placed:    len(p.Placements),
		unplaced:  len(p.Unplaced),
		cacheHit:  cacheHit,
	})
}
