package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordgrid/wordgrid/pkg/pipeline"
	"github.com/wordgrid/wordgrid/pkg/render"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [words...]",
		Short: "Generate a wordsearch puzzle",
		Long: `Generate a wordsearch puzzle from a word list.

Words are placed on the grid along random directions; cells left empty are
filled with noise letters. Words that cannot be fitted within the attempt
budget are reported as unplaced.

The same words, size, mode, and seed always produce the same puzzle.
Results are cached locally for faster subsequent runs.

Examples:
  wordgrid generate cat dog lion
  wordgrid generate -s 20 -m full --seed 7 elephant giraffe zebra
  wordgrid generate -f svg,pdf --solution -o animals cat dog lion`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Words = args
			opts.Formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "regenerate even if cached")

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "puzzle title")
	cmd.Flags().IntVarP(&opts.Size, "size", "s", 0, "grid size (default 15)")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "direction mode: basic (default), full")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (default 42)")
	cmd.Flags().IntVar(&opts.MaxAttempts, "attempts", 0, "placement attempts per word (default 300)")
	cmd.Flags().BoolVar(&opts.KeepOrder, "keep-order", false, "place words in input order instead of longest-first")
	cmd.Flags().StringVar(&opts.Alphabet, "alphabet", "", "noise letter pool (default A-Z)")

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), svg, png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.ShowSolution, "solution", false, "overlay the solution on the grid")
	cmd.Flags().BoolVar(&opts.ShowUnplaced, "show-unplaced", false, "list words that could not be placed")
	cmd.Flags().Float64Var(&opts.CellSize, "cell-size", 0, "grid cell size in pixels (default 32)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG oversampling factor (default 2)")

	return cmd
}

// runGenerate executes the pipeline and writes the requested artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Generating puzzle...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, w := range result.Puzzle.Unplaced {
		printWarning("Could not place %q", w)
	}

	// Plain text with no explicit output goes to stdout.
	if output == "" && len(opts.Formats) == 1 && opts.Formats[0] == render.FormatText {
		fmt.Print(string(result.Artifacts[render.FormatText]))
		printStats(result.Stats.PlacedCount, result.Stats.UnplacedCount, result.CacheInfo.GenerateHit)
		return nil
	}

	base := "puzzle"
	if opts.Title != "" {
		base = strings.ToLower(strings.ReplaceAll(opts.Title, " ", "_"))
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      base,
		output:    output,
		placed:    result.Stats.PlacedCount,
		unplaced:  result.Stats.UnplacedCount,
		cacheHit:  result.CacheInfo.GenerateHit && result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}

	printNewline()
	printNextStep("Solution", "wordgrid generate --solution "+strings.Join(opts.Words, " "))
	return nil
}
