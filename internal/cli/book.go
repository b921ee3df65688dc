package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordgrid/wordgrid/pkg/book"
	"github.com/wordgrid/wordgrid/pkg/render"
)

// bookCommand creates the book command group.
func (c *CLI) bookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Build and validate puzzle books",
	}

	cmd.AddCommand(c.bookBuildCommand())
	cmd.AddCommand(c.bookValidateCommand())
	cmd.AddCommand(c.bookDescriptionCommand())

	return cmd
}

// bookBuildCommand creates the "book build" subcommand.
func (c *CLI) bookBuildCommand() *cobra.Command {
	var (
		formatsStr string
		noCache    bool
	)
	opts := book.BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build [book.json|book.toml]",
		Short: "Generate every puzzle in a book",
		Long: `Generate every puzzle in a book.

The build command reads a book definition, validates it, generates all
puzzles, and writes puzzle pages, solution pages, front matter, and a
manifest to the output directory. Puzzle generation runs in parallel.

Each puzzle uses seed+index, so rebuilding a book reproduces every grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runBookBuild(cmd.Context(), args[0], opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "output directory (default: <book slug>_book)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "svg", "page format(s): svg (default), text, png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "direction mode: full (default), basic")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "base random seed (default 42)")
	cmd.Flags().IntVar(&opts.MaxAttempts, "attempts", 0, "placement attempts per word (default 300)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent puzzle workers (default: CPU count)")
	cmd.Flags().BoolVar(&opts.Cover, "cover", false, "render a cover image from the first puzzle")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "regenerate even if cached")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runBookBuild loads, validates, and builds the book.
func (c *CLI) runBookBuild(ctx context.Context, input string, opts book.BuildOptions, noCache bool) error {
	b, err := book.Load(input)
	if err != nil {
		return err
	}
	if opts.OutputDir == "" {
		opts.OutputDir = b.Slug() + "_book"
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	builder := book.NewBuilder(runner, c.Logger)

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %d puzzles...", len(b.Puzzles)))
	spinner.Start()

	manifest, err := builder.Build(ctx, b, opts)
	if err != nil {
		spinner.StopWithError("Book build failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Generated %d puzzles", len(manifest.Puzzles)))

	unplaced := 0
	for _, entry := range manifest.Puzzles {
		unplaced += len(entry.Unplaced)
	}

	printSuccess("Book complete: %s", StyleTitle.Render(b.Title))
	printFile(opts.OutputDir)
	if unplaced > 0 {
		printWarning("%d word(s) could not be placed; see manifest.json", unplaced)
	}
	return nil
}

// bookValidateCommand creates the "book validate" subcommand.
func (c *CLI) bookValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [book.json|book.toml...]",
		Short: "Validate book definition files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				b, err := book.Load(path)
				if err != nil {
					printError("%s: %v", path, err)
					failed++
					continue
				}
				problems := b.Problems()
				if len(problems) > 0 {
					printError("%s:", path)
					for _, p := range problems {
						printDetail("%s", p)
					}
					failed++
					continue
				}
				printSuccess("%s", path)
				printDetail("%d puzzles", len(b.Puzzles))
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed validation", failed)
			}
			return nil
		},
	}
}

// bookDescriptionCommand creates the "book description" subcommand.
func (c *CLI) bookDescriptionCommand() *cobra.Command {
	var (
		output   string
		template string
	)
	cmd := &cobra.Command{
		Use:   "description [book.json|book.toml]",
		Short: "Render the book's HTML description page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := book.Load(args[0])
			if err != nil {
				return err
			}
			out, err := b.DescriptionHTML(template)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Print(string(out))
				return nil
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Description written")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&template, "template", "", "custom HTML template file")

	return cmd
}
