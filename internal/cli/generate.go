package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	stio "github.com/matzehuels/testspec/pkg/io"
	"github.com/matzehuels/testspec/pkg/pipeline"
	"github.com/matzehuels/testspec/pkg/render/table"
)

// stdio names stdin as input and stdout as output.
const stdio = "-"

// generateOpts holds the command-line flags for the generate command.
// Zero values mean "not given" so the config file and defaults apply.
type generateOpts struct {
	format  string
	headers [table.NumColumns]string
	widths  [table.NumColumns]float64

	font             string
	headerText       string
	headerBackground string
	bodyText         string
	bodyBackground   string
	border           string

	noCache bool
	refresh bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:     "generate INPUT OUTPUT",
		Aliases: []string{"gen"},
		Short:   "Render a YAML test specification",
		Long: `Render a YAML test specification to Markdown, HTML or an Excel workbook.

INPUT and OUTPUT may be "-" for stdin and stdout. Without --format the
format follows the OUTPUT extension (.md, .html, .xlsx) and falls back to
markdown.

Every flag can also be set through an environment variable named after it,
e.g. TESTSPEC_FORMAT or TESTSPEC_PRIMARY_COLUMN.`,
		Example: `  testspec generate login.yaml login.md
  testspec gen -f excel login.yaml login.xlsx
  cat login.yaml | testspec gen -f html - -`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], args[1], cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "", "output format: markdown (md), excel (xlsx), html")
	for _, col := range table.AllColumns() {
		def := table.DefaultColumns()[col]
		flags.StringVar(&opts.headers[col], col.String()+"-column", "", "header of the "+col.String()+" column (default \""+def.Header+"\")")
		flags.Float64Var(&opts.widths[col], col.String()+"-width", 0, "width of the "+col.String()+" column in characters")
	}
	flags.StringVar(&opts.font, "font", "", "workbook font (default \"Yu Gothic\")")
	flags.StringVar(&opts.headerText, "header-text-color", "", "header text color, RRGGBB")
	flags.StringVar(&opts.headerBackground, "header-bg-color", "", "header background color, RRGGBB")
	flags.StringVar(&opts.bodyText, "body-text-color", "", "body text color, RRGGBB")
	flags.StringVar(&opts.bodyBackground, "body-bg-color", "", "body background color, RRGGBB")
	flags.StringVar(&opts.border, "border-color", "", "border color, RRGGBB")
	flags.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	flags.BoolVar(&opts.refresh, "refresh", false, "re-render even if the artifact is cached")

	cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runGenerate renders input to output. The artifact is written only after
// the whole render succeeded.
func (c *CLI) runGenerate(ctx context.Context, input, output string, stdin io.Reader, stdout io.Writer, g generateOpts) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input, stdin)
	if err != nil {
		return err
	}

	opts := c.buildOptions(g, output)
	opts.Logger = logger

	runner, err := c.newRunner(ctx, g.noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, data, opts)
	if err != nil {
		return err
	}

	if output == stdio {
		if _, err := stdout.Write(result.Artifact); err != nil {
			return sterrors.Wrap(sterrors.ErrCodeIO, err, "write stdout")
		}
	} else if err := stio.WriteArtifact(output, result.Artifact); err != nil {
		return err
	}

	printSuccess("Generated %s", StyleHighlight.Render(result.Format))
	printStats(result.Stats.Primary, result.Stats.Rows, result.CacheHit)
	if output != stdio {
		printFile(output)
	}
	return nil
}

// buildOptions layers flags (already merged with the environment) over the
// config file.
func (c *CLI) buildOptions(g generateOpts, output string) pipeline.Options {
	var opts pipeline.Options
	c.config.Apply(&opts)

	if g.format != "" {
		opts.Format = g.format
	}
	if opts.Format == "" {
		opts.Format = formatFromPath(output)
	}
	for i := range g.headers {
		if g.headers[i] != "" {
			opts.Columns[i].Header = g.headers[i]
		}
		if g.widths[i] != 0 {
			opts.Columns[i].Width = g.widths[i]
		}
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&opts.Style.Font, g.font)
	set(&opts.Style.HeaderText, g.headerText)
	set(&opts.Style.HeaderBackground, g.headerBackground)
	set(&opts.Style.BodyText, g.bodyText)
	set(&opts.Style.BodyBackground, g.bodyBackground)
	set(&opts.Style.Border, g.border)

	opts.Refresh = g.refresh
	return opts
}

// formatFromPath guesses the format from a file extension. Unknown
// extensions and stdout give "" so the default applies.
func formatFromPath(path string) string {
	if path == stdio {
		return ""
	}
	f, err := pipeline.ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return ""
	}
	return f
}

func readInput(input string, stdin io.Reader) ([]byte, error) {
	if input == stdio {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, sterrors.Wrap(sterrors.ErrCodeIO, err, "read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sterrors.Wrap(sterrors.ErrCodeFileNotFound, err, "open %s", input)
		}
		return nil, sterrors.Wrap(sterrors.ErrCodeIO, err, "read %s", input)
	}
	return data, nil
}
