package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirtree/internal/dirstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the provided arguments, excluding the program name.
func (c CLI) Execute(args []string) error {
	cmd := c.command()
	cmd.SetArgs(append([]string{}, args...))

	return cmd.Execute()
}

// command builds the root command.
func (c CLI) command() *cobra.Command {
	var options dirstat.Options

	cmd := &cobra.Command{
		Use:   "dirtree [flags] [path]",
		Short: "Show directory sizes, file counts and file types as a tree",
		Long: heredoc.Doc(`
			dirtree analyzes folder sizes recursively.

			Every directory is printed with its total size, the number of files
			below it and a breakdown of those files by extension, e.g.:

			  project/ [1.46 KB, 3 files (.go:2, no_ext:1)]
			  └── cmd/ [1.00 KB, 1 files (.go:1)]

			Positional Arguments:
			  path    Starting path for analysis. Defaults to the current directory.

			Directories that cannot be read are left out of the totals.
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Path = "."
			if len(args) > 0 {
				options.Path = args[0]
			}

			options.Limited = cmd.Flags().Changed("max-depth")
			if options.Limited && options.MaxDepth < 0 {
				return errors.New("max-depth cannot be negative")
			}

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.IntVarP(&options.MaxDepth, "max-depth", "d", 0, "Maximum depth level to analyze (default: unlimited)")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolP("version", "v", false, "Show version and exit")
	flags.SortFlags = false

	return cmd
}
