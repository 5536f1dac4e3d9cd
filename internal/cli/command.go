package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/LuxMerlin/file-scanner/internal/integration"
	"github.com/LuxMerlin/file-scanner/internal/treescan"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// allowedOutputs lists the accepted values of --output.
//
//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"text", "json"}

// registerFlags binds the scan flags to options.
func registerFlags(flags *pflag.FlagSet, options *treescan.Options) {
	flags.StringVarP(&options.Path, "path", "p", "", "Root directory to scan")
	flags.BoolVarP(&options.ShowOutput, "show-output", "s", false, "Print the tree after the counts")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "Append each entry's full path when printing the tree")
	flags.StringVarP(&options.Output, "output", "o", "text", "Output format: text or json")
	flags.BoolVar(&options.Totals, "total", false, "Also report full-depth totals")
	flags.BoolVarP(&options.Follow, "follow", "L", false, "Classify symlinks by their target")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	flags.SortFlags = false
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options treescan.Options

	cmd := &cobra.Command{
		Use:   "file-scanner --path <PATH> [flags]",
		Short: "Count and print the contents of a directory tree",
		Long: heredoc.Doc(`
			file-scanner lists a directory recursively, reports how many files and
			folders sit directly below it and optionally prints the full tree.

			Counts cover the top level only. Use --total for counts across the whole tree.
			Tree siblings are printed in reverse listing order.
		`),
		Example: heredoc.Doc(`
			file-scanner --path ./src
			file-scanner --path ./src -s -v
			file-scanner --path ./src --output json --total
		`),
		Version:       c.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			return logic(cmd.Context(), options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	registerFlags(cmd.Flags(), &options)

	if err := cmd.MarkFlagRequired("path"); err != nil {
		panic(err)
	}

	cmd.AddCommand(initCommand())

	return cmd
}

// initCommand outputs the shell integration script.
func initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Output init script for shell usage",
		Long: heredoc.Doc(`
			Prints a zsh function that pipes the verbose tree into 'fzf'
			and changes into the selected directory.

			Add to ~/.zshrc:

				eval "$(file-scanner init)"
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := integration.Render()
			if err != nil {
				return fmt.Errorf("rendering integration script: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)

			return err
		},
	}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
