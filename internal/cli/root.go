// Package cli provides the command-line interface for neetx.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neetx",
		Short: "Extract NEET-UG selection list records from text exports",
		Long: `neetx converts the plain-text export of a NEET-UG selection list PDF
into a tabular file (xlsx, csv, or json).

The PDF must first be converted to text by an external tool; neetx then
recovers the selection table from the fixed page layout:

  - classifies each line as table data, table boundary, or page noise
  - decodes each data row positionally into ten named columns
  - writes the ordered records under a verbatim header row

Exit codes:
  0 - records extracted
  1 - no records recognized in the input
  2 - configuration or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewExtractCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
