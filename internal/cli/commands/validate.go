package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a neetx configuration file without running an extraction.

Checks:
  - YAML syntax
  - Output format (xlsx, csv, json)
  - Log level (debug, info, warn, error)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Output format: %s\n", cfg.Output.Format)
	if cfg.Output.Path != "" {
		fmt.Printf("  Output path:   %s\n", cfg.Output.Path)
	} else {
		fmt.Printf("  Output path:   (timestamped default)\n")
	}
	if cfg.Output.Format == "xlsx" {
		fmt.Printf("  Worksheet:     %s\n", cfg.Output.Sheet)
	}
	fmt.Printf("  Log level:     %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Printf("  Log file:      %s\n", cfg.Log.File)
	}

	return nil
}
