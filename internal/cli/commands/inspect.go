package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/parser"
	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/trace"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output string
	Limit  int
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <text-file>...",
		Short: "Show how each input line would be classified",
		Long: `Run the extraction over a text export and report the per-line decisions
without writing an output file.

Useful when an export yields fewer rows than expected: the decisions show
where the table was detected, which lines were discarded and why, and which
rows were rejected for missing mandatory columns.

Example:
  neetx inspect selection_list.txt
  neetx inspect --limit 200 -o json selection_list.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Show at most this many line decisions (0 = all)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding inputs: %w", err)
	}

	source := parser.NewFileSource(files)
	defer source.Close()

	text, err := source.Text(ctx)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	recorder := trace.NewRecorder()
	result := parser.New(parser.WithTrace(recorder)).Parse(text)

	decisions := recorder.Lines
	if opts.Limit > 0 && len(decisions) > opts.Limit {
		decisions = decisions[:opts.Limit]
	}

	summary := trace.Summary{RowsParsed: result.RowsParsed, LinesSkipped: result.LinesSkipped}

	switch opts.Output {
	case "text":
		for _, d := range decisions {
			fmt.Printf("%5d  %-11s  %-28s  %s\n", d.Line, d.Action, d.Reason, truncate(d.Raw, 60))
		}
		fmt.Printf("\n%d rows parsed, %d lines skipped\n", summary.RowsParsed, summary.LinesSkipped)
		return nil

	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Lines   []trace.LineEvent `json:"lines"`
			Summary trace.Summary     `json:"summary"`
		}{decisions, summary})

	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
