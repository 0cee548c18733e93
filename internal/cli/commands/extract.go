package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/config"
	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/output"
	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/parser"
	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/trace"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ExtractOptions holds command-line options for the extract command.
type ExtractOptions struct {
	Config  string
	Output  string
	Format  string
	Sheet   string
	LogFile string
	Verbose bool
	Quiet   bool
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <text-file>...",
		Short: "Extract selection list records to a tabular file",
		Long: `Extract selection table records from one or more text exports and write
them to a tabular output file.

Input files are concatenated in sorted order, so a multi-page export split
across files parses the same as a single file. Rows missing any of the four
leading numeric columns (Sr No, AIR, NEET Roll No., CET Form No.) are dropped
whole and reported in the diagnostic trace.

Exit codes:
  0 - records extracted
  1 - no records recognized in the input
  2 - configuration or runtime error

Example:
  neetx extract selection_list.txt
  neetx extract -f csv -o round1.csv page_*.txt
  neetx extract --log-file parse_selection_list.log -v selection_list.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default: timestamped name)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (xlsx|csv|json)")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "Worksheet name for xlsx output")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Also write the diagnostic trace to this file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Trace every line decision and field value")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress the diagnostic trace")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts *ExtractOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyExtractFlags(cfg, opts)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding inputs: %w", err)
	}

	// Build the diagnostic trace sink
	var sink trace.Sink = trace.Nop()
	if !opts.Quiet {
		logger, closeLog, err := newTraceLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()
		sink = trace.NewLogger(logger)
	}

	// Read the input text
	source := parser.NewFileSource(files)
	defer source.Close()

	text, err := source.Text(ctx)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// Parse
	started := time.Now()
	result := parser.New(parser.WithTrace(sink)).Parse(text)
	report := output.NewReport(result, files, started)

	// Persist
	outPath := cfg.Output.Path
	if outPath == "" {
		outPath = output.DefaultFileName(cfg.Output.Format)
	}

	writer, err := output.NewWriter(cfg.Output.Format, output.WriteOptions{SheetName: cfg.Output.Sheet})
	if err != nil {
		return err
	}

	f, err := os.Create(outPath) // #nosec G304 -- user-chosen output path is expected
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := writer.Write(ctx, report, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s output: %w", writer.Name(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	fmt.Printf("Extracted %d records to %s (%d lines skipped)\n",
		report.Summary.RowsParsed, outPath, report.Summary.LinesSkipped)

	if report.Empty() {
		fmt.Fprintln(os.Stderr, "Warning: no selection table rows recognized in the input")
		ExitCode = 1
	}

	return nil
}

// loadConfig loads the named config file, or defaults when none is given.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(ctx, path)
}

// applyExtractFlags lets command-line flags override config file values.
func applyExtractFlags(cfg *config.Config, opts *ExtractOptions) {
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if opts.Output != "" {
		cfg.Output.Path = opts.Output
	}
	if opts.Sheet != "" {
		cfg.Output.Sheet = opts.Sheet
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
}

// newTraceLogger builds the zerolog logger for the diagnostic trace, teeing
// to a log file when one is configured.
func newTraceLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	closeLog := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G304
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
		}
		w = zerolog.MultiLevelWriter(w, f)
		closeLog = func() { _ = f.Close() }
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, closeLog, nil
}
