// Package output persists parsed selection-list records to tabular files.
package output

import (
	"fmt"
	"time"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/parser"
)

// Report is the complete extraction output handed to a Writer.
type Report struct {
	// Records holds the parsed rows in input order.
	Records []parser.Record `json:"records"`

	// Summary provides the pass totals.
	Summary Summary `json:"summary"`

	// Metadata provides context about the extraction run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides the pass totals.
type Summary struct {
	// RowsParsed is the number of records extracted.
	RowsParsed int `json:"rows_parsed"`

	// LinesSkipped is the number of input lines discarded as noise.
	LinesSkipped int `json:"lines_skipped"`
}

// Metadata provides context about the extraction run.
type Metadata struct {
	// Sources lists the input files that were parsed.
	Sources []string `json:"sources"`

	// ExtractedAt is when the extraction finished.
	ExtractedAt time.Time `json:"extracted_at"`

	// Duration is how long the parse took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from a parse result.
func NewReport(result *parser.Result, sources []string, started time.Time) *Report {
	return &Report{
		Records: result.Records,
		Summary: Summary{
			RowsParsed:   result.RowsParsed,
			LinesSkipped: result.LinesSkipped,
		},
		Metadata: Metadata{
			Sources:     sources,
			ExtractedAt: time.Now(),
			Duration:    time.Since(started),
		},
	}
}

// Empty reports whether no records were extracted. An empty report is a
// valid outcome (wrong input entirely), surfaced by the CLI as a warning.
func (r *Report) Empty() bool {
	return len(r.Records) == 0
}

// DefaultFileName returns a timestamped output name for the given format,
// e.g. "selection_list_20250131_104500.xlsx".
func DefaultFileName(format string) string {
	return fmt.Sprintf("selection_list_%s.%s", time.Now().Format("20060102_150405"), format)
}
