package output

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// CSVWriter writes the report's records as comma-separated values with a
// header row, driven by the csv struct tags on parser.Record.
type CSVWriter struct {
	opts WriteOptions
}

// NewCSVWriter creates a new csv writer with the given options.
func NewCSVWriter(opts WriteOptions) *CSVWriter {
	return &CSVWriter{opts: opts}
}

// Name returns the format name.
func (wr *CSVWriter) Name() string {
	return "csv"
}

// Write renders the records as csv.
func (wr *CSVWriter) Write(ctx context.Context, report *Report, w io.Writer) error {
	if err := gocsv.Marshal(&report.Records, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
