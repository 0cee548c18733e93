package output

import (
	"context"
	"fmt"
	"io"
)

// Writer persists a report in a specific tabular format.
type Writer interface {
	// Write serializes the report to w. A failure leaves the in-memory
	// report untouched; the caller may retry against a different sink.
	Write(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (xlsx, csv, json).
	Name() string
}

// WriteOptions controls writer behavior.
type WriteOptions struct {
	// SheetName names the worksheet for spreadsheet formats.
	SheetName string

	// Quiet limits structured formats to the summary only.
	Quiet bool
}

// NewWriter returns the Writer for the given format name.
func NewWriter(format string, opts WriteOptions) (Writer, error) {
	switch format {
	case "xlsx":
		return NewExcelWriter(opts), nil
	case "csv":
		return NewCSVWriter(opts), nil
	case "json":
		return NewJSONWriter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use xlsx, csv, or json)", format)
	}
}
