package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONWriter writes the full report as indented JSON.
type JSONWriter struct {
	opts WriteOptions
}

// NewJSONWriter creates a new JSON writer with the given options.
func NewJSONWriter(opts WriteOptions) *JSONWriter {
	return &JSONWriter{opts: opts}
}

// Name returns the format name.
func (wr *JSONWriter) Name() string {
	return "json"
}

// Write renders the report as JSON.
func (wr *JSONWriter) Write(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if wr.opts.Quiet {
		// Quiet mode: just the summary
		return encoder.Encode(report.Summary)
	}

	return encoder.Encode(report)
}
