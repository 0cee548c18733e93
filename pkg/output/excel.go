package output

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/parser"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "Selection List"

// ExcelWriter writes the report as an .xlsx workbook: a header row with the
// ten column names verbatim, then one row per record.
type ExcelWriter struct {
	opts WriteOptions
}

// NewExcelWriter creates a new xlsx writer with the given options.
func NewExcelWriter(opts WriteOptions) *ExcelWriter {
	if opts.SheetName == "" {
		opts.SheetName = DefaultSheetName
	}
	return &ExcelWriter{opts: opts}
}

// Name returns the format name.
func (wr *ExcelWriter) Name() string {
	return "xlsx"
}

// Write renders the report as a workbook.
func (wr *ExcelWriter) Write(ctx context.Context, report *Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := wr.opts.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet %q: %w", sheet, err)
	}

	header := make([]interface{}, len(parser.Columns))
	for i, name := range parser.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i := range report.Records {
		values := report.Records[i].Values()
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
