package output_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/output"
	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/parser"
)

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	wr := output.NewCSVWriter(output.WriteOptions{})

	require.NoError(t, wr.Write(context.Background(), sampleReport(), &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two records")

	assert.Equal(t, parser.Columns, rows[0], "header row must carry the column names verbatim")
	assert.Equal(t, "JOHN DOE", rows[1][4])
	assert.Equal(t, "SC PWD", rows[2][6])
	assert.Equal(t, "", rows[2][8], "missing college code stays empty")
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	wr := output.NewJSONWriter(output.WriteOptions{})

	require.NoError(t, wr.Write(context.Background(), sampleReport(), &buf))

	var decoded struct {
		Records []parser.Record `json:"records"`
		Summary output.Summary  `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Records, 2)
	assert.Equal(t, "1001", decoded.Records[0].CollegeCode)
	assert.Equal(t, 2, decoded.Summary.RowsParsed)
	assert.Equal(t, 5, decoded.Summary.LinesSkipped)
}

func TestJSONWriter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	wr := output.NewJSONWriter(output.WriteOptions{Quiet: true})

	require.NoError(t, wr.Write(context.Background(), sampleReport(), &buf))

	var summary output.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, 2, summary.RowsParsed)
}

func TestNewWriter(t *testing.T) {
	for _, format := range []string{"xlsx", "csv", "json"} {
		wr, err := output.NewWriter(format, output.WriteOptions{})
		require.NoError(t, err, format)
		assert.Equal(t, format, wr.Name())
	}

	_, err := output.NewWriter("parquet", output.WriteOptions{})
	assert.Error(t, err)
}

func TestReport_Empty(t *testing.T) {
	assert.False(t, sampleReport().Empty())

	empty := output.NewReport(&parser.Result{}, nil, time.Now())
	assert.True(t, empty.Empty())
}

func TestDefaultFileName(t *testing.T) {
	name := output.DefaultFileName("xlsx")
	assert.Regexp(t, `^selection_list_\d{8}_\d{6}\.xlsx$`, name)
}
