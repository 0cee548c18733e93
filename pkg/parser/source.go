package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotText reports input that cannot be decoded as UTF-8 text.
var ErrNotText = errors.New("input is not valid UTF-8 text")

// maxInputSize bounds the concatenated input. Selection lists run to a few
// megabytes of text; anything larger is a wrong file.
const maxInputSize = 64 << 20

// Source supplies the raw report text to parse.
type Source interface {
	// Text returns the full report text. Decode failures are fatal to the
	// whole parse and propagate to the caller.
	Text(ctx context.Context) (string, error)

	// Close releases any resources held by the source.
	Close() error
}

// FileSource reads report text from one or more files, concatenated in
// argument order. Multi-page exports split across files parse the same as a
// single concatenated file.
type FileSource struct {
	files []string
}

// NewFileSource creates a Source over the given files.
func NewFileSource(files []string) *FileSource {
	return &FileSource{files: files}
}

// Text reads and concatenates all files.
func (s *FileSource) Text(ctx context.Context) (string, error) {
	var b strings.Builder

	for _, path := range s.files {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		data, err := os.ReadFile(path) // #nosec G304 -- user-provided input paths are expected
		if err != nil {
			return "", fmt.Errorf("reading report %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s: %w", path, ErrNotText)
		}
		if b.Len()+len(data) > maxInputSize {
			return "", fmt.Errorf("input exceeds %d bytes at %s", maxInputSize, path)
		}

		b.Write(data)
		if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
			b.WriteByte('\n')
		}
	}

	return b.String(), nil
}

// Close implements Source. FileSource holds no open handles between calls.
func (s *FileSource) Close() error { return nil }
