package parser

import (
	"fmt"
	"path/filepath"
	"slices"
)

// ExpandGlobs resolves input arguments that may be glob patterns into a
// sorted, deduplicated list of file paths. An argument matching nothing is
// kept verbatim so the FileSource can report file-not-found with the path the
// user typed.
func ExpandGlobs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			add(arg)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	// Multi-page exports are numbered; sorting keeps record order stable.
	slices.Sort(files)
	return files, nil
}
