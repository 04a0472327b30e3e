package parser

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ScanAndParse walks dir and parses every .jsonl (one record per line) and
// .json (ledger document) file. Unreadable or corrupt files count as one
// error each. Files are visited in lexical order.
func ScanAndParse(ctx context.Context, dir string) ParseResult {
	var paths []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".jsonl", ".json":
			paths = append(paths, path)
		}
		return nil
	})
	sort.Strings(paths)

	var all ParseResult
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		all.Merge(ParseFile(path))
	}
	return all
}

// ParseFile parses a single import file by extension.
func ParseFile(path string) ParseResult {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{ErrorCount: 1}
	}
	defer f.Close()

	if filepath.Ext(path) == ".jsonl" {
		return ParseLines(f)
	}
	records, err := ParseDocument(f)
	if err != nil {
		return ParseResult{ErrorCount: 1}
	}
	return ParseResult{Records: records}
}
