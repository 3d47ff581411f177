package manifest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/indaco/pomsync/internal/config"
	"github.com/indaco/pomsync/internal/core"
)

// Extractor pulls a quoted value following Token out of the first line that
// contains it.
type Extractor struct {
	// Token is the search token, e.g. `"version"` or `version`.
	Token string

	// Skip is the number of characters between the end of Token and the
	// value: 3 for `"version"` (`: "`), 4 for bare `version` (`": "`).
	Skip int
}

// NewExtractor returns an Extractor using cfg's search token and skip.
func NewExtractor(cfg *config.Config) Extractor {
	return Extractor{Token: cfg.SearchToken, Skip: cfg.Skip}
}

// Extract scans r line by line. On the first line containing Token, the
// value starts Skip characters after the token and ends one character
// before the next comma.
func (e Extractor) Extract(r io.Reader) (string, error) {
	if e.Token == "" || e.Skip < 0 {
		return "", fmt.Errorf("%w: invalid search token %q with skip %d", core.ErrBadParams, e.Token, e.Skip)
	}

	sc := newLineScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		idx := strings.Index(line, e.Token)
		if idx < 0 {
			continue
		}

		start := idx + len(e.Token) + e.Skip
		if start > len(line) {
			return "", fmt.Errorf("%w: line %d: value offset %d is past the end of %q", core.ErrMalformedLine, lineNo, start, line)
		}
		comma := strings.IndexByte(line[start:], ',')
		if comma < 0 {
			return "", fmt.Errorf("%w: line %d: no ',' after %s in %q", core.ErrMalformedLine, lineNo, e.Token, line)
		}
		end := start + comma - 1
		if end < start {
			return "", fmt.Errorf("%w: line %d: unterminated value in %q", core.ErrMalformedLine, lineNo, line)
		}
		return line[start:end], nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrIO, err)
	}

	return "", fmt.Errorf("%w: no line contains %s", core.ErrVersionNotFound, e.Token)
}

// ExtractFile reads path in full and runs Extract over its content.
func (e Extractor) ExtractFile(ctx context.Context, fs core.FileSystem, path string) (string, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read file %q: %w", core.ErrIO, path, err)
	}

	version, err := e.Extract(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("in file %q: %w", path, err)
	}
	return version, nil
}
