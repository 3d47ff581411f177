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

// closeMarker ends the inner text of a tag.
const closeMarker = "</"

// Replacer swaps the inner text of the Nth line holding Tag.
type Replacer struct {
	// Tag is the opening tag token, e.g. "<version>".
	Tag string
}

// NewReplacer returns a Replacer using cfg's tag token.
func NewReplacer(cfg *config.Config) Replacer {
	return Replacer{Tag: cfg.TagToken}
}

// Result is the outcome of a replacement.
type Result struct {
	// Text is the full rewritten content, every line ending in "\n".
	Text string

	// LineNumber is the 1-based line that was changed.
	LineNumber int

	// Before and After are the changed line without its terminator.
	Before string
	After  string

	// Previous is the inner text that was replaced.
	Previous string

	// Occurrences is the number of lines holding the tag.
	Occurrences int
}

// Changed reports whether the replacement altered the line.
func (r Result) Changed() bool {
	return r.Before != r.After
}

// Replace counts lines containing Tag from zero. On the line whose count
// equals index, the text between the tag and the next "</" becomes version.
// When no line reaches index, ErrVersionNotFound is returned and Text is
// empty.
func (rp Replacer) Replace(r io.Reader, version string, index int) (Result, error) {
	if rp.Tag == "" || index < 0 {
		return Result{}, fmt.Errorf("%w: invalid tag %q with index %d", core.ErrBadParams, rp.Tag, index)
	}

	var (
		buf     strings.Builder
		res     Result
		count   int
		lineNo  int
		matched bool
	)

	sc := newLineScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if idx := strings.Index(line, rp.Tag); idx >= 0 {
			if count == index {
				start := idx + len(rp.Tag)
				end := strings.Index(line[start:], closeMarker)
				if end < 0 {
					return Result{}, fmt.Errorf("%w: line %d: no %q after %s in %q", core.ErrMalformedLine, lineNo, closeMarker, rp.Tag, line)
				}
				updated := line[:start] + version + line[start+end:]
				res.LineNumber = lineNo
				res.Previous = line[start : start+end]
				res.Before = line
				res.After = updated
				line = updated
				matched = true
			}
			count++
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", core.ErrIO, err)
	}

	if !matched {
		return Result{}, fmt.Errorf("%w: occurrence %d of %s requested, %d present", core.ErrVersionNotFound, index, rp.Tag, count)
	}

	res.Text = buf.String()
	res.Occurrences = count
	return res, nil
}

// ReplaceFile reads path in full and runs Replace over its content. The
// file is not modified.
func (rp Replacer) ReplaceFile(ctx context.Context, fs core.FileSystem, path, version string, index int) (Result, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to read file %q: %w", core.ErrIO, path, err)
	}

	res, err := rp.Replace(bytes.NewReader(data), version, index)
	if err != nil {
		return Result{}, fmt.Errorf("in file %q: %w", path, err)
	}
	return res, nil
}
