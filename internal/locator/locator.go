// Package locator finds the source and target manifests by walking a
// directory tree and matching file names by substring.
package locator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/pomsync/internal/core"
	"github.com/indaco/pomsync/internal/printer"
)

// Paths holds the located manifests.
type Paths struct {
	Source string
	Target string
}

// Service provides manifest lookup over a FileSystem.
type Service struct {
	fs core.FileSystem
}

// NewService creates a new locator Service.
func NewService(fs core.FileSystem) *Service {
	return &Service{fs: fs}
}

// SearchFile walks root depth-first and returns the first non-directory
// entry whose name contains name. Entries are visited in the order the
// filesystem lists them. Unreadable subdirectories are skipped.
func (s *Service) SearchFile(ctx context.Context, name, root string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty file name", core.ErrBadParams)
	}

	info, err := s.fs.Stat(ctx, root)
	if err != nil {
		return "", fmt.Errorf("%w: %q under %q: %w", core.ErrFileNotFound, name, root, err)
	}

	// The root itself is the first visited entry.
	if !info.IsDir() {
		if strings.Contains(filepath.Base(root), name) {
			return root, nil
		}
		return "", fmt.Errorf("%w: %q under %q", core.ErrFileNotFound, name, root)
	}

	path, found, err := s.walk(ctx, root, name, true)
	if err != nil {
		return "", fmt.Errorf("%w: %q under %q: %w", core.ErrFileNotFound, name, root, err)
	}
	if !found {
		return "", fmt.Errorf("%w: %q under %q", core.ErrFileNotFound, name, root)
	}
	return path, nil
}

// walk visits dir recursively. Only a failure to list the root is returned
// as an error.
func (s *Service) walk(ctx context.Context, dir, name string, isRoot bool) (string, bool, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		if isRoot || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", false, err
		}
		// Skip directories we can't read
		return "", false, nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			found, ok, err := s.walk(ctx, path, name, false)
			if err != nil || ok {
				return found, ok, err
			}
			continue
		}
		if strings.Contains(entry.Name(), name) {
			return path, true, nil
		}
	}
	return "", false, nil
}

// Locate searches root once for each name and classifies the outcome. Every
// failure reports the root and both lookup diagnostics to the operator.
func (s *Service) Locate(ctx context.Context, sourceName, targetName, root string) (Paths, error) {
	source, sourceErr := s.SearchFile(ctx, sourceName, root)
	target, targetErr := s.SearchFile(ctx, targetName, root)

	for _, err := range []error{sourceErr, targetErr} {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Paths{}, err
		}
	}

	switch {
	case sourceErr == nil && targetErr == nil:
		fmt.Printf("%s File %q found at %s\n", printer.SuccessBadge("✓"), sourceName, source)
		fmt.Printf("%s File %q found at %s\n", printer.SuccessBadge("✓"), targetName, target)
		return Paths{Source: source, Target: target}, nil

	case sourceErr != nil && targetErr != nil:
		printer.PrintError(fmt.Sprintf("Not able to find either file: %q, %q", sourceName, targetName))
		reportDiagnostics(root, sourceErr, targetErr)
		return Paths{}, fmt.Errorf("%w: neither %q nor %q under %q", core.ErrFileNotFound, sourceName, targetName, root)

	case targetErr != nil:
		printer.PrintError(fmt.Sprintf("Target file not found: %q", targetName))
		reportDiagnostics(root, sourceErr, targetErr)
		return Paths{}, fmt.Errorf("%w: %q under %q", core.ErrTargetNotFound, targetName, root)

	default:
		printer.PrintError(fmt.Sprintf("Source file not found: %q", sourceName))
		reportDiagnostics(root, sourceErr, targetErr)
		return Paths{}, fmt.Errorf("%w: %q under %q", core.ErrSourceNotFound, sourceName, root)
	}
}

func reportDiagnostics(root string, sourceErr, targetErr error) {
	printer.PrintFaint(fmt.Sprintf("  source: %s", diagnostic(sourceErr)))
	printer.PrintFaint(fmt.Sprintf("  target: %s", diagnostic(targetErr)))
	printer.PrintFaint(fmt.Sprintf("  path searched: %s", root))
}

func diagnostic(err error) string {
	if err == nil {
		return "found"
	}
	return err.Error()
}
