// Package params turns the parsed command line of pomsync into a run
// description: discovery mode rooted at a directory, or direct mode with
// explicit manifest paths.
package params

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/indaco/pomsync/internal/core"
)

// Mode selects how the manifests are obtained.
type Mode int

const (
	// ModeDiscovery searches a directory tree for both manifests.
	ModeDiscovery Mode = iota

	// ModeDirect uses manifest paths given on the command line.
	ModeDirect
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDiscovery:
		return "discovery"
	case ModeDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// Params describes a single run.
type Params struct {
	Mode Mode

	// WorkingDir is the search root in discovery mode.
	WorkingDir string

	// SourcePath and TargetPath are set in direct mode.
	SourcePath string
	TargetPath string

	// Index selects the zero-based tag occurrence to replace.
	Index uint8

	// DryRun skips the final write.
	DryRun bool
}

// Input carries the command line after flag parsing.
type Input struct {
	// Path is the --path value; PathSet reports whether the flag was given.
	Path    string
	PathSet bool

	// Index is the --index value; IndexSet reports whether the flag was given.
	Index    uint64
	IndexSet bool

	DryRun bool

	// Args holds the positional arguments left after the flags.
	Args []string
}

// Resolve validates in and picks the mode: no positional arguments select
// discovery mode, exactly three select direct mode. Usage text is written to
// out when the combination makes no sense. getwd supplies the default
// search root.
func Resolve(in Input, out io.Writer, getwd func() (string, error)) (Params, error) {
	switch len(in.Args) {
	case 0:
		return resolveDiscovery(in, out, getwd)
	case 3:
		return resolveDirect(in, out)
	default:
		return Params{}, badParams(out, "expected %s or %s, got %d argument(s)", "[-p <dir>] [-i <index>]", "<source> <target> <index>", len(in.Args))
	}
}

func resolveDiscovery(in Input, out io.Writer, getwd func() (string, error)) (Params, error) {
	p := Params{Mode: ModeDiscovery, DryRun: in.DryRun}

	if in.Index > math.MaxUint8 {
		return Params{}, badParams(out, "occurrence index %d is not a number between 0 and 255", in.Index)
	}
	p.Index = uint8(in.Index)

	if in.PathSet {
		if in.Path == "" {
			return Params{}, badParams(out, "flag --path needs a non-empty directory")
		}
		p.WorkingDir = in.Path
		return p, nil
	}

	wd, err := getwd()
	if err != nil {
		return Params{}, fmt.Errorf("%w: cannot determine current directory: %w", core.ErrIO, err)
	}
	p.WorkingDir = wd
	return p, nil
}

func resolveDirect(in Input, out io.Writer) (Params, error) {
	if in.PathSet || in.IndexSet {
		return Params{}, badParams(out, "--path and --index only apply to discovery mode")
	}
	for _, arg := range in.Args[:2] {
		if arg == "" {
			return Params{}, badParams(out, "empty file path in direct mode")
		}
	}
	idx, err := parseIndex(in.Args[2])
	if err != nil {
		return Params{}, badParams(out, "%v", err)
	}
	return Params{
		Mode:       ModeDirect,
		SourcePath: in.Args[0],
		TargetPath: in.Args[1],
		Index:      idx,
		DryRun:     in.DryRun,
	}, nil
}

// parseIndex accepts an unsigned integer in the 0-255 range.
func parseIndex(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("occurrence index %q is not a number between 0 and 255", s)
	}
	return uint8(n), nil
}

func badParams(out io.Writer, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	PrintUsage(out)
	return fmt.Errorf("%w: %s", core.ErrBadParams, msg)
}
