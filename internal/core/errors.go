package core

import "errors"

// Error kinds reported by pomsync. Callers wrap them with the paths or
// tokens involved and match them with errors.Is.
var (
	// ErrFileNotFound is returned when neither manifest could be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrTargetNotFound is returned when only the target manifest is missing.
	ErrTargetNotFound = errors.New("target not found")

	// ErrSourceNotFound is returned when only the source manifest is missing.
	ErrSourceNotFound = errors.New("source not found")

	// ErrIO covers open, read and write failures.
	ErrIO = errors.New("I/O error")

	// ErrBadParams is returned for arguments that cannot be understood.
	ErrBadParams = errors.New("parameters passed not understood")

	// ErrVersionNotFound is returned when the search token or the requested
	// tag occurrence is absent.
	ErrVersionNotFound = errors.New("version not found")

	// ErrMalformedLine is returned when a matching line lacks the delimiters
	// the fixed-offset extraction relies on.
	ErrMalformedLine = errors.New("malformed line")

	// ErrHelpRequested short-circuits the run after usage text was printed.
	// It is not a malfunction.
	ErrHelpRequested = errors.New("help requested")
)

// Exit codes returned by the pomsync binary.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps an error returned by a run to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrHelpRequested), errors.Is(err, ErrBadParams):
		return ExitUsage
	default:
		return ExitError
	}
}
