// Package semver recognizes semantic versions so pomsync can warn about
// suspicious values. Nothing is rejected: the copied text is whatever the
// source manifest holds.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SemVersion represents a semantic version (major.minor.patch-preRelease+build).
type SemVersion struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string
}

// maxVersionLength bounds the input handed to the regex.
const maxVersionLength = 128

var (
	// versionRegex captures major, minor, patch, then the optional
	// pre-release and build metadata. A leading "v" is tolerated.
	versionRegex = regexp.MustCompile(
		`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
			`(?:-([0-9A-Za-z\-\.]+))?` +
			`(?:\+([0-9A-Za-z\-\.]+))?$`,
	)

	// ErrInvalidVersion is returned for text that is not a semantic version.
	ErrInvalidVersion = errors.New("invalid version format")
)

// String returns the canonical form without the "v" prefix.
func (v SemVersion) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// Parse parses s, which must not carry surrounding whitespace.
func Parse(s string) (SemVersion, error) {
	if len(s) > maxVersionLength {
		return SemVersion{}, fmt.Errorf("%w: longer than %d characters", ErrInvalidVersion, maxVersionLength)
	}

	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return SemVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var parts [3]int
	for i := range parts {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVersion{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, s, err)
		}
		parts[i] = n
	}
	return SemVersion{Major: parts[0], Minor: parts[1], Patch: parts[2], PreRelease: m[4], Build: m[5]}, nil
}

// IsValid reports whether s parses as a semantic version.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Compare returns -1, 0 or +1 as v sorts before, equal to or after other.
// Build metadata is ignored and a pre-release sorts before its release.
func (v SemVersion) Compare(other SemVersion) int {
	for _, c := range []int{
		compareInt(v.Major, other.Major),
		compareInt(v.Minor, other.Minor),
		compareInt(v.Patch, other.Patch),
	} {
		if c != 0 {
			return c
		}
	}

	switch {
	case v.PreRelease == other.PreRelease:
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	}

	a := strings.Split(v.PreRelease, ".")
	b := strings.Split(other.PreRelease, ".")
	for i := range min(len(a), len(b)) {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareIdentifier orders numeric identifiers numerically and below
// alphanumeric ones, which compare in ASCII order.
func compareIdentifier(a, b string) int {
	an, aNum := numericIdentifier(a)
	bn, bNum := numericIdentifier(b)
	switch {
	case aNum && bNum:
		return compareInt(an, bn)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func numericIdentifier(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strings.ContainsAny(s, "+-") {
		return 0, false
	}
	return n, true
}
