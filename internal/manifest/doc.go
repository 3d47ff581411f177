// Package manifest reads a version out of a package.json-style file and
// writes it into a <version> tag of a Pom.xml-style file.
//
// Both operations are line based. A field is located by a search token and
// sliced at fixed offsets, not parsed, so manifests that are not strictly
// well-formed JSON or XML are still handled. Offsets that do not fit the
// line are reported as ErrMalformedLine instead of panicking.
package manifest
