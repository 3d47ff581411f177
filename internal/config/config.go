// Package config holds the fixed names and tokens pomsync works with.
// There is no configuration file: every value here is a default.
package config

// Config describes what to look for and how to slice it.
type Config struct {
	// SourceName is matched as a substring of file names during discovery.
	SourceName string

	// TargetName is matched as a substring of file names during discovery.
	TargetName string

	// SearchToken marks the source line holding the version.
	SearchToken string

	// Skip is the number of characters between the end of SearchToken and
	// the first character of the value (the `: "` run after the quoted token).
	Skip int

	// TagToken marks the target lines whose inner text may be replaced.
	TagToken string
}

// Default manifest names and tokens.
const (
	DefaultSourceName  = "package.json"
	DefaultTargetName  = "Pom.xml"
	DefaultSearchToken = `"version"`
	DefaultSkip        = 3
	DefaultTagToken    = "<version>"
)

// Default returns the configuration used by the pomsync binary.
func Default() *Config {
	return &Config{
		SourceName:  DefaultSourceName,
		TargetName:  DefaultTargetName,
		SearchToken: DefaultSearchToken,
		Skip:        DefaultSkip,
		TagToken:    DefaultTagToken,
	}
}
