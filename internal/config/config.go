// Package config turns the process invocation into the values minigrep runs
// with: the Config built from the positional tokens, and the Settings loaded
// from the optional yaml settings file.
package config

import (
	"minigrep/internal/errors"
)

// MinTokens is the smallest token sequence Build accepts: the program name,
// the query and the file path.
const MinTokens = 3

// Config is the validated pair of query and file path taken from the
// invocation tokens. The fields are unexported so a Config cannot change
// after Build returns it.
type Config struct {
	query    string
	filePath string
}

// Build validates the token sequence and returns a Config. Token 0 is the
// program name and is ignored; token 1 becomes the query and token 2 the
// file path, both copied verbatim. Anything after token 2 is ignored.
//
// A sequence shorter than MinTokens yields a nil Config and an
// *errors.ArgumentError of kind InsufficientArguments.
func Build(args []string) (*Config, error) {
	if len(args) < MinTokens {
		return nil, errors.NewArgumentError(len(args), MinTokens)
	}

	return &Config{
		query:    args[1],
		filePath: args[2],
	}, nil
}

// Query returns the query token.
func (c *Config) Query() string {
	return c.query
}

// FilePath returns the file path token.
func (c *Config) FilePath() string {
	return c.filePath
}

// Equal reports whether both configs carry the same query and file path.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.query == other.query && c.filePath == other.filePath
}
