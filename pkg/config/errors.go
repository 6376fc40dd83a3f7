package config

import "errors"

var (
	// ErrParsingEnv is returned when environment variables cannot be parsed
	// into the Security struct.
	ErrParsingEnv = errors.New("failed to parse environment configuration")

	// ErrPatternFile is returned when the pattern file cannot be read or is
	// not valid YAML.
	ErrPatternFile = errors.New("failed to load pattern file")

	// ErrInvalidPattern is returned when a configured pattern is not a valid
	// regular expression.
	ErrInvalidPattern = errors.New("invalid whitelist pattern")
)
