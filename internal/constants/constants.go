// Package constants defines shared string constants used across multiple
// internal packages to avoid raw-string duplication and circular imports.
package constants

const (
	// AppName is the binary name.
	AppName = "ghtask"

	// ConfigFileName is the name of the project config file.
	ConfigFileName = ".ghtask.yaml"

	// DefaultTokenEnv is the environment variable read when the config
	// file does not hold a token.
	DefaultTokenEnv = "GITHUB_TOKEN"
)
