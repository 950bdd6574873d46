// Package config loads the vitalog server configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources with built-in defaults and validating the result before the
// application starts.
package config
