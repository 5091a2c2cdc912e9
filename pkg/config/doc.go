// Package config handles configuration management for renamer.
// It layers the embedded defaults, an optional user file (TOML or YAML)
// and RENAMER_ environment variables, in that order.
package config
