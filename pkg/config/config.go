package config

import (
	"github.com/arthur-debert/renamer/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Config is the effective configuration of one invocation
type Config struct {
	Behavior Behavior `koanf:"behavior" toml:"behavior"`
	Output   Output   `koanf:"output" toml:"output"`
	Log      Log      `koanf:"log" toml:"log"`

	// Source is the user file that was loaded, empty when none was found
	Source string `koanf:"-" toml:"-"`
}

// Behavior holds the defaults for the batch flags
type Behavior struct {
	Global             bool `koanf:"global" toml:"global"`
	Verbose            int  `koanf:"verbose" toml:"verbose"`
	Force              bool `koanf:"force" toml:"force"`
	Interactive        bool `koanf:"interactive" toml:"interactive"`
	IgnoreInvalidFiles bool `koanf:"ignore_invalid_files" toml:"ignore_invalid_files"`
}

// Output selects how events are rendered
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Log controls the diagnostic log file
type Log struct {
	File bool `koanf:"file" toml:"file"`
}

// TOML renders the configuration in the format of the config file
func (c *Config) TOML() (string, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}

// DefaultsContent returns the embedded, commented defaults file
func DefaultsContent() string {
	return string(defaultConfig)
}
