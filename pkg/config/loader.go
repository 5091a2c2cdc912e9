package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "RENAMER_"
	// EnvConfigPath names the user file when --config is not given
	EnvConfigPath = EnvPrefix + "CONFIG"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// searchPaths are tried, in order, under the XDG config directories
var searchPaths = []string{
	"renamer/config.toml",
	"renamer/config.yaml",
	"renamer/config.yml",
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load builds the configuration. An explicit path must exist; without one
// $RENAMER_CONFIG and then the XDG config directories are searched.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	source, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := loadFile(k, source); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", source).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = source
	return cfg, nil
}

// LoadOverrides merges flat key/value overrides ("behavior.force") on top
// of a loaded configuration
func LoadOverrides(base *Config, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(toMap(base), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load base config")
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = base.Source
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %q not found", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	for _, rel := range searchPaths {
		if found, err := xdg.SearchConfigFile(rel); err == nil {
			return found, nil
		}
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, path string) error {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %q", path).
			WithDetail("path", path)
	}

	parser := koanf.Parser(toml.Parser())
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %q", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps RENAMER_BEHAVIOR_IGNORE_INVALID_FILES to
// behavior.ignore_invalid_files. Variables without a section are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, ok := strings.Cut(key, "_")
	if !ok || name == "" {
		return ""
	}
	return section + "." + name
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func toMap(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"behavior.global":               cfg.Behavior.Global,
		"behavior.verbose":              cfg.Behavior.Verbose,
		"behavior.force":                cfg.Behavior.Force,
		"behavior.interactive":          cfg.Behavior.Interactive,
		"behavior.ignore_invalid_files": cfg.Behavior.IgnoreInvalidFiles,
		"output.format":                 cfg.Output.Format,
		"log.file":                      cfg.Log.File,
	}
}
