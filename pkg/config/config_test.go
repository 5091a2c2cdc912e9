package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config dirs at an empty temp dir and clears
// the config path override
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "system"))
	t.Setenv(EnvConfigPath, "")
	xdg.Reload()
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Behavior{}, cfg.Behavior)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.True(t, cfg.Log.File)
	assert.Empty(t, cfg.Source)
}

func TestLoad_ExplicitTOML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[behavior]
global = true
verbose = 2

[output]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Behavior.Global)
	assert.Equal(t, 2, cfg.Behavior.Verbose)
	assert.False(t, cfg.Behavior.Force)
	assert.Equal(t, "json", cfg.Output.Format)
	// Keys missing from the file keep their defaults
	assert.True(t, cfg.Log.File)
	assert.Equal(t, path, cfg.Source)
}

func TestLoad_ExplicitYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
behavior:
  force: true
  ignore_invalid_files: true
log:
  file: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Behavior.Force)
	assert.True(t, cfg.Behavior.IgnoreInvalidFiles)
	assert.False(t, cfg.Log.File)
}

func TestLoad_EnvConfigPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "from-env.toml")
	writeFile(t, path, "[behavior]\ninteractive = true\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Behavior.Interactive)
	assert.Equal(t, path, cfg.Source)
}

func TestLoad_XDGSearch(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "renamer", "config.toml"), "[behavior]\nglobal = true\n")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.Behavior.Global)
		assert.Equal(t, filepath.Join(dir, "renamer", "config.toml"), cfg.Source)
	})

	t.Run("yaml", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "renamer", "config.yaml"), "output:\n  format: text\n")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Output.Format)
	})

	t.Run("toml_wins_over_yaml", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "renamer", "config.toml"), "[output]\nformat = \"json\"\n")
		writeFile(t, filepath.Join(dir, "renamer", "config.yaml"), "output:\n  format: text\n")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
	})
}

func TestLoad_Environment(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "[behavior]\nglobal = false\n")

	t.Setenv("RENAMER_BEHAVIOR_GLOBAL", "true")
	t.Setenv("RENAMER_BEHAVIOR_IGNORE_INVALID_FILES", "1")
	t.Setenv("RENAMER_BEHAVIOR_VERBOSE", "3")
	t.Setenv("RENAMER_OUTPUT_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Behavior.Global, "environment overrides the file")
	assert.True(t, cfg.Behavior.IgnoreInvalidFiles)
	assert.Equal(t, 3, cfg.Behavior.Verbose)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing_explicit_file", func(t *testing.T) {
		dir := isolate(t)
		_, err := Load(filepath.Join(dir, "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_toml", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "bad.toml")
		writeFile(t, path, "[behavior\nglobal = ")

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	})

	t.Run("wrong_type", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "bad.toml")
		writeFile(t, path, "[behavior]\nverbose = \"loud\"\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestLoadOverrides(t *testing.T) {
	isolate(t)
	base, err := Load("")
	require.NoError(t, err)
	base.Source = "/etc/renamer.toml"

	cfg, err := LoadOverrides(base, map[string]interface{}{
		"behavior.force":   true,
		"behavior.verbose": 1,
		"output.format":    "text",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Behavior.Force)
	assert.Equal(t, 1, cfg.Behavior.Verbose)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Log.File)
	assert.Equal(t, "/etc/renamer.toml", cfg.Source)

	// base is untouched
	assert.False(t, base.Behavior.Force)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"RENAMER_BEHAVIOR_GLOBAL", "behavior.global"},
		{"RENAMER_BEHAVIOR_IGNORE_INVALID_FILES", "behavior.ignore_invalid_files"},
		{"RENAMER_LOG_FILE", "log.file"},
		{"RENAMER_CONFIG", ""},
		{"RENAMER_OUTPUT_", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestConfigTOML(t *testing.T) {
	cfg := &Config{
		Behavior: Behavior{Global: true, Verbose: 1},
		Output:   Output{Format: "json"},
		Log:      Log{File: true},
		Source:   "/somewhere",
	}

	out, err := cfg.TOML()
	require.NoError(t, err)

	assert.Contains(t, out, "[behavior]")
	assert.Contains(t, out, "global = true")
	assert.Contains(t, out, "verbose = 1")
	assert.Contains(t, out, "ignore_invalid_files = false")
	assert.Contains(t, out, "[output]")
	assert.Regexp(t, `format = ['"]json['"]`, out)
	assert.Contains(t, out, "[log]")
	assert.NotContains(t, out, "somewhere")
}

func TestDefaultsContent(t *testing.T) {
	content := DefaultsContent()
	assert.Contains(t, content, "[behavior]")
	assert.Contains(t, content, "RENAMER_BEHAVIOR_GLOBAL")
}
