package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a directory of files to rename plus isolated
// configuration and state locations
type TestEnvironment struct {
	// Root holds the files created by the test
	Root string
	// ConfigHome and StateHome are the XDG directories seen by the code
	ConfigHome string
	StateHome  string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	home := t.TempDir()
	env := &TestEnvironment{
		ConfigHome: filepath.Join(home, "config"),
		StateHome:  filepath.Join(home, "state"),
		Type:       envType,
		t:          t,
	}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual/files"
		env.FS = filesystem.NewMemFS()
	default:
		env.Root = filepath.Join(home, "files")
		env.FS = filesystem.NewOS()
	}
	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", env.Root, err)
	}

	// xdg caches its directories at init
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "system"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	unsetenv(t, "RENAMER_CONFIG")
	for _, kv := range os.Environ() {
		if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, "RENAMER_") {
			unsetenv(t, key)
		}
	}
	xdg.Reload()

	return env
}

// unsetenv removes key for the rest of the test; t.Setenv restores it
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Failed to unset %s: %v", key, err)
	}
}

// Path returns the absolute path of name inside Root
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.Root, name)
}

// CreateFile creates name under Root with content as its data and returns
// its path. Parent directories are created as needed.
func (env *TestEnvironment) CreateFile(name, content string) string {
	env.t.Helper()

	path := env.Path(name)
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateFiles creates every name with its own name as content
func (env *TestEnvironment) CreateFiles(names ...string) []string {
	env.t.Helper()

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, env.CreateFile(name, name))
	}
	return paths
}

// CreateDir creates a directory under Root and returns its path
func (env *TestEnvironment) CreateDir(name string) string {
	env.t.Helper()

	path := env.Path(name)
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// WriteConfig writes content to the user config file with the given
// extension (toml or yaml) and returns its path
func (env *TestEnvironment) WriteConfig(ext, content string) string {
	env.t.Helper()

	dir := filepath.Join(env.ConfigHome, "renamer")
	if err := os.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, "config."+ext)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// List returns the sorted names found directly under Root
func (env *TestEnvironment) List() []string {
	env.t.Helper()

	entries, err := env.FS.ReadDir(env.Root)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", env.Root, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the content of name under Root
func (env *TestEnvironment) ReadFile(name string) string {
	env.t.Helper()

	path := env.Path(name)
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
