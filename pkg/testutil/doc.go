// Package testutil provides utilities for testing renamer components.
//
// Key components:
//   - TestEnvironment: isolated directory of files to rename, on either an
//     in-memory or a real filesystem, with XDG config and state directories
//     and RENAMER_ variables pointed away from the user's own
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when the code under test builds
//     its own OS filesystem (the CLI, path resolution)
//   - All test data should be defined inline, not in external files
package testutil
