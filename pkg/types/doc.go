// Package types defines the interfaces shared across renamer packages.
package types
