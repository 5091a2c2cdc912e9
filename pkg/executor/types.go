package executor

import (
	"path/filepath"
)

// EventKind identifies a line of user facing output
type EventKind int

const (
	// EventRename reports a planned or performed rename
	EventRename EventKind = iota
	// EventNoMatch reports a file whose name would not change
	EventNoMatch
	// EventIgnored reports an input that is not a regular file
	EventIgnored
)

func (k EventKind) String() string {
	switch k {
	case EventRename:
		return "rename"
	case EventNoMatch:
		return "no-match"
	case EventIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Event is emitted to the Sink when the batch runs verbosely
type Event struct {
	Kind   EventKind
	Source string
	Target string
	DryRun bool
}

// Sink receives events as the batch progresses
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(Event)

// Emit calls f(ev)
func (f SinkFunc) Emit(ev Event) { f(ev) }

// Confirmer asks whether an occupied destination may be overwritten
type Confirmer interface {
	Confirm(path string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(path string) (bool, error)

// Confirm calls f(path)
func (f ConfirmFunc) Confirm(path string) (bool, error) { return f(path) }

type discardSink struct{}

func (discardSink) Emit(Event) {}

type declineAll struct{}

func (declineAll) Confirm(string) (bool, error) { return false, nil }

// Rename is one file that was renamed, or would be in a dry run
type Rename struct {
	Source    string
	Target    string
	Overwrite bool
}

// Report summarizes a batch. It is returned on failure too and then holds
// the work done before the batch stopped.
type Report struct {
	DryRun    bool
	Renames   []Rename
	Unchanged []string
	Ignored   []string
	Declined  []string
}

// PendingNameSet holds destinations claimed earlier in a dry run
type PendingNameSet map[string]struct{}

// Add claims path
func (s PendingNameSet) Add(path string) {
	s[filepath.Clean(path)] = struct{}{}
}

// Contains reports whether path was already claimed
func (s PendingNameSet) Contains(path string) bool {
	_, ok := s[filepath.Clean(path)]
	return ok
}
