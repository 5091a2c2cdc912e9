package executor

import (
	"path/filepath"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/naming"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	// Filesystem operations interface for testing
	FS      types.FS
	Confirm Confirmer
	Sink    Sink
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
	// Abs resolves the path reported for invalid inputs
	Abs func(path string) (string, error)
}

// Batch is one invocation's worth of work
type Batch struct {
	Transformer naming.Transformer
	Files       []string

	DryRun             bool
	Verbose            bool
	Force              bool
	Interactive        bool
	IgnoreInvalidFiles bool
}

// Executor renames the files of a batch
type Executor struct {
	fs      types.FS
	confirm Confirmer
	sink    Sink
	logger  zerolog.Logger
	abs     func(string) (string, error)
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	confirm := opts.Confirm
	if confirm == nil {
		confirm = declineAll{}
	}

	sink := opts.Sink
	if sink == nil {
		sink = discardSink{}
	}

	abs := opts.Abs
	if abs == nil {
		abs = filepath.Abs
	}

	return &Executor{
		fs:      fs,
		confirm: confirm,
		sink:    sink,
		logger:  logger,
		abs:     abs,
	}
}

// run is the state threaded through one batch
type run struct {
	batch   Batch
	verbose bool
	counter uint
	pending PendingNameSet
	report  *Report
}

// Run processes the batch. The returned report is never nil.
func (e *Executor) Run(batch Batch) (*Report, error) {
	report := &Report{DryRun: batch.DryRun}

	if batch.Force && batch.Interactive {
		return report, errors.New(errors.ErrForceAndInteractive,
			"Received --force and --interactive. Not sure how to continue.")
	}

	done := logging.LogOperationStart(e.logger, "batch")
	defer done()

	r := &run{
		batch:   batch,
		verbose: batch.Verbose || batch.DryRun,
		pending: make(PendingNameSet),
		report:  report,
	}

	e.logger.Info().
		Int("files", len(batch.Files)).
		Int("rules", len(batch.Transformer.Rules)).
		Bool("dryRun", batch.DryRun).
		Bool("global", batch.Transformer.MatchAll).
		Msg("Starting batch")

	for _, path := range batch.Files {
		if err := e.process(r, path); err != nil {
			// err is reported by the caller
			e.logger.Debug().Err(err).Str("path", path).Msg("Batch stopped")
			return report, err
		}
	}

	e.logger.Info().
		Int("renamed", len(report.Renames)).
		Int("unchanged", len(report.Unchanged)).
		Int("ignored", len(report.Ignored)).
		Int("declined", len(report.Declined)).
		Msg("Batch completed")

	return report, nil
}

func (e *Executor) emit(r *run, kind EventKind, source, target string) {
	if r.verbose {
		e.sink.Emit(Event{Kind: kind, Source: source, Target: target, DryRun: r.batch.DryRun})
	}
}

func (e *Executor) process(r *run, path string) error {
	if !e.isFile(path) {
		if r.batch.IgnoreInvalidFiles {
			e.logger.Debug().Str("path", path).Msg("Ignoring invalid file")
			r.report.Ignored = append(r.report.Ignored, path)
			e.emit(r, EventIgnored, path, "")
			return nil
		}

		resolved, err := e.abs(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "cannot resolve %q", path)
		}
		return errors.Newf(errors.ErrInvalidFile,
			"%q is not a file. If this is intentional, pass --ignore-invalid-files.", resolved).
			WithDetail("path", resolved)
	}

	renamed, err := r.batch.Transformer.Transform(path, r.counter)
	if err != nil {
		if renameErr, ok := err.(*errors.RenameError); ok {
			return renameErr.WithDetail("path", path)
		}
		return err
	}

	if renamed == filepath.Clean(path) {
		e.logger.Debug().Str("path", path).Msg("No patterns match")
		r.report.Unchanged = append(r.report.Unchanged, path)
		e.emit(r, EventNoMatch, path, "")
		return nil
	}

	overwrite := false
	if info, err := e.fs.Stat(renamed); err == nil {
		if info.IsDir() {
			return errors.Newf(errors.ErrCannotRenameFileToDirectory,
				"Cannot rename %q. %q is already a directory.", path, renamed).
				WithDetail("source", path).
				WithDetail("target", renamed)
		}
		overwrite = true
	} else if r.batch.DryRun && r.pending.Contains(renamed) {
		overwrite = true
	}

	if overwrite {
		proceed, err := e.resolveOverwrite(r, path, renamed)
		if err != nil {
			return err
		}
		if !proceed {
			e.logger.Debug().Str("path", path).Str("target", renamed).Msg("Overwrite declined")
			r.report.Declined = append(r.report.Declined, path)
			return nil
		}
	}

	e.emit(r, EventRename, path, renamed)

	if r.batch.DryRun {
		r.pending.Add(renamed)
	} else if err := e.fs.Rename(path, renamed); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot rename %q to %q", path, renamed).
			WithDetail("source", path).
			WithDetail("target", renamed)
	}

	e.logger.Debug().
		Str("source", path).
		Str("target", renamed).
		Uint("counter", r.counter).
		Bool("overwrite", overwrite).
		Msg("Renamed")

	r.report.Renames = append(r.report.Renames, Rename{Source: path, Target: renamed, Overwrite: overwrite})
	r.counter++
	return nil
}

// resolveOverwrite applies the overwrite policy to an occupied destination
func (e *Executor) resolveOverwrite(r *run, path, renamed string) (bool, error) {
	switch {
	case r.batch.Interactive:
		ok, err := e.confirm.Confirm(renamed)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrIO, "cannot read confirmation for %q", renamed).
				WithDetail("target", renamed)
		}
		return ok, nil
	case r.batch.Force:
		return true, nil
	default:
		return false, errors.Newf(errors.ErrSkippingOverwrite,
			"%q. Not overwriting %q without --interactive or --force.", path, renamed).
			WithDetail("source", path).
			WithDetail("target", renamed)
	}
}

// isFile follows symlinks like a plain stat
func (e *Executor) isFile(path string) bool {
	info, err := e.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
