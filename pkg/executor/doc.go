// Package executor runs a rename batch.
//
// The executor walks the input files in order, computes each destination
// with a naming.Transformer and decides whether the file is skipped,
// blocked, overwritten after confirmation, or renamed. Renames happen one
// at a time; the first fatal condition stops the batch and nothing that was
// already renamed is undone.
//
// A shared counter feeds the increments. It only advances when a file is
// actually renamed (or would be, in a dry run), so skipped, unchanged and
// declined files do not leave gaps in the numbering.
//
// In dry-run mode nothing on disk changes, so the executor keeps a
// PendingNameSet of destinations already claimed by earlier files and
// treats them as occupied. Live runs rely on the filesystem instead: an
// earlier rename has already produced the file on disk.
package executor
