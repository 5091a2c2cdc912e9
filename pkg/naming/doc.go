// Package naming computes new file names without touching the filesystem.
//
// A name goes through an ordered list of steps: the rewrite rules first,
// then the prefix increment, then the suffix increment. Every step takes a
// name and returns a new one, so the whole pipeline is a pure function of
// the original name, the rule list, the increment specs and the counter.
//
// Rewrite rules are regular expressions with Go's replacement template
// syntax ($1, ${1}, $name, ${name}). Increments are zero-padded counters
// that keep a hidden file's leading dot first and land before a real
// extension:
//
//	.xinitrc        prefix 122/3, suffix 455/4  ->  .122xinitrc0455
//	.hidden.config  prefix 123/3, suffix 456/4  ->  .123hidden0456.config
package naming
