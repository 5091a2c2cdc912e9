package naming

import (
	"path/filepath"
)

// Step is one transformation of a base name
type Step func(name string) (string, error)

// Transformer computes the destination path of a file from its current path
type Transformer struct {
	Rules    []RewriteRule
	MatchAll bool
	Prefix   *IncrementSpec
	Suffix   *IncrementSpec
}

// Steps returns the ordered pipeline for the given counter value: rules,
// then the prefix increment, then the suffix increment.
func (t Transformer) Steps(counter uint) []Step {
	steps := []Step{
		func(name string) (string, error) {
			return ApplyRules(name, t.Rules, t.MatchAll)
		},
	}

	if t.Prefix != nil {
		spec := *t.Prefix
		steps = append(steps, func(name string) (string, error) {
			return InsertIncrement(name, Prefix, spec, counter), nil
		})
	}

	if t.Suffix != nil {
		spec := *t.Suffix
		steps = append(steps, func(name string) (string, error) {
			return InsertIncrement(name, Suffix, spec, counter), nil
		})
	}

	return steps
}

// TransformName runs the pipeline over a bare file name
func (t Transformer) TransformName(name string, counter uint) (string, error) {
	var err error
	for _, step := range t.Steps(counter) {
		if name, err = step(name); err != nil {
			return "", err
		}
	}
	return name, nil
}

// Transform runs the pipeline over the base name of path and keeps its
// directory.
func (t Transformer) Transform(path string, counter uint) (string, error) {
	dir, name := filepath.Split(filepath.Clean(path))

	renamed, err := t.TransformName(name, counter)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, renamed), nil
}
