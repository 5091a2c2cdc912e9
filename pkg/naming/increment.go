package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/renamer/pkg/errors"
)

// Position is where an increment is inserted in a name
type Position int

const (
	Prefix Position = iota
	Suffix
)

func (p Position) String() string {
	switch p {
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// IncrementSpec describes a zero-padded counter. Width comes from the length
// of the literal digits given on the command line, Start from their value.
type IncrementSpec struct {
	Width uint
	Start uint
}

// ParseIncrement parses a literal such as "0501" into {Width: 4, Start: 501}
func ParseIncrement(s string) (IncrementSpec, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return IncrementSpec{}, errors.Newf(errors.ErrInvalidIncrement,
			"invalid increment `%s`: expected decimal digits such as 001", s).
			WithDetail("input", s)
	}

	start, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return IncrementSpec{}, errors.Wrapf(err, errors.ErrInvalidIncrement,
			"invalid increment `%s`", s).
			WithDetail("input", s)
	}

	return IncrementSpec{Width: uint(len(s)), Start: uint(start)}, nil
}

// Format renders start+counter padded to Width. Wider values are kept whole.
func (s IncrementSpec) Format(counter uint) string {
	return fmt.Sprintf("%0*d", int(s.Width), s.Start+counter)
}

// String returns the literal form the increment was parsed from
func (s IncrementSpec) String() string {
	return s.Format(0)
}

// InsertIncrement inserts the counter for this file into name. A leading dot
// marks a hidden file and always stays the first character; a suffix goes
// before the last dot that is not that marker, or at the end otherwise.
func InsertIncrement(name string, position Position, spec IncrementSpec, counter uint) string {
	inc := spec.Format(counter)

	startIndex := 0
	if strings.HasPrefix(name, ".") {
		startIndex = 1
	}

	switch position {
	case Prefix:
		return name[:startIndex] + inc + name[startIndex:]
	case Suffix:
		if idx := strings.LastIndexByte(name, '.'); idx >= startIndex && idx > 0 {
			return name[:idx] + inc + name[idx:]
		}
		return name + inc
	default:
		return name
	}
}
