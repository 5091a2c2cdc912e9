package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how batch events are rendered
type Format int

const (
	// FormatAuto resolves to FormatTerminal or FormatText for the output at hand
	FormatAuto Format = iota
	// FormatTerminal styles lines with the lipgloss styles
	FormatTerminal
	// FormatText writes plain lines
	FormatText
	// FormatJSON writes one JSON object per event
	FormatJSON
)

var formatNames = [...]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// formatAliases maps every accepted spelling to its format
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat accepts the names String returns plus "terminal" and "plain",
// in any case
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s)
}

// fdWriter is an output backed by a file descriptor
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// DetectFormat resolves FormatAuto for output. Only a color capable TTY gets
// styled lines, and NO_COLOR turns styling off everywhere.
func DetectFormat(output io.Writer) Format {
	f, ok := output.(fdWriter)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
