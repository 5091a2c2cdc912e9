// Package ui renders batch events for the user in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/renamer/pkg/executor"
	"github.com/arthur-debert/renamer/pkg/ui/json"
	"github.com/arthur-debert/renamer/pkg/ui/terminal"
	"github.com/arthur-debert/renamer/pkg/ui/text"
)

// Renderer is the common interface for all output renderers. It receives
// events while a batch runs and the report once it is over.
type Renderer interface {
	executor.Sink

	// RenderSummary renders the outcome of a batch
	RenderSummary(report *executor.Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}
