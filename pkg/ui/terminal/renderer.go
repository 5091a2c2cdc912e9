// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/renamer/pkg/executor"
	"github.com/arthur-debert/renamer/pkg/ui/output/styles"
	"github.com/arthur-debert/renamer/pkg/ui/text"
)

// Renderer styles each part of a line with the registered styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

func (r *Renderer) tag(dryRun bool) string {
	if !dryRun {
		return ""
	}
	return styles.GetStyle("DryRunTag").Render("DRY") + " "
}

// Emit writes a styled line for the event
func (r *Renderer) Emit(ev executor.Event) {
	var line string
	switch ev.Kind {
	case executor.EventRename:
		line = fmt.Sprintf(text.MsgRename,
			styles.GetStyle("Source").Render(ev.Source),
			styles.GetStyle("Target").Render(ev.Target))
	case executor.EventNoMatch:
		line = styles.GetStyle("Muted").Render(text.Line(ev))
	case executor.EventIgnored:
		line = styles.GetStyle("Warning").Render(text.Line(ev))
	default:
		line = text.Line(ev)
	}
	_, _ = fmt.Fprintln(r.output, r.tag(ev.DryRun)+line)
}

// RenderSummary writes the report counts
func (r *Renderer) RenderSummary(report *executor.Report) error {
	_, err := fmt.Fprintln(r.output, r.tag(report.DryRun)+styles.GetStyle("Summary").Render(text.Summary(report)))
	return err
}

// RenderError writes the error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf(text.MsgError, err)))
	return werr
}
