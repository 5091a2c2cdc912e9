// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/renamer/pkg/executor"
)

const (
	MsgDryRunTag = "DRY "
	MsgRename    = "%s -> %s"
	MsgNoMatch   = "No patterns match %s"
	MsgIgnoring  = "Ignoring %s"
	MsgSummary   = "%d renamed, %d unchanged, %d ignored, %d declined"
	MsgError     = "Error: %v"
)

// Line renders an event without the dry-run tag
func Line(ev executor.Event) string {
	switch ev.Kind {
	case executor.EventRename:
		return fmt.Sprintf(MsgRename, ev.Source, ev.Target)
	case executor.EventNoMatch:
		return fmt.Sprintf(MsgNoMatch, ev.Source)
	case executor.EventIgnored:
		return fmt.Sprintf(MsgIgnoring, ev.Source)
	default:
		return ev.Source
	}
}

// Summary renders the counts of a report
func Summary(report *executor.Report) string {
	return fmt.Sprintf(MsgSummary,
		len(report.Renames), len(report.Unchanged), len(report.Ignored), len(report.Declined))
}

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// Emit writes one line per event, tagged in dry runs
func (r *Renderer) Emit(ev executor.Event) {
	tag := ""
	if ev.DryRun {
		tag = MsgDryRunTag
	}
	_, _ = fmt.Fprintln(r.output, tag+Line(ev))
}

// RenderSummary writes the report counts
func (r *Renderer) RenderSummary(report *executor.Report) error {
	tag := ""
	if report.DryRun {
		tag = MsgDryRunTag
	}
	_, err := fmt.Fprintln(r.output, tag+Summary(report))
	return err
}

// RenderError writes the error on its own line
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, MsgError+"\n", err)
	return werr
}
