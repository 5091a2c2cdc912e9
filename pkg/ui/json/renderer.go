// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/renamer/pkg/executor"
)

// Renderer writes one JSON object per line
type Renderer struct {
	encoder *json.Encoder
}

type eventJSON struct {
	Event  string `json:"event"`
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
	DryRun bool   `json:"dry_run"`
}

type renameJSON struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Overwrite bool   `json:"overwrite,omitempty"`
}

type summaryJSON struct {
	Event     string       `json:"event"`
	DryRun    bool         `json:"dry_run"`
	Renames   []renameJSON `json:"renames"`
	Unchanged []string     `json:"unchanged"`
	Ignored   []string     `json:"ignored"`
	Declined  []string     `json:"declined"`
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	return &Renderer{encoder: json.NewEncoder(output)}
}

// Emit encodes the event
func (r *Renderer) Emit(ev executor.Event) {
	_ = r.encoder.Encode(eventJSON{
		Event:  ev.Kind.String(),
		Source: ev.Source,
		Target: ev.Target,
		DryRun: ev.DryRun,
	})
}

// RenderSummary encodes the whole report
func (r *Renderer) RenderSummary(report *executor.Report) error {
	out := summaryJSON{
		Event:     "summary",
		DryRun:    report.DryRun,
		Renames:   make([]renameJSON, 0, len(report.Renames)),
		Unchanged: nonNil(report.Unchanged),
		Ignored:   nonNil(report.Ignored),
		Declined:  nonNil(report.Declined),
	}
	for _, rn := range report.Renames {
		out.Renames = append(out.Renames, renameJSON{Source: rn.Source, Target: rn.Target, Overwrite: rn.Overwrite})
	}
	return r.encoder.Encode(out)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"event": "error",
		"error": err.Error(),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
