package renderers

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gruntwork-io/ecs-nuke/reporting"
)

// JSONRenderer outputs results as JSON.
type JSONRenderer struct {
	writer  io.Writer
	cfg     JSONRendererConfig
	found   []reporting.ResourceFound
	deleted []reporting.ResourceDeleted
	errors  []reporting.GeneralError
}

// NewJSONRenderer creates a JSON renderer
func NewJSONRenderer(writer io.Writer, cfg JSONRendererConfig) *JSONRenderer {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONRenderer{
		writer:  writer,
		cfg:     cfg,
		found:   make([]reporting.ResourceFound, 0),
		deleted: make([]reporting.ResourceDeleted, 0),
		errors:  make([]reporting.GeneralError, 0),
	}
}

// OnEvent collects events
func (r *JSONRenderer) OnEvent(event reporting.Event) {
	switch e := event.(type) {
	case reporting.ResourceFound:
		r.found = append(r.found, e)
	case reporting.ResourceDeleted:
		r.deleted = append(r.deleted, e)
	case reporting.GeneralError:
		r.errors = append(r.errors, e)
	}
}

// Render writes the whole run as a single JSON document
func (r *JSONRenderer) Render() error {
	byRegion := make(map[string]int)
	for _, e := range r.found {
		byRegion[e.Region]++
	}

	deletedCount := 0
	failedCount := 0
	for _, e := range r.deleted {
		if e.Success {
			deletedCount++
		} else {
			failedCount++
		}
	}

	output := RunOutput{
		Timestamp: time.Now(),
		Action:    r.cfg.Action,
		Scope:     r.cfg.Scope,
		DryRun:    r.cfg.DryRun,
		Regions:   r.cfg.Regions,
		Found:     r.found,
		Resources: r.deleted,
		Errors:    r.errors,
		Summary: RunSummary{
			Found:         len(r.found),
			Total:         len(r.deleted),
			Deleted:       deletedCount,
			Failed:        failedCount,
			GeneralErrors: len(r.errors),
			ByRegion:      byRegion,
		},
	}

	return r.encode(output)
}

func (r *JSONRenderer) encode(v any) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
