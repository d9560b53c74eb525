package renderers

import (
	"io"
	"os"
	"time"

	"github.com/gruntwork-io/ecs-nuke/reporting"
	"github.com/gruntwork-io/go-commons/errors"
)

// GetOutputWriter returns a writer for the specified output file or stdout if empty.
func GetOutputWriter(outputFile string) (io.Writer, func() error, error) {
	if outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, errors.WithStackTrace(err)
	}

	return file, file.Close, nil
}

// RunOutput is the JSON document written at the end of a run.
type RunOutput struct {
	Timestamp time.Time                   `json:"timestamp"`
	Action    string                      `json:"action"`
	Scope     string                      `json:"scope"`
	DryRun    bool                        `json:"dry_run"`
	Regions   []string                    `json:"regions,omitempty"`
	Found     []reporting.ResourceFound   `json:"found"`
	Resources []reporting.ResourceDeleted `json:"resources"`
	Errors    []reporting.GeneralError    `json:"general_errors,omitempty"`
	Summary   RunSummary                  `json:"summary"`
}

// RunSummary provides summary statistics for a run.
type RunSummary struct {
	Found         int            `json:"found"`
	Total         int            `json:"total"`
	Deleted       int            `json:"deleted"`
	Failed        int            `json:"failed"`
	GeneralErrors int            `json:"general_errors"`
	ByRegion      map[string]int `json:"by_region"`
}

// JSONRendererConfig holds configuration for the JSON renderer.
type JSONRendererConfig struct {
	Action  string
	Scope   string
	DryRun  bool
	Regions []string
}
