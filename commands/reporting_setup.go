package commands

import (
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/renderers"
	"github.com/gruntwork-io/ecs-nuke/reporting"
)

// setupReporting creates a collector and appropriate renderer based on output format.
// The returned cleanup renders the collected events and closes the writer.
// The jsonConfig is used when outputFormat is "json"; ignored otherwise.
func setupReporting(outputFormat string, outputFile string, jsonConfig renderers.JSONRendererConfig) (
	*reporting.Collector, func() error, error) {
	writer, writerCleanup, err := renderers.GetOutputWriter(outputFile)
	if err != nil {
		return nil, nil, err
	}

	collector := reporting.NewCollector()

	cleanup := func() error {
		renderErr := collector.Complete()
		if err := writerCleanup(); err != nil {
			logging.Errorf("Failed to close output writer: %v", err)
		}
		return renderErr
	}

	if outputFormat == "json" {
		collector.AddRenderer(renderers.NewJSONRenderer(writer, jsonConfig))
		return collector, cleanup, nil
	}

	collector.AddRenderer(renderers.NewCLIRenderer(writer))
	return collector, cleanup, nil
}
