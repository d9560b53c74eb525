package resource

import (
	"context"

	"github.com/gruntwork-io/ecs-nuke/logging"
)

// Step is one stage of a multi-step teardown, such as scaling a service down before deleting it.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunSteps executes steps in order for the resource named identifier. The first failing step stops
// the sequence and is returned as a StepError, leaving the resource in whatever state the earlier
// steps produced.
func RunSteps(ctx context.Context, identifier string, steps ...Step) error {
	for i, step := range steps {
		logging.Debugf("[STEP %d/%d] %s: %s", i+1, len(steps), identifier, step.Name)
		if err := step.Run(ctx); err != nil {
			return StepError{
				Identifier: identifier,
				Step:       step.Name,
				Index:      i + 1,
				Underlying: err,
			}
		}
	}
	return nil
}
