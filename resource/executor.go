package resource

import (
	"context"
	"fmt"
	"sync"

	goerrors "github.com/go-errors/errors"
	"github.com/gruntwork-io/ecs-nuke/logging"
)

const (
	// DefaultMaxConcurrent is the number of operations allowed in flight at once within a region.
	// It keeps the load on the ECS API bounded no matter how many resources are listed.
	DefaultMaxConcurrent = 5
)

// Operation is one independently failable unit of work, usually the full teardown of a single
// resource or a single batch call.
type Operation struct {
	Identifier string
	Run        func(ctx context.Context) error
}

// Outcome is the result of running one Operation. A nil Error means success.
type Outcome struct {
	Identifier string
	Error      error
}

func (o Outcome) Succeeded() bool {
	return o.Error == nil
}

// Outcomes is the result of one Execute call, index-aligned with the operations passed in.
type Outcomes []Outcome

// Failed returns the outcomes that carry an error.
func (outcomes Outcomes) Failed() Outcomes {
	var failed Outcomes
	for _, outcome := range outcomes {
		if !outcome.Succeeded() {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// BatchExecutor runs operations with a cap on how many are outstanding at the same time.
// Failures of individual operations are logged and returned as outcomes; they never stop the batch.
type BatchExecutor struct {
	MaxConcurrent int
	ResourceType  string
	Scope         Scope
}

// NewBatchExecutor returns an executor for resourceType in scope using DefaultMaxConcurrent.
func NewBatchExecutor(resourceType string, scope Scope) BatchExecutor {
	return BatchExecutor{
		MaxConcurrent: DefaultMaxConcurrent,
		ResourceType:  resourceType,
		Scope:         scope,
	}
}

// Execute starts every operation, keeping at most MaxConcurrent of them running, and returns once
// all of them have finished. Completion order is not preserved but the returned outcomes line up
// with ops by index.
func (e BatchExecutor) Execute(ctx context.Context, ops []Operation) Outcomes {
	if len(ops) == 0 {
		return nil
	}

	maxConcurrent := e.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}

	outcomes := make(Outcomes, len(ops))

	// Semaphore for concurrency control
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, op := range ops {
		wg.Add(1)
		// Acquire semaphore slot
		sem <- struct{}{}

		go func(i int, op Operation) {
			defer wg.Done()
			// Release semaphore slot when done
			defer func() { <-sem }()

			err := e.run(ctx, op)
			outcomes[i] = Outcome{Identifier: op.Identifier, Error: err}

			if err != nil {
				logging.Errorf("[Failed] %s %s in %s: %s", e.ResourceType, op.Identifier, e.Scope, err)
			} else {
				logging.Infof("[OK] %s %s in %s", e.ResourceType, op.Identifier, e.Scope)
			}
		}(i, op)
	}

	wg.Wait()
	return outcomes
}

// run invokes the operation, turning a panic into an error so one bad resource cannot take the
// process down.
func (e BatchExecutor) run(ctx context.Context, op Operation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = PanicError{Identifier: op.Identifier, Value: r, Stack: goerrors.Wrap(r, 2).ErrorStack()}
		}
	}()

	if op.Run == nil {
		return fmt.Errorf("no operation defined for %s", op.Identifier)
	}
	return op.Run(ctx)
}
