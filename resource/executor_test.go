package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inFlightTracker records how many operations are running at the same time.
type inFlightTracker struct {
	current  atomic.Int32
	max      atomic.Int32
	finished atomic.Int32
}

func (tr *inFlightTracker) op(id string, delay time.Duration, err error) Operation {
	return Operation{
		Identifier: id,
		Run: func(ctx context.Context) error {
			n := tr.current.Add(1)
			for {
				m := tr.max.Load()
				if n <= m || tr.max.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(delay)
			tr.current.Add(-1)
			tr.finished.Add(1)
			return err
		},
	}
}

func TestBatchExecutor_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		count int
	}{
		"no operations":        {count: 0},
		"fewer than the limit": {count: 3},
		"exactly the limit":    {count: DefaultMaxConcurrent},
		"more than the limit":  {count: 23},
		"many times the limit": {count: 60},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tracker := &inFlightTracker{}
			var ops []Operation
			for i := 0; i < tc.count; i++ {
				var err error
				if i%4 == 0 {
					err = errors.New("boom")
				}
				delay := time.Duration(1+i%3) * time.Millisecond
				ops = append(ops, tracker.op(fmt.Sprintf("op-%d", i), delay, err))
			}

			outcomes := NewBatchExecutor("ecscluster", Scope{Region: "us-east-1"}).Execute(context.Background(), ops)

			require.Len(t, outcomes, tc.count)
			assert.Equal(t, int32(tc.count), tracker.finished.Load())
			assert.Equal(t, int32(0), tracker.current.Load())
			assert.LessOrEqual(t, tracker.max.Load(), int32(DefaultMaxConcurrent))
			if tc.count >= DefaultMaxConcurrent {
				assert.Greater(t, tracker.max.Load(), int32(1))
			}
		})
	}
}

func TestBatchExecutor_OutcomesAlignWithOperations(t *testing.T) {
	t.Parallel()

	errBad := errors.New("service still draining")
	ops := []Operation{
		{Identifier: "a", Run: func(ctx context.Context) error {
			time.Sleep(5 * time.Millisecond)
			return nil
		}},
		{Identifier: "b", Run: func(ctx context.Context) error { return errBad }},
		{Identifier: "c", Run: func(ctx context.Context) error { return nil }},
	}

	outcomes := NewBatchExecutor("ecscluster", Scope{Region: "eu-west-1"}).Execute(context.Background(), ops)

	require.Len(t, outcomes, 3)
	assert.Equal(t, "a", outcomes[0].Identifier)
	assert.True(t, outcomes[0].Succeeded())
	assert.Equal(t, "b", outcomes[1].Identifier)
	assert.ErrorIs(t, outcomes[1].Error, errBad)
	assert.True(t, outcomes[2].Succeeded())

	failed := outcomes.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Identifier)
}

func TestBatchExecutor_RecoversPanics(t *testing.T) {
	t.Parallel()

	ops := []Operation{
		{Identifier: "nil-deref", Run: func(ctx context.Context) error {
			var name *string
			_ = *name
			return nil
		}},
		{Identifier: "sibling", Run: func(ctx context.Context) error { return nil }},
		{Identifier: "missing-run"},
	}

	outcomes := BatchExecutor{MaxConcurrent: 1, ResourceType: "ecscluster"}.Execute(context.Background(), ops)

	require.Len(t, outcomes, 3)
	var panicErr PanicError
	require.ErrorAs(t, outcomes[0].Error, &panicErr)
	assert.Equal(t, "nil-deref", panicErr.Identifier)
	assert.NotEmpty(t, panicErr.Stack)
	assert.True(t, outcomes[1].Succeeded())
	assert.Error(t, outcomes[2].Error)
}

func TestBatchExecutor_SequentialWithLimitOfOne(t *testing.T) {
	t.Parallel()

	tracker := &inFlightTracker{}
	var ops []Operation
	for i := 0; i < 6; i++ {
		ops = append(ops, tracker.op(fmt.Sprintf("op-%d", i), time.Millisecond, nil))
	}

	outcomes := BatchExecutor{MaxConcurrent: 1}.Execute(context.Background(), ops)

	assert.Len(t, outcomes.Failed(), 0)
	assert.Equal(t, int32(1), tracker.max.Load())
}

func TestRunSteps_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	var calls []string
	step := func(name string, err error) Step {
		return Step{Name: name, Run: func(ctx context.Context) error {
			calls = append(calls, name)
			return err
		}}
	}

	errDelete := errors.New("delete failed")
	err := RunSteps(context.Background(), "demo",
		step("scale down svc1", nil),
		step("delete svc1", errDelete),
		step("delete cluster", nil),
	)

	var stepErr StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 2, stepErr.Index)
	assert.Equal(t, "delete svc1", stepErr.Step)
	assert.ErrorIs(t, err, errDelete)
	assert.Equal(t, []string{"scale down svc1", "delete svc1"}, calls)
}

func TestScope_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "us-east-1", Scope{Region: "us-east-1"}.String())
	assert.Equal(t, "123456789012/us-east-1", Scope{Region: "us-east-1", AccountID: "123456789012"}.String())
}
