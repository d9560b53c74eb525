package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/gruntwork-io/ecs-nuke/config"
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/resource"
	"github.com/gruntwork-io/ecs-nuke/util"
	commonErrors "github.com/gruntwork-io/go-commons/errors"
)

// DeleteTaskDefinitions accepts at most 10 task definitions per call
// https://docs.aws.amazon.com/AmazonECS/latest/APIReference/API_DeleteTaskDefinitions.html
const deleteTaskDefinitionsBatchSize = 10

// TaskDefinitionFamily returns the family part of a task definition ARN or family:revision
// string, e.g. "web" for "arn:aws:ecs:us-east-1:123456789012:task-definition/web:3".
func TaskDefinitionFamily(arn string) string {
	name := arn
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[:i]
	}
	return name
}

// listTaskDefinitions returns the ARNs with the given status whose family passes filter.
func listTaskDefinitions(ctx context.Context, client ECSAPI, status types.TaskDefinitionStatus, filter config.ResourceType) ([]string, error) {
	var arns []string
	for arn, err := range ListTaskDefinitionArns(ctx, client, status) {
		if err != nil {
			return nil, err
		}
		if !filter.ShouldInclude(TaskDefinitionFamily(arn)) {
			logging.Debugf("Excluding task definition %s by config", arn)
			continue
		}
		arns = append(arns, arn)
	}
	return arns, nil
}

// ECSTaskDefinitions deregisters every active task definition revision of a region, one call per
// revision. Deregistered revisions become INACTIVE and can then be removed with
// ECSInactiveTaskDefinitions.
type ECSTaskDefinitions struct {
	Client ECSAPI
	Scope  resource.Scope
	Filter config.ResourceType
}

var _ Nukeable = ECSTaskDefinitions{}

func (tds ECSTaskDefinitions) ResourceName() string {
	return "ecstaskdefinition"
}

func (tds ECSTaskDefinitions) GetAll(ctx context.Context) ([]string, error) {
	return listTaskDefinitions(ctx, tds.Client, "", tds.Filter)
}

func (tds ECSTaskDefinitions) Nuke(ctx context.Context, identifiers []string) resource.Outcomes {
	ops := make([]resource.Operation, 0, len(identifiers))
	for _, arn := range identifiers {
		ops = append(ops, resource.Operation{
			Identifier: arn,
			Run: func(ctx context.Context) error {
				return tds.deregister(ctx, arn)
			},
		})
	}

	return resource.NewBatchExecutor(tds.ResourceName(), tds.Scope).Execute(ctx, ops)
}

func (tds ECSTaskDefinitions) deregister(ctx context.Context, arn string) error {
	resp, err := tds.Client.DeregisterTaskDefinition(ctx, &ecs.DeregisterTaskDefinitionInput{
		TaskDefinition: aws.String(arn),
	})
	if err != nil {
		return commonErrors.WithStackTrace(err)
	}
	if resp == nil || resp.TaskDefinition == nil {
		return MalformedResponseError{Operation: "DeregisterTaskDefinition", Field: "taskDefinition"}
	}
	return nil
}

// ECSInactiveTaskDefinitions permanently deletes INACTIVE task definition revisions in batches of
// up to 10 per call. Running it before anything was deregistered finds nothing and is a no-op.
type ECSInactiveTaskDefinitions struct {
	Client ECSAPI
	Scope  resource.Scope
	Filter config.ResourceType
}

var _ Nukeable = ECSInactiveTaskDefinitions{}

func (tds ECSInactiveTaskDefinitions) ResourceName() string {
	return "ecsinactivetaskdefinition"
}

func (tds ECSInactiveTaskDefinitions) GetAll(ctx context.Context) ([]string, error) {
	return listTaskDefinitions(ctx, tds.Client, types.TaskDefinitionStatusInactive, tds.Filter)
}

// Nuke issues one DeleteTaskDefinitions call per batch and reports a result for every ARN. ARNs
// listed in the response failures are reported as failed, and an error of the call itself fails
// every ARN of the batch.
func (tds ECSInactiveTaskDefinitions) Nuke(ctx context.Context, identifiers []string) resource.Outcomes {
	batches := util.Split(identifiers, deleteTaskDefinitionsBatchSize)

	// each batch's results are only written by the operation that owns the batch
	results := make([]resource.Outcomes, len(batches))
	ops := make([]resource.Operation, 0, len(batches))
	for i, batch := range batches {
		ops = append(ops, resource.Operation{
			Identifier: fmt.Sprintf("batch %d/%d (%d task definitions)", i+1, len(batches), len(batch)),
			Run: func(ctx context.Context) error {
				var err error
				results[i], err = tds.deleteBatch(ctx, batch)
				return err
			},
		})
	}

	batchOutcomes := resource.NewBatchExecutor(tds.ResourceName(), tds.Scope).Execute(ctx, ops)

	outcomes := make(resource.Outcomes, 0, len(identifiers))
	for i, batch := range batches {
		if results[i] != nil {
			outcomes = append(outcomes, results[i]...)
			continue
		}
		// the call never produced per-ARN results, so the batch error applies to all of them
		for _, arn := range batch {
			outcomes = append(outcomes, resource.Outcome{Identifier: arn, Error: batchOutcomes[i].Error})
		}
	}
	return outcomes
}

// deleteBatch deletes one batch. It returns nil results when the call itself failed.
func (tds ECSInactiveTaskDefinitions) deleteBatch(ctx context.Context, batch []string) (resource.Outcomes, error) {
	resp, err := tds.Client.DeleteTaskDefinitions(ctx, &ecs.DeleteTaskDefinitionsInput{
		TaskDefinitions: batch,
	})
	if err != nil {
		return nil, commonErrors.WithStackTrace(err)
	}
	if resp == nil {
		return nil, MalformedResponseError{Operation: "DeleteTaskDefinitions", Field: "response"}
	}

	failures := map[string]string{}
	var failedArns []string
	for _, failure := range resp.Failures {
		arn := aws.ToString(failure.Arn)
		if arn == "" {
			// a failure we cannot attribute would otherwise hide behind a success
			return nil, MalformedResponseError{Operation: "DeleteTaskDefinitions", Field: "failures.arn"}
		}
		failures[arn] = failureReason(failure)
		failedArns = append(failedArns, arn)
	}

	results := make(resource.Outcomes, 0, len(batch))
	for _, arn := range batch {
		outcome := resource.Outcome{Identifier: arn}
		if reason, failed := failures[arn]; failed {
			outcome.Error = ItemFailureError{Operation: "DeleteTaskDefinitions", Identifier: arn, Reason: reason}
		}
		results = append(results, outcome)
	}

	if deleted := util.Difference(batch, failedArns); len(deleted) > 0 {
		logging.Debugf("Deleted task definitions %s", strings.Join(deleted, ", "))
	}
	if len(failures) > 0 {
		return results, BatchFailureError{Operation: "DeleteTaskDefinitions", Failures: failures}
	}
	return results, nil
}

func failureReason(failure types.Failure) string {
	reason := aws.ToString(failure.Reason)
	if detail := aws.ToString(failure.Detail); detail != "" {
		reason = fmt.Sprintf("%s (%s)", reason, detail)
	}
	return reason
}
