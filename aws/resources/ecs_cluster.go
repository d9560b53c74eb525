package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/gruntwork-io/ecs-nuke/config"
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/resource"
	"github.com/gruntwork-io/ecs-nuke/util"
	commonErrors "github.com/gruntwork-io/go-commons/errors"
)

// Used in this context to skip clusters that are already deleted
// For more details on other valid status values: https://docs.aws.amazon.com/AmazonECS/latest/APIReference/API_Cluster.html
const inactiveEcsClusterStatus string = "INACTIVE"

// Used in this context to limit the amount of clusters passed as input to the DescribeClusters function call
// For more details on this, please read here: https://docs.aws.amazon.com/cli/latest/reference/ecs/describe-clusters.html#options
const describeClustersRequestBatchSize = 100

// ECSClusters tears down every cluster of a region, draining and deleting its services first.
type ECSClusters struct {
	Client ECSAPI
	Scope  resource.Scope
	Filter config.ResourceType
}

var _ Nukeable = ECSClusters{}

func (clusters ECSClusters) ResourceName() string {
	return "ecscluster"
}

// GetAll returns the names of the clusters to delete. Clusters that are already INACTIVE or that
// the name filter rejects are left out.
func (clusters ECSClusters) GetAll(ctx context.Context) ([]string, error) {
	clusterArns, err := Collect(ListClusterArns(ctx, clusters.Client))
	if err != nil {
		return nil, err
	}

	var names []string
	for _, batch := range util.Split(clusterArns, describeClustersRequestBatchSize) {
		resp, err := clusters.Client.DescribeClusters(ctx, &ecs.DescribeClustersInput{
			Clusters: batch,
		})
		if err != nil {
			return nil, commonErrors.WithStackTrace(err)
		}

		for _, msg := range describeFailureMessages(resp.Failures) {
			logging.Warnf("Skipping %s in %s", msg, clusters.Scope)
		}

		for _, cluster := range resp.Clusters {
			if aws.ToString(cluster.Status) == inactiveEcsClusterStatus {
				continue
			}

			name := aws.ToString(cluster.ClusterName)
			if name == "" {
				// ECS accepts the ARN wherever a cluster name is expected
				name = aws.ToString(cluster.ClusterArn)
			}
			if name == "" {
				logging.Warnf("Skipping cluster without name or ARN in %s", clusters.Scope)
				continue
			}

			if !clusters.Filter.ShouldInclude(name) {
				logging.Debugf("Excluding cluster %s by config", name)
				continue
			}
			names = append(names, name)
		}
	}

	return names, nil
}

// describeFailureMessages explains every cluster that DescribeClusters could not return.
func describeFailureMessages(failures []types.Failure) []string {
	messages := make([]string, 0, len(failures))
	for _, failure := range failures {
		arn := aws.ToString(failure.Arn)
		if arn == "" {
			arn = "unknown cluster"
		}
		messages = append(messages, fmt.Sprintf("%s: %s", arn, failureReason(failure)))
	}
	return messages
}

// Nuke runs the teardown of every cluster through the batch executor, one operation per cluster.
func (clusters ECSClusters) Nuke(ctx context.Context, identifiers []string) resource.Outcomes {
	ops := make([]resource.Operation, 0, len(identifiers))
	for _, name := range identifiers {
		ops = append(ops, resource.Operation{
			Identifier: name,
			Run: func(ctx context.Context) error {
				return clusters.teardown(ctx, name)
			},
		})
	}

	return resource.NewBatchExecutor(clusters.ResourceName(), clusters.Scope).Execute(ctx, ops)
}

// teardown drains and deletes each service of the cluster in turn and then deletes the cluster.
// The first failure stops the sequence and leaves the cluster in place.
func (clusters ECSClusters) teardown(ctx context.Context, cluster string) error {
	services, err := clusters.describeServices(ctx, cluster)
	if err != nil {
		return resource.StepError{Identifier: cluster, Step: "list services", Index: 1, Underlying: err}
	}

	steps := make([]resource.Step, 0, len(services)*2+1)
	for _, service := range services {
		steps = append(steps, service.steps(clusters.Client, cluster)...)
	}
	steps = append(steps, resource.Step{
		Name: "delete cluster",
		Run: func(ctx context.Context) error {
			return clusters.deleteCluster(ctx, cluster)
		},
	})

	logging.Debugf("Tearing down cluster %s with %d services", cluster, len(services))
	return resource.RunSteps(ctx, cluster, steps...)
}

func (clusters ECSClusters) deleteCluster(ctx context.Context, cluster string) error {
	resp, err := clusters.Client.DeleteCluster(ctx, &ecs.DeleteClusterInput{
		Cluster: aws.String(cluster),
	})
	if err != nil {
		var notFound *types.ClusterNotFoundException
		if errors.As(err, &notFound) {
			logging.Debugf("Cluster %s already deleted", cluster)
			return nil
		}
		return commonErrors.WithStackTrace(err)
	}
	if resp == nil || resp.Cluster == nil || resp.Cluster.ClusterName == nil {
		return MalformedResponseError{Operation: "DeleteCluster", Field: "cluster.clusterName"}
	}

	logging.Debugf("Deleted cluster %s", aws.ToString(resp.Cluster.ClusterName))
	return nil
}
