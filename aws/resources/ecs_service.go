package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/resource"
	"github.com/gruntwork-io/ecs-nuke/util"
	commonErrors "github.com/gruntwork-io/go-commons/errors"
)

// DescribeServices accepts at most 10 services per call
const describeServicesRequestBatchSize = 10

// ecsService is what the cluster teardown needs to know about one of its services.
type ecsService struct {
	Arn          string
	Name         string
	DesiredCount int32
	Daemon       bool
	// Described is false when DescribeServices did not return the service.
	Described bool
}

// needsScaleDown reports whether the service must be set to zero tasks before it can be deleted.
// Daemon services have no desired count to change. Services that could not be described are
// scaled down to be safe.
func (s ecsService) needsScaleDown() bool {
	if !s.Described {
		return true
	}
	return !s.Daemon && s.DesiredCount > 0
}

func (s ecsService) label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Arn
}

// describeServices lists every service in cluster and looks up its desired count and scheduling
// strategy, preserving the listing order.
func (clusters ECSClusters) describeServices(ctx context.Context, cluster string) ([]ecsService, error) {
	serviceArns, err := Collect(ListServiceArns(ctx, clusters.Client, cluster))
	if err != nil {
		return nil, err
	}

	described := map[string]types.Service{}
	for _, batch := range util.Split(serviceArns, describeServicesRequestBatchSize) {
		resp, err := clusters.Client.DescribeServices(ctx, &ecs.DescribeServicesInput{
			Cluster:  aws.String(cluster),
			Services: batch,
		})
		if err != nil {
			return nil, commonErrors.WithStackTrace(err)
		}
		for _, service := range resp.Services {
			described[aws.ToString(service.ServiceArn)] = service
		}
	}

	services := make([]ecsService, 0, len(serviceArns))
	for _, arn := range serviceArns {
		service := ecsService{Arn: arn}
		if details, ok := described[arn]; ok {
			service.Name = aws.ToString(details.ServiceName)
			service.DesiredCount = details.DesiredCount
			service.Daemon = details.SchedulingStrategy == types.SchedulingStrategyDaemon
			service.Described = true
		}
		services = append(services, service)
	}
	return services, nil
}

// steps returns the scale down (when needed) and delete steps for the service.
func (s ecsService) steps(client ECSAPI, cluster string) []resource.Step {
	var steps []resource.Step
	if s.needsScaleDown() {
		steps = append(steps, resource.Step{
			Name: fmt.Sprintf("scale down service %s", s.label()),
			Run: func(ctx context.Context) error {
				return scaleDownService(ctx, client, cluster, s.Arn)
			},
		})
	}
	return append(steps, resource.Step{
		Name: fmt.Sprintf("delete service %s", s.label()),
		Run: func(ctx context.Context) error {
			return deleteService(ctx, client, cluster, s.Arn, s.Daemon)
		},
	})
}

func scaleDownService(ctx context.Context, client ECSAPI, cluster string, service string) error {
	resp, err := client.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:      aws.String(cluster),
		Service:      aws.String(service),
		DesiredCount: aws.Int32(0),
	})
	if err != nil {
		return commonErrors.WithStackTrace(err)
	}
	if resp == nil || resp.Service == nil {
		return MalformedResponseError{Operation: "UpdateService", Field: "service"}
	}

	logging.Debugf("Scaled service %s down to 0 tasks", service)
	return nil
}

func deleteService(ctx context.Context, client ECSAPI, cluster string, service string, force bool) error {
	input := &ecs.DeleteServiceInput{
		Cluster: aws.String(cluster),
		Service: aws.String(service),
	}
	if force {
		input.Force = aws.Bool(true)
	}

	resp, err := client.DeleteService(ctx, input)
	if err != nil {
		var notFound *types.ServiceNotFoundException
		if errors.As(err, &notFound) {
			logging.Debugf("Service %s already deleted", service)
			return nil
		}
		return commonErrors.WithStackTrace(err)
	}
	if resp == nil || resp.Service == nil {
		return MalformedResponseError{Operation: "DeleteService", Field: "service"}
	}

	logging.Debugf("Deleted service %s", service)
	return nil
}
