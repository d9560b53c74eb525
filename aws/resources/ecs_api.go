package resources

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/gruntwork-io/ecs-nuke/resource"
)

// ECSAPI is the subset of the ECS client the teardown pipelines call. *ecs.Client satisfies it and
// is safe to share between the concurrent operations of a region.
type ECSAPI interface {
	ListClusters(ctx context.Context, params *ecs.ListClustersInput, optFns ...func(*ecs.Options)) (*ecs.ListClustersOutput, error)
	DescribeClusters(ctx context.Context, params *ecs.DescribeClustersInput, optFns ...func(*ecs.Options)) (*ecs.DescribeClustersOutput, error)
	DeleteCluster(ctx context.Context, params *ecs.DeleteClusterInput, optFns ...func(*ecs.Options)) (*ecs.DeleteClusterOutput, error)
	ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error)
	DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error)
	UpdateService(ctx context.Context, params *ecs.UpdateServiceInput, optFns ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error)
	DeleteService(ctx context.Context, params *ecs.DeleteServiceInput, optFns ...func(*ecs.Options)) (*ecs.DeleteServiceOutput, error)
	ListTaskDefinitions(ctx context.Context, params *ecs.ListTaskDefinitionsInput, optFns ...func(*ecs.Options)) (*ecs.ListTaskDefinitionsOutput, error)
	DeregisterTaskDefinition(ctx context.Context, params *ecs.DeregisterTaskDefinitionInput, optFns ...func(*ecs.Options)) (*ecs.DeregisterTaskDefinitionOutput, error)
	DeleteTaskDefinitions(ctx context.Context, params *ecs.DeleteTaskDefinitionsInput, optFns ...func(*ecs.Options)) (*ecs.DeleteTaskDefinitionsOutput, error)
}

// Nukeable is a single region teardown pipeline for one kind of ECS resource.
type Nukeable interface {
	// ResourceName is the short name used in logs and reports.
	ResourceName() string
	// GetAll lists the identifiers to tear down. A failure here aborts the pipeline for the region.
	GetAll(ctx context.Context) ([]string, error)
	// Nuke tears down identifiers through the batch executor and reports one outcome per identifier.
	// Individual failures are carried in the outcomes and never returned as an error.
	Nuke(ctx context.Context, identifiers []string) resource.Outcomes
}
