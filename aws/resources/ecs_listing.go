package resources

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	commonErrors "github.com/gruntwork-io/go-commons/errors"
)

// ErrSequenceConsumed is yielded when a listing sequence is ranged over a second time.
var ErrSequenceConsumed = errors.New("listing sequence already consumed")

// pagedSeq adapts a paginated ECS list call into a lazy sequence. Pages are fetched only as the
// consumer advances, and the first error ends the sequence. The sequence can be ranged over once.
func pagedSeq(hasMore func() bool, next func() ([]string, error)) iter.Seq2[string, error] {
	var used atomic.Bool
	return func(yield func(string, error) bool) {
		if used.Swap(true) {
			yield("", ErrSequenceConsumed)
			return
		}
		for hasMore() {
			page, err := next()
			if err != nil {
				yield("", commonErrors.WithStackTrace(err))
				return
			}
			for _, id := range page {
				if !yield(id, nil) {
					return
				}
			}
		}
	}
}

// ListClusterArns lists every cluster ARN in the client's region.
func ListClusterArns(ctx context.Context, client ecs.ListClustersAPIClient) iter.Seq2[string, error] {
	paginator := ecs.NewListClustersPaginator(client, &ecs.ListClustersInput{})
	return pagedSeq(paginator.HasMorePages, func() ([]string, error) {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		return page.ClusterArns, nil
	})
}

// ListServiceArns lists the ARNs of every service in cluster.
func ListServiceArns(ctx context.Context, client ecs.ListServicesAPIClient, cluster string) iter.Seq2[string, error] {
	paginator := ecs.NewListServicesPaginator(client, &ecs.ListServicesInput{
		Cluster: aws.String(cluster),
	})
	return pagedSeq(paginator.HasMorePages, func() ([]string, error) {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		return page.ServiceArns, nil
	})
}

// ListTaskDefinitionArns lists task definition ARNs, optionally restricted to status. An empty
// status leaves the filter to the API default, which only returns ACTIVE revisions.
func ListTaskDefinitionArns(ctx context.Context, client ecs.ListTaskDefinitionsAPIClient, status types.TaskDefinitionStatus) iter.Seq2[string, error] {
	paginator := ecs.NewListTaskDefinitionsPaginator(client, &ecs.ListTaskDefinitionsInput{
		Status: status,
	})
	return pagedSeq(paginator.HasMorePages, func() ([]string, error) {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		return page.TaskDefinitionArns, nil
	})
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var ids []string
	for id, err := range seq {
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
