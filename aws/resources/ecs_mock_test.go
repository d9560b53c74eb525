package resources

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

const testAccount = "123456789012"

func clusterArn(name string) string {
	return fmt.Sprintf("arn:aws:ecs:us-east-1:%s:cluster/%s", testAccount, name)
}

func serviceArn(cluster, name string) string {
	return fmt.Sprintf("arn:aws:ecs:us-east-1:%s:service/%s/%s", testAccount, cluster, name)
}

func taskDefinitionArn(family string, revision int) string {
	return fmt.Sprintf("arn:aws:ecs:us-east-1:%s:task-definition/%s:%d", testAccount, family, revision)
}

// lastSegment turns ARNs into short names so recorded calls stay readable.
func lastSegment(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// mockedECS is an in-memory ECS that records every call. It is safe for concurrent use.
type mockedECS struct {
	ECSAPI

	mu    sync.Mutex
	calls []string

	// ClusterPages are returned page by page from ListClusters.
	ClusterPages [][]string
	Clusters     map[string]types.Cluster
	// Services maps a cluster name to its services, in listing order.
	Services map[string][]types.Service
	// ServicePageSize splits ListServices output into pages when set.
	ServicePageSize int
	// TaskDefinitionPages maps a status filter to the pages ListTaskDefinitions returns for it.
	TaskDefinitionPages map[types.TaskDefinitionStatus][][]string

	ListClustersErr        error
	DescribeClustersErr    error
	ListServicesErr        map[string]error
	UpdateServiceErr       map[string]error
	DeleteServiceErr       map[string]error
	DeleteClusterErr       map[string]error
	DeregisterErr          map[string]error
	DeleteTaskDefsErr      error
	DeleteTaskDefsFailures map[string]string

	// EmptyDeleteClusterOutput makes DeleteCluster succeed without a cluster in the response.
	EmptyDeleteClusterOutput bool

	inFlight    int
	maxInFlight int
	batchSizes  []int
}

func (m *mockedECS) record(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

func (m *mockedECS) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// CallsMatching returns the recorded calls that start with one of prefixes, in order.
func (m *mockedECS) CallsMatching(prefixes ...string) []string {
	var matching []string
	for _, call := range m.Calls() {
		for _, prefix := range prefixes {
			if strings.HasPrefix(call, prefix) {
				matching = append(matching, call)
				break
			}
		}
	}
	return matching
}

func pageFor(pages [][]string, token *string) ([]string, *string) {
	if len(pages) == 0 {
		return nil, nil
	}
	index := 0
	if token != nil {
		index, _ = strconv.Atoi(*token)
	}
	var next *string
	if index+1 < len(pages) {
		next = aws.String(strconv.Itoa(index + 1))
	}
	return pages[index], next
}

func (m *mockedECS) ListClusters(ctx context.Context, params *ecs.ListClustersInput, optFns ...func(*ecs.Options)) (*ecs.ListClustersOutput, error) {
	m.record("ListClusters(%s)", aws.ToString(params.NextToken))
	if m.ListClustersErr != nil {
		return nil, m.ListClustersErr
	}
	arns, next := pageFor(m.ClusterPages, params.NextToken)
	return &ecs.ListClustersOutput{ClusterArns: arns, NextToken: next}, nil
}

func (m *mockedECS) DescribeClusters(ctx context.Context, params *ecs.DescribeClustersInput, optFns ...func(*ecs.Options)) (*ecs.DescribeClustersOutput, error) {
	m.record("DescribeClusters(%d)", len(params.Clusters))
	if m.DescribeClustersErr != nil {
		return nil, m.DescribeClustersErr
	}
	out := &ecs.DescribeClustersOutput{}
	for _, arn := range params.Clusters {
		if cluster, ok := m.Clusters[arn]; ok {
			out.Clusters = append(out.Clusters, cluster)
			continue
		}
		out.Failures = append(out.Failures, types.Failure{Arn: aws.String(arn), Reason: aws.String("MISSING")})
	}
	return out, nil
}

func (m *mockedECS) DeleteCluster(ctx context.Context, params *ecs.DeleteClusterInput, optFns ...func(*ecs.Options)) (*ecs.DeleteClusterOutput, error) {
	cluster := aws.ToString(params.Cluster)
	m.record("DeleteCluster(%s)", cluster)
	if err := m.DeleteClusterErr[cluster]; err != nil {
		return nil, err
	}
	if m.EmptyDeleteClusterOutput {
		return &ecs.DeleteClusterOutput{}, nil
	}
	return &ecs.DeleteClusterOutput{Cluster: &types.Cluster{ClusterName: aws.String(cluster)}}, nil
}

func (m *mockedECS) ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error) {
	cluster := aws.ToString(params.Cluster)
	m.record("ListServices(%s,%s)", cluster, aws.ToString(params.NextToken))
	if err := m.ListServicesErr[cluster]; err != nil {
		return nil, err
	}

	var arns []string
	for _, service := range m.Services[cluster] {
		arns = append(arns, aws.ToString(service.ServiceArn))
	}
	pageSize := m.ServicePageSize
	if pageSize <= 0 {
		pageSize = len(arns) + 1
	}
	var pages [][]string
	for len(arns) > 0 {
		n := pageSize
		if n > len(arns) {
			n = len(arns)
		}
		pages = append(pages, arns[:n])
		arns = arns[n:]
	}
	page, next := pageFor(pages, params.NextToken)
	return &ecs.ListServicesOutput{ServiceArns: page, NextToken: next}, nil
}

func (m *mockedECS) DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	cluster := aws.ToString(params.Cluster)
	m.record("DescribeServices(%s,%d)", cluster, len(params.Services))
	out := &ecs.DescribeServicesOutput{}
	for _, arn := range params.Services {
		for _, service := range m.Services[cluster] {
			if aws.ToString(service.ServiceArn) == arn {
				out.Services = append(out.Services, service)
			}
		}
	}
	return out, nil
}

func (m *mockedECS) UpdateService(ctx context.Context, params *ecs.UpdateServiceInput, optFns ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error) {
	service := lastSegment(aws.ToString(params.Service))
	m.record("UpdateService(%s/%s,%d)", aws.ToString(params.Cluster), service, aws.ToInt32(params.DesiredCount))
	if err := m.UpdateServiceErr[service]; err != nil {
		return nil, err
	}
	return &ecs.UpdateServiceOutput{Service: &types.Service{ServiceName: aws.String(service)}}, nil
}

func (m *mockedECS) DeleteService(ctx context.Context, params *ecs.DeleteServiceInput, optFns ...func(*ecs.Options)) (*ecs.DeleteServiceOutput, error) {
	service := lastSegment(aws.ToString(params.Service))
	force := ""
	if aws.ToBool(params.Force) {
		force = ",force"
	}
	m.record("DeleteService(%s/%s%s)", aws.ToString(params.Cluster), service, force)
	if err := m.DeleteServiceErr[service]; err != nil {
		return nil, err
	}
	return &ecs.DeleteServiceOutput{Service: &types.Service{ServiceName: aws.String(service)}}, nil
}

func (m *mockedECS) ListTaskDefinitions(ctx context.Context, params *ecs.ListTaskDefinitionsInput, optFns ...func(*ecs.Options)) (*ecs.ListTaskDefinitionsOutput, error) {
	m.record("ListTaskDefinitions(%s,%s)", params.Status, aws.ToString(params.NextToken))
	page, next := pageFor(m.TaskDefinitionPages[params.Status], params.NextToken)
	return &ecs.ListTaskDefinitionsOutput{TaskDefinitionArns: page, NextToken: next}, nil
}

func (m *mockedECS) DeregisterTaskDefinition(ctx context.Context, params *ecs.DeregisterTaskDefinitionInput, optFns ...func(*ecs.Options)) (*ecs.DeregisterTaskDefinitionOutput, error) {
	arn := aws.ToString(params.TaskDefinition)
	m.record("DeregisterTaskDefinition(%s)", lastSegment(arn))
	if err := m.DeregisterErr[arn]; err != nil {
		return nil, err
	}
	return &ecs.DeregisterTaskDefinitionOutput{
		TaskDefinition: &types.TaskDefinition{TaskDefinitionArn: aws.String(arn), Status: types.TaskDefinitionStatusInactive},
	}, nil
}

func (m *mockedECS) DeleteTaskDefinitions(ctx context.Context, params *ecs.DeleteTaskDefinitionsInput, optFns ...func(*ecs.Options)) (*ecs.DeleteTaskDefinitionsOutput, error) {
	m.mu.Lock()
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	m.batchSizes = append(m.batchSizes, len(params.TaskDefinitions))
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	m.record("DeleteTaskDefinitions(%d)", len(params.TaskDefinitions))
	if m.DeleteTaskDefsErr != nil {
		return nil, m.DeleteTaskDefsErr
	}

	out := &ecs.DeleteTaskDefinitionsOutput{}
	for _, arn := range params.TaskDefinitions {
		if reason, failed := m.DeleteTaskDefsFailures[arn]; failed {
			out.Failures = append(out.Failures, types.Failure{Arn: aws.String(arn), Reason: aws.String(reason)})
			continue
		}
		out.TaskDefinitions = append(out.TaskDefinitions, types.TaskDefinition{TaskDefinitionArn: aws.String(arn)})
	}
	return out, nil
}

// activeCluster returns a described ACTIVE cluster named name.
func activeCluster(name string) types.Cluster {
	return types.Cluster{
		ClusterArn:  aws.String(clusterArn(name)),
		ClusterName: aws.String(name),
		Status:      aws.String("ACTIVE"),
	}
}

func replicaService(cluster, name string, desired int32) types.Service {
	return types.Service{
		ServiceArn:         aws.String(serviceArn(cluster, name)),
		ServiceName:        aws.String(name),
		DesiredCount:       desired,
		SchedulingStrategy: types.SchedulingStrategyReplica,
	}
}
