package aws

import (
	"context"
	"fmt"
	"sync"

	awsgo "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/gruntwork-io/ecs-nuke/aws/resources"
	"github.com/gruntwork-io/ecs-nuke/reporting"
	"github.com/gruntwork-io/ecs-nuke/util"
)

// fakeECS serves a fixed set of clusters and task definitions for one region.
type fakeECS struct {
	resources.ECSAPI

	region          string
	log             *callLog
	clusters        []string
	taskDefinitions map[types.TaskDefinitionStatus][]string
	listErr         error
}

func (f *fakeECS) ListClusters(ctx context.Context, params *ecs.ListClustersInput, optFns ...func(*ecs.Options)) (*ecs.ListClustersOutput, error) {
	f.log.add("%s:ListClusters", f.region)
	if f.listErr != nil {
		return nil, f.listErr
	}
	var arns []string
	for _, name := range f.clusters {
		arns = append(arns, fmt.Sprintf("arn:aws:ecs:%s:123456789012:cluster/%s", f.region, name))
	}
	return &ecs.ListClustersOutput{ClusterArns: arns}, nil
}

func (f *fakeECS) DescribeClusters(ctx context.Context, params *ecs.DescribeClustersInput, optFns ...func(*ecs.Options)) (*ecs.DescribeClustersOutput, error) {
	out := &ecs.DescribeClustersOutput{}
	for _, arn := range params.Clusters {
		name := arn[len(fmt.Sprintf("arn:aws:ecs:%s:123456789012:cluster/", f.region)):]
		out.Clusters = append(out.Clusters, types.Cluster{
			ClusterArn:  awsgo.String(arn),
			ClusterName: awsgo.String(name),
			Status:      awsgo.String("ACTIVE"),
		})
	}
	return out, nil
}

func (f *fakeECS) ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error) {
	return &ecs.ListServicesOutput{}, nil
}

func (f *fakeECS) DeleteCluster(ctx context.Context, params *ecs.DeleteClusterInput, optFns ...func(*ecs.Options)) (*ecs.DeleteClusterOutput, error) {
	f.log.add("%s:DeleteCluster(%s)", f.region, awsgo.ToString(params.Cluster))
	return &ecs.DeleteClusterOutput{Cluster: &types.Cluster{ClusterName: params.Cluster}}, nil
}

func (f *fakeECS) ListTaskDefinitions(ctx context.Context, params *ecs.ListTaskDefinitionsInput, optFns ...func(*ecs.Options)) (*ecs.ListTaskDefinitionsOutput, error) {
	f.log.add("%s:ListTaskDefinitions(%s)", f.region, params.Status)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &ecs.ListTaskDefinitionsOutput{TaskDefinitionArns: f.taskDefinitions[params.Status]}, nil
}

func (f *fakeECS) DeleteTaskDefinitions(ctx context.Context, params *ecs.DeleteTaskDefinitionsInput, optFns ...func(*ecs.Options)) (*ecs.DeleteTaskDefinitionsOutput, error) {
	f.log.add("%s:DeleteTaskDefinitions(%d)", f.region, len(params.TaskDefinitions))
	return &ecs.DeleteTaskDefinitionsOutput{}, nil
}

type fakeSTS struct {
	account string
}

func (f fakeSTS) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return &sts.GetCallerIdentityOutput{Account: awsgo.String(f.account)}, nil
}

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// fakeProvider hands out the fakeECS registered for a region.
type fakeProvider struct {
	log       *callLog
	clients   map[string]*fakeECS
	clientErr map[string]error
	requested []string
}

var _ ClientProvider = &fakeProvider{}

func newFakeProvider(regions ...string) *fakeProvider {
	log := &callLog{}
	provider := &fakeProvider{log: log, clients: map[string]*fakeECS{}, clientErr: map[string]error{}}
	for _, region := range regions {
		provider.clients[region] = &fakeECS{region: region, log: log}
	}
	return provider
}

func (p *fakeProvider) NewECSClient(ctx context.Context, region string) (resources.ECSAPI, error) {
	p.requested = append(p.requested, region)
	if err := p.clientErr[region]; err != nil {
		return nil, err
	}
	client, ok := p.clients[region]
	if !ok {
		client = &fakeECS{region: region, log: p.log}
		p.clients[region] = client
	}
	return client, nil
}

func (p *fakeProvider) NewSTSClient(ctx context.Context, region string) (util.CallerIdentityAPI, error) {
	return fakeSTS{account: "123456789012"}, nil
}

// eventRecorder keeps every event the collector routes to it.
type eventRecorder struct {
	events []reporting.Event
}

func (r *eventRecorder) OnEvent(event reporting.Event) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) Render() error {
	return nil
}

func newRecordingCollector() (*reporting.Collector, *eventRecorder) {
	recorder := &eventRecorder{}
	collector := reporting.NewCollector()
	collector.AddRenderer(recorder)
	return collector, recorder
}

func (r *eventRecorder) ofType(eventType string) []reporting.Event {
	var matching []reporting.Event
	for _, event := range r.events {
		if event.EventType() == eventType {
			matching = append(matching, event)
		}
	}
	return matching
}
