package aws

import (
	"context"

	awsgo "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/gruntwork-io/ecs-nuke/aws/resources"
	"github.com/gruntwork-io/ecs-nuke/config"
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/util"
	"github.com/gruntwork-io/go-commons/errors"
)

// ClientProvider builds the AWS clients a run needs. Tests substitute their own implementation.
type ClientProvider interface {
	NewECSClient(ctx context.Context, region string) (resources.ECSAPI, error)
	NewSTSClient(ctx context.Context, region string) (util.CallerIdentityAPI, error)
}

// StaticCredentialsProvider builds clients from explicit credentials. Nothing is read from or
// written to the process environment or the shared AWS config files.
type StaticCredentialsProvider struct {
	Credentials config.Credentials
}

var _ ClientProvider = StaticCredentialsProvider{}

// AwsConfig returns an aws.Config for region that signs with the provider's static credentials.
func (p StaticCredentialsProvider) AwsConfig(ctx context.Context, region string) (awsgo.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		p.Credentials.AccessKeyID,
		p.Credentials.SecretAccessKey,
		p.Credentials.SessionToken,
	)
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return awsgo.Config{}, errors.WithStackTrace(err)
	}
	return cfg, nil
}

func (p StaticCredentialsProvider) NewECSClient(ctx context.Context, region string) (resources.ECSAPI, error) {
	cfg, err := p.AwsConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return ecs.NewFromConfig(cfg), nil
}

func (p StaticCredentialsProvider) NewSTSClient(ctx context.Context, region string) (util.CallerIdentityAPI, error) {
	cfg, err := p.AwsConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return sts.NewFromConfig(cfg), nil
}

// RegionClient is an ECS client bound to one region.
type RegionClient struct {
	Region string
	ECS    resources.ECSAPI
}

// NewRegionClients builds one ECS client per region, in order. Clients are built before any
// region is touched, so a construction failure aborts the run without side effects.
func NewRegionClients(ctx context.Context, provider ClientProvider, regions []string) ([]RegionClient, error) {
	clients := make([]RegionClient, 0, len(regions))
	for _, region := range regions {
		client, err := provider.NewECSClient(ctx, region)
		if err != nil {
			return nil, errors.WithStackTrace(ClientConstructionError{Region: region, Underlying: err})
		}
		logging.Debugf("Created ECS client for region %s", region)
		clients = append(clients, RegionClient{Region: region, ECS: client})
	}
	return clients, nil
}

// LookupAccountID resolves the account the credentials belong to. It is only used to label logs
// and reports, so callers treat a failure as a warning.
func LookupAccountID(ctx context.Context, provider ClientProvider, region string) (string, error) {
	client, err := provider.NewSTSClient(ctx, region)
	if err != nil {
		return "", err
	}
	return util.GetCurrentAccountId(ctx, client)
}
