package aws

import (
	"context"
	"strings"

	"github.com/gruntwork-io/ecs-nuke/aws/resources"
	"github.com/gruntwork-io/ecs-nuke/config"
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/progressbar"
	"github.com/gruntwork-io/ecs-nuke/reporting"
	"github.com/gruntwork-io/ecs-nuke/resource"
	"github.com/gruntwork-io/go-commons/collections"
	"github.com/gruntwork-io/go-commons/errors"
)

// Action is the teardown to perform.
type Action string

const (
	ActionDeleteClusters                Action = "delete-clusters"
	ActionDeregisterTaskDefinitions     Action = "deregister-task-definitions"
	ActionDeleteInactiveTaskDefinitions Action = "delete-inactive-task-definitions"
)

// RegionScope is where an action runs: the default region of the credentials, or every region
// listed in the regions file.
type RegionScope string

const (
	ScopeSingle RegionScope = "single"
	ScopeMulti  RegionScope = "multi"
)

func Actions() []string {
	return []string{
		string(ActionDeleteClusters),
		string(ActionDeregisterTaskDefinitions),
		string(ActionDeleteInactiveTaskDefinitions),
	}
}

func RegionScopes() []string {
	return []string{string(ScopeSingle), string(ScopeMulti)}
}

func ParseAction(value string) (Action, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if !collections.ListContainsElement(Actions(), value) {
		return "", errors.WithStackTrace(InvalidActionError{Value: value})
	}
	return Action(value), nil
}

func ParseRegionScope(value string) (RegionScope, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if !collections.ListContainsElement(RegionScopes(), value) {
		return "", errors.WithStackTrace(InvalidScopeError{Value: value})
	}
	return RegionScope(value), nil
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}

// Selection is one action paired with one region scope.
type Selection struct {
	Action Action
	Scope  RegionScope
}

// Runner dispatches a Selection to the matching pipeline.
type Runner struct {
	Provider ClientProvider
	// DefaultRegion is used for ScopeSingle.
	DefaultRegion string
	// RegionsFile is read for ScopeMulti.
	RegionsFile string
	AccountID   string
	Config      config.Config
	Collector   *reporting.Collector
	DryRun      bool
	// ShowProgress draws spinners and progress bars. Only set it for interactive terminals.
	ShowProgress bool
}

// Run executes sel. With ScopeSingle the pipeline error of the default region is returned as is.
// With ScopeMulti every listed region runs in order and region failures are only logged and reported.
func (r Runner) Run(ctx context.Context, sel Selection) error {
	regions, err := r.regionsFor(sel.Scope)
	if err != nil {
		return err
	}

	clients, err := NewRegionClients(ctx, r.Provider, regions)
	if err != nil {
		return err
	}

	// a spinner would fight with the region progress bar
	showSpinner := r.ShowProgress && sel.Scope == ScopeSingle
	pipeline := func(ctx context.Context, client RegionClient) error {
		nukeable, err := r.nukeableFor(sel.Action, client)
		if err != nil {
			return err
		}
		return r.nukeInRegion(ctx, nukeable, client.Region, showSpinner)
	}

	logging.Infof("Running %s in %d region(s)", sel.Action, len(clients))

	if sel.Scope == ScopeSingle {
		client := clients[0]
		if err := pipeline(ctx, client); err != nil {
			logging.Errorf("[Failed] region %s: %s", client.Region, err)
			r.Collector.RecordError("", client.Region, "region pipeline failed", err)
			return err
		}
		return nil
	}

	bar := progressbar.StartProgressBarWithLength("Processing regions", len(clients), r.ShowProgress)
	defer bar.Stop()
	return RunInRegions(ctx, clients, func(ctx context.Context, client RegionClient) error {
		bar.UpdateTitle("Processing " + client.Region)
		defer bar.Increment()
		return pipeline(ctx, client)
	}, r.Collector)
}

func (r Runner) regionsFor(scope RegionScope) ([]string, error) {
	switch scope {
	case ScopeSingle:
		if r.DefaultRegion == "" {
			return nil, errors.WithStackTrace(config.MissingCredentialError{Name: config.EnvRegion})
		}
		return []string{r.DefaultRegion}, nil
	case ScopeMulti:
		regions, err := config.ReadRegionsFile(r.RegionsFile)
		if err != nil {
			return nil, err
		}
		logging.Infof("Read %d region(s) from %s", len(regions), r.RegionsFile)
		return regions, nil
	default:
		return nil, errors.WithStackTrace(InvalidScopeError{Value: string(scope)})
	}
}

func (r Runner) nukeableFor(action Action, client RegionClient) (resources.Nukeable, error) {
	scope := resource.Scope{Region: client.Region, AccountID: r.AccountID}

	switch action {
	case ActionDeleteClusters:
		return resources.ECSClusters{Client: client.ECS, Scope: scope, Filter: r.Config.ECSCluster}, nil
	case ActionDeregisterTaskDefinitions:
		return resources.ECSTaskDefinitions{Client: client.ECS, Scope: scope, Filter: r.Config.ECSTaskDefinition}, nil
	case ActionDeleteInactiveTaskDefinitions:
		return resources.ECSInactiveTaskDefinitions{Client: client.ECS, Scope: scope, Filter: r.Config.ECSTaskDefinition}, nil
	default:
		return nil, errors.WithStackTrace(InvalidActionError{Value: string(action)})
	}
}
