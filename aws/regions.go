package aws

import (
	"context"
	"fmt"

	"github.com/gruntwork-io/ecs-nuke/aws/resources"
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/reporting"
	"github.com/gruntwork-io/ecs-nuke/spinner"
	"github.com/gruntwork-io/ecs-nuke/telemetry"
	"github.com/gruntwork-io/ecs-nuke/util"
	"github.com/gruntwork-io/go-commons/errors"
	commonTelemetry "github.com/gruntwork-io/go-commons/telemetry"
)

// RegionPipeline runs a teardown against a single region.
type RegionPipeline func(ctx context.Context, client RegionClient) error

// RunInRegions runs pipeline against each client in order, one region at a time. A failing
// region is logged, recorded in collector and tracked, and the next region still runs. Region
// failures are not returned: the only error is a cancelled ctx, which stops the run before the
// next region.
func RunInRegions(ctx context.Context, clients []RegionClient, pipeline RegionPipeline, collector *reporting.Collector) error {
	failed := 0
	for _, client := range clients {
		if err := ctx.Err(); err != nil {
			return errors.WithStackTrace(err)
		}

		logging.Infof("Processing region %s", client.Region)
		if err := pipeline(ctx, client); err != nil {
			failed++
			logging.Errorf("[Failed] region %s: %s", client.Region, err)
			collector.RecordError("", client.Region, "region pipeline failed", err)
			telemetry.TrackEvent(commonTelemetry.EventContext{
				EventName: telemetry.EventRegionFailed,
			}, map[string]interface{}{
				"region": client.Region,
			})
		}
	}

	if failed > 0 {
		logging.Warnf("%d of %d region(s) failed", failed, len(clients))
	}
	return nil
}

// nukeInRegion lists what nukeable targets and, unless DryRun is set, tears it all down. Only a
// listing failure is returned; per-resource failures are logged and reported.
func (r Runner) nukeInRegion(ctx context.Context, nukeable resources.Nukeable, region string, showSpinner bool) error {
	resourceName := nukeable.ResourceName()
	collector := r.Collector

	spin := spinner.Start(fmt.Sprintf("Retrieving %s resources in %s", resourceName, region), showSpinner)
	defer spin.Stop()

	identifiers, err := nukeable.GetAll(ctx)
	if err != nil {
		return errors.WithStackTrace(PipelineError{
			Region:     region,
			Stage:      "listing " + resourceName,
			Underlying: err,
		})
	}

	logging.Infof("Found %d %s resource(s) in %s", len(identifiers), resourceName, region)
	for _, id := range identifiers {
		collector.RecordFound(resourceName, region, id)
	}

	if len(identifiers) == 0 {
		return nil
	}
	if r.DryRun {
		logging.Infof("Dry run: not deleting %d %s resource(s) in %s", len(identifiers), resourceName, region)
		return nil
	}

	spin.UpdateText(fmt.Sprintf("Removing %d %s resource(s) in %s", len(identifiers), resourceName, region))
	outcomes := nukeable.Nuke(ctx, identifiers)
	for _, outcome := range outcomes {
		collector.RecordDeleted(resourceName, region, outcome.Identifier, util.TransformAWSError(outcome.Error))
	}

	failed := len(outcomes.Failed())
	logging.Infof("[OK] %d of %d %s resource(s) removed in %s", len(outcomes)-failed, len(outcomes), resourceName, region)
	if failed > 0 {
		logging.Errorf("%d %s resource(s) could not be removed in %s", failed, resourceName, region)
	}
	return nil
}
