package commands

import (
	"context"

	"github.com/gruntwork-io/ecs-nuke/aws"
	"github.com/gruntwork-io/ecs-nuke/config"
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/renderers"
	"github.com/gruntwork-io/ecs-nuke/telemetry"
	"github.com/gruntwork-io/ecs-nuke/ui"
	"github.com/gruntwork-io/go-commons/errors"
	commonTelemetry "github.com/gruntwork-io/go-commons/telemetry"
	"github.com/urfave/cli/v2"
)

// newClientProvider builds the AWS client provider for a run. Tests replace it.
var newClientProvider = func(creds config.Credentials) aws.ClientProvider {
	return aws.StaticCredentialsProvider{Credentials: creds}
}

// ecsNuke is the command handler. Flags and credentials are validated before any AWS call is
// made, then the selected teardown runs and the collected report is rendered.
func ecsNuke(c *cli.Context) error {
	telemetry.TrackEvent(commonTelemetry.EventContext{
		EventName: telemetry.EventStart,
	}, map[string]interface{}{})

	if err := parseLogLevel(c); err != nil {
		return err
	}

	selection, err := parseSelection(c)
	if err != nil {
		return err
	}

	outputFormat := c.String(FlagOutputFormat)
	if err := validateOutputFormat(outputFormat); err != nil {
		return err
	}

	creds, err := config.LoadCredentials(c.String(FlagEnvFile))
	if err != nil {
		return err
	}

	configObj, err := loadConfigFile(c.String(FlagConfig))
	if err != nil {
		return errors.WithStackTrace(err)
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	provider := newClientProvider(creds)

	accountID, err := aws.LookupAccountID(ctx, provider, creds.Region)
	if err != nil {
		logging.Warnf("Unable to determine the AWS account: %v", err)
	} else {
		logging.Infof("Running against AWS account %s", accountID)
		telemetry.SetAccountId(accountID)
	}

	dryRun := c.Bool(FlagDryRun)
	jsonConfig := renderers.JSONRendererConfig{
		Action: string(selection.Action),
		Scope:  string(selection.Scope),
		DryRun: dryRun,
	}
	if selection.Scope == aws.ScopeSingle {
		jsonConfig.Regions = []string{creds.Region}
	}

	collector, cleanup, err := setupReporting(outputFormat, c.String(FlagOutputFile), jsonConfig)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	if dryRun {
		telemetry.TrackEvent(commonTelemetry.EventContext{
			EventName: telemetry.EventDryRun,
		}, map[string]interface{}{})
		logging.Info("Not deleting anything as dry-run is set to true.")
	}

	interactive := ui.Interactive(outputFormat)
	if interactive {
		ui.AnnounceRun(string(selection.Action), string(selection.Scope), dryRun)
	}

	runner := aws.Runner{
		Provider:      provider,
		DefaultRegion: creds.Region,
		RegionsFile:   c.String(FlagRegionsFile),
		AccountID:     accountID,
		Config:        configObj,
		Collector:     collector,
		DryRun:        dryRun,
		ShowProgress:  interactive,
	}
	runErr := runner.Run(ctx, selection)
	renderErr := cleanup()

	telemetry.TrackEvent(commonTelemetry.EventContext{
		EventName: telemetry.EventComplete,
	}, map[string]interface{}{
		"action": string(selection.Action),
		"scope":  string(selection.Scope),
		"failed": runErr != nil,
	})

	if runErr != nil {
		return errors.WithStackTrace(runErr)
	}
	return renderErr
}
