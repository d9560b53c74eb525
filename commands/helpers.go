package commands

import (
	"github.com/gruntwork-io/ecs-nuke/aws"
	"github.com/gruntwork-io/ecs-nuke/config"
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/gruntwork-io/ecs-nuke/telemetry"
	"github.com/gruntwork-io/go-commons/collections"
	"github.com/gruntwork-io/go-commons/errors"
	commonTelemetry "github.com/gruntwork-io/go-commons/telemetry"
	"github.com/urfave/cli/v2"
)

// loadConfigFile loads and parses a config file from the given path
func loadConfigFile(configFilePath string) (config.Config, error) {
	if configFilePath == "" {
		return config.Config{}, nil
	}

	telemetry.TrackEvent(commonTelemetry.EventContext{
		EventName: telemetry.EventReadingConfig,
	}, map[string]interface{}{})

	configObjPtr, err := config.GetConfig(configFilePath)
	if err != nil {
		telemetry.TrackEvent(commonTelemetry.EventContext{
			EventName: telemetry.EventErrorReadingConfig,
		}, map[string]interface{}{})
		return config.Config{}, ConfigFileReadError{FilePath: configFilePath, Underlying: err}
	}

	return *configObjPtr, nil
}

// parseLogLevel parses and sets the log level from CLI context
func parseLogLevel(c *cli.Context) error {
	logLevel := c.String(FlagLogLevel)
	parseErr := logging.ParseLogLevel(logLevel)
	if parseErr != nil {
		return errors.WithStackTrace(InvalidLogLevelError{
			Value:      logLevel,
			Underlying: parseErr,
		})
	}
	return nil
}

// parseSelection reads the action and scope flags.
func parseSelection(c *cli.Context) (aws.Selection, error) {
	action, err := aws.ParseAction(c.String(FlagAction))
	if err != nil {
		return aws.Selection{}, errors.WithStackTrace(InvalidFlagError{Name: FlagAction, Value: c.String(FlagAction)})
	}

	scope, err := aws.ParseRegionScope(c.String(FlagScope))
	if err != nil {
		return aws.Selection{}, errors.WithStackTrace(InvalidFlagError{Name: FlagScope, Value: c.String(FlagScope)})
	}

	return aws.Selection{Action: action, Scope: scope}, nil
}

func validateOutputFormat(outputFormat string) error {
	if !collections.ListContainsElement(outputFormats, outputFormat) {
		return errors.WithStackTrace(InvalidFlagError{Name: FlagOutputFormat, Value: outputFormat})
	}
	return nil
}
