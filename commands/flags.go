package commands

import (
	"fmt"
	"strings"

	"github.com/gruntwork-io/ecs-nuke/aws"
	"github.com/gruntwork-io/ecs-nuke/config"
	"github.com/urfave/cli/v2"
)

// Default values
const (
	DefaultOutputFormat = "table"
	DefaultLogLevel     = "info"
	DefaultAction       = string(aws.ActionDeleteClusters)
	DefaultScope        = string(aws.ScopeSingle)
)

// Flag Names
const (
	FlagAction       = "action"
	FlagScope        = "scope"
	FlagEnvFile      = "env-file"
	FlagRegionsFile  = "regions-file"
	FlagConfig       = "config"
	FlagDryRun       = "dry-run"
	FlagLogLevel     = "log-level"
	FlagOutputFormat = "output-format"
	FlagOutputFile   = "output-file"
)

var outputFormats = []string{"table", "json"}

// SelectionFlags returns the flags that pick what to tear down and where
func SelectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagAction,
			Usage: fmt.Sprintf("Teardown to run (%s)", strings.Join(aws.Actions(), ", ")),
			Value: DefaultAction,
		},
		&cli.StringFlag{
			Name:  FlagScope,
			Usage: "Run in the default region of the credentials (single) or in every region of the regions file (multi)",
			Value: DefaultScope,
		},
	}
}

// InputFlags returns the flags naming the files read at startup
func InputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagEnvFile,
			Usage: "File with AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_REGION. Values already set in the environment take precedence.",
			Value: config.DefaultEnvFile,
		},
		&cli.StringFlag{
			Name:  FlagRegionsFile,
			Usage: "File listing one region per line, read when --scope is multi",
			Value: config.DefaultRegionsFile,
		},
		&cli.StringFlag{
			Name:  FlagConfig,
			Usage: "YAML file specifying matching rules.",
		},
	}
}

// ExecutionFlags returns flags for execution control
func ExecutionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  FlagDryRun,
			Usage: "List and report what would be removed without removing anything.",
		},
	}
}

// OutputFlags returns flags for output formatting
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagOutputFormat,
			Usage: "Output format (table, json)",
			Value: DefaultOutputFormat,
		},
		&cli.StringFlag{
			Name:  FlagOutputFile,
			Usage: "Write output to file instead of stdout (optional)",
		},
		&cli.StringFlag{
			Name:    FlagLogLevel,
			Value:   DefaultLogLevel,
			Usage:   "Set log level",
			EnvVars: []string{"LOG_LEVEL"},
		},
	}
}

// CombineFlags combines multiple flag slices into one
func CombineFlags(flagSets ...[]cli.Flag) []cli.Flag {
	var combined []cli.Flag
	for _, flags := range flagSets {
		combined = append(combined, flags...)
	}
	return combined
}
