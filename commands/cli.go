package commands

import (
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/urfave/cli/v2"
)

// CreateCli - Create the CLI app with all flags and usage text configured.
func CreateCli(version string) *cli.App {
	app := cli.NewApp()

	app.Name = "ecs-nuke"
	app.HelpName = app.Name
	app.Authors = []*cli.Author{
		{
			Name:  "Gruntwork",
			Email: "www.gruntwork.io",
		},
	}
	app.Version = version
	app.Usage = "A CLI tool to tear down Amazon ECS clusters, services and task definitions. THIS TOOL WILL COMPLETELY REMOVE ALL TARGETED RESOURCES AND ITS EFFECTS ARE IRREVERSIBLE!!!"
	app.Flags = CombineFlags(
		SelectionFlags(),
		InputFlags(),
		ExecutionFlags(),
		OutputFlags(),
	)
	app.Action = errors.WithPanicHandling(ecsNuke)

	return app
}
