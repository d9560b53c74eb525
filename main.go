package main

import (
	"github.com/gruntwork-io/ecs-nuke/commands"
	"github.com/gruntwork-io/ecs-nuke/telemetry"
	"github.com/gruntwork-io/go-commons/entrypoint"
)

// VERSION - Set at build time
var VERSION string

// TelemetryClientId - Set at build time. Telemetry stays off when empty.
var TelemetryClientId string

func main() {
	telemetry.InitTelemetry("ecs-nuke", VERSION, TelemetryClientId)
	app := commands.CreateCli(VERSION)
	entrypoint.RunApp(app)
}
