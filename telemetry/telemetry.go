package telemetry

import (
	"os"
	"strings"

	"github.com/gruntwork-io/go-commons/telemetry"
)

const (
	EventStart              = "ecs-nuke-start"
	EventReadingConfig      = "ecs-nuke-reading-config"
	EventErrorReadingConfig = "ecs-nuke-error-reading-config"
	EventRegionFailed       = "ecs-nuke-region-failed"
	EventDryRun             = "ecs-nuke-dry-run"
	EventComplete           = "ecs-nuke-complete"
)

var sendTelemetry = false
var telemetryClient telemetry.MixpanelTelemetryTracker
var cmd = ""
var isCircleCi = false
var account = ""

// InitTelemetry enables tracking when a client id is compiled in and DISABLE_TELEMETRY is unset.
func InitTelemetry(name string, version string, clientId string) {
	_, disableTelemetryFlag := os.LookupEnv("DISABLE_TELEMETRY")
	isCircleCi = os.Getenv("CIRCLECI") == "true"
	clientIdExists := clientId != ""
	sendTelemetry = !disableTelemetryFlag && clientIdExists
	if sendTelemetry {
		cmd = strings.Join(os.Args[1:], " ")
		telemetryClient = telemetry.NewMixPanelTelemetryClient(clientId, name, version)
	}
}

func SetAccountId(accountId string) {
	account = accountId
}

func Enabled() bool {
	return sendTelemetry
}

func TrackEvent(ctx telemetry.EventContext, extraProperties map[string]interface{}) {
	if !sendTelemetry {
		return
	}
	if extraProperties == nil {
		extraProperties = map[string]interface{}{}
	}
	ctx.Command = cmd
	extraProperties["isCircleCi"] = isCircleCi
	extraProperties["accountId"] = account
	telemetryClient.TrackEvent(ctx, extraProperties)
}
