package main

import (
	"github.com/robotalks/mazebot/pkg/classify"
	"github.com/robotalks/mazebot/pkg/cli/sh"
	"github.com/robotalks/mazebot/pkg/env"
	"github.com/robotalks/mazebot/pkg/maneuver"
	"github.com/robotalks/mazebot/pkg/sim"
	"github.com/robotalks/mazebot/pkg/telemetry"
	"github.com/robotalks/mazebot/pkg/vision"

	_ "github.com/robotalks/mazebot/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
	sim.SetupFlags()
	maneuver.SetupFlags()
	vision.SetupFlags()
	telemetry.SetupFlags()
	classify.SetupFlags()
}

func main() {
	sh.Main()
}
