package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	"github.com/golang/glog"

	"github.com/robotalks/mazebot/pkg/classify"
	"github.com/robotalks/mazebot/pkg/env"
	"github.com/robotalks/mazebot/pkg/framework"
	"github.com/robotalks/mazebot/pkg/hw"
	"github.com/robotalks/mazebot/pkg/maneuver"
	"github.com/robotalks/mazebot/pkg/mission"
	"github.com/robotalks/mazebot/pkg/sim"
	"github.com/robotalks/mazebot/pkg/telemetry"
	"github.com/robotalks/mazebot/pkg/vision"
)

func init() {
	env.SetupFlags()
	sim.SetupFlags()
	maneuver.SetupFlags()
	vision.SetupFlags()
	telemetry.SetupFlags()
	classify.SetupFlags()
	mission.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	e := env.NewConfig().MustNewEnv()
	defer e.Close()

	car := sim.NewConfig().NewCar()
	status := telemetry.NewStatus(e.Radio, hw.IndicatorFunc(func(on bool) {
		glog.V(2).Infof("indicator %v", on)
	}))
	pilot := maneuver.NewConfig().NewPilot(car, car, car.Left, car.Right)
	m := mission.NewConfig().NewMission(pilot, status, vision.NewConfig().NewClient(e.Vision, status))

	runner := framework.NewRunner().HandleSignals().
		Go(car, telemetry.NewConfig().NewReporter(status), mission.Halt(car)).
		Go(e.Runnables()...)

	// the course ends driving, it keeps going until interrupted
	go func() {
		m.Run(mission.Course())
		glog.Info("course completed")
	}()
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
