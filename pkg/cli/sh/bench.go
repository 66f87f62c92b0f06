package sh

import (
	"github.com/golang/glog"

	"github.com/robotalks/mazebot/pkg/classify"
	"github.com/robotalks/mazebot/pkg/env"
	"github.com/robotalks/mazebot/pkg/framework"
	"github.com/robotalks/mazebot/pkg/hw"
	"github.com/robotalks/mazebot/pkg/maneuver"
	"github.com/robotalks/mazebot/pkg/sim"
	"github.com/robotalks/mazebot/pkg/telemetry"
	"github.com/robotalks/mazebot/pkg/vision"
)

// Bench is the set of components exercised by shell commands.
type Bench struct {
	Env        *env.Env
	Car        *sim.Car
	Status     *telemetry.Status
	Reporter   *telemetry.Reporter
	Pilot      *maneuver.Pilot
	Vision     *vision.Client
	Classifier *classify.Classifier
}

// NewBench wires the components on a simulated car.
func NewBench(e *env.Env, car *sim.Car) *Bench {
	status := telemetry.NewStatus(e.Radio, hw.IndicatorFunc(func(on bool) {
		glog.V(2).Infof("indicator %v", on)
	}))
	pilot := maneuver.Default().NewPilot(car, car, car.Left, car.Right)
	return &Bench{
		Env:        e,
		Car:        car,
		Status:     status,
		Reporter:   telemetry.Default().NewReporter(status),
		Pilot:      pilot,
		Vision:     vision.Default().NewClient(e.Vision, status),
		Classifier: classify.New(pilot, status),
	}
}

// Runnables returns the background components, telemetry is included when
// report is true.
func (b *Bench) Runnables(report bool) []framework.Runnable {
	runnables := append([]framework.Runnable{b.Car}, b.Env.Runnables()...)
	if report {
		runnables = append(runnables, b.Reporter)
	}
	return runnables
}
