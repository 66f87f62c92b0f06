// Package mission sequences the maneuvers of the competition course.
//
// The mission path is the only writer of the behavior label and runs one
// step at a time; every step blocks until its maneuver completes.
package mission

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/robotalks/mazebot/pkg/classify"
	"github.com/robotalks/mazebot/pkg/framework"
	"github.com/robotalks/mazebot/pkg/hw"
	"github.com/robotalks/mazebot/pkg/maneuver"
	"github.com/robotalks/mazebot/pkg/telemetry"
	"github.com/robotalks/mazebot/pkg/vision"
)

// Mission owns the components used by the course.
type Mission struct {
	Pilot      *maneuver.Pilot
	Status     *telemetry.Status
	Vision     *vision.Client
	Classifier *classify.Classifier
	// TimeScale multiplies the waits and timed moves of steps.
	TimeScale float64
	// RunID identifies the latest Run in logs.
	RunID string
}

// Step is one entry of a course.
type Step struct {
	Name string
	// Wait is the pause before the step.
	Wait time.Duration
	// Behavior is reported from the start of Do, 0 keeps the current one.
	Behavior telemetry.Behavior
	Do       func(*Mission)
}

// Run executes steps in order.
func (m *Mission) Run(steps []Step) {
	m.RunID = uuid.NewString()
	glog.Infof("run %s: %d steps", m.RunID, len(steps))
	for n, step := range steps {
		m.Sleep(step.Wait)
		if step.Behavior != 0 {
			m.Status.SetBehavior(step.Behavior)
		}
		glog.Infof("run %s: step %d/%d %s [%s]", m.RunID, n+1, len(steps), step.Name, m.Status.Behavior())
		if step.Do != nil {
			step.Do(m)
		}
	}
}

// Scaled applies TimeScale to d.
func (m *Mission) Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * m.TimeScale)
}

// Sleep sleeps for the scaled duration.
func (m *Mission) Sleep(d time.Duration) {
	if d = m.Scaled(d); d > 0 {
		time.Sleep(d)
	}
}

// Matrix fetches the vision matrix. A missing reply is logged and the
// course continues.
func (m *Mission) Matrix() {
	if _, err := m.Vision.Matrix(); err != nil {
		glog.Warningf("matrix: %v", err)
	}
}

// Identification fetches the vision identification.
func (m *Mission) Identification() {
	if _, err := m.Vision.Identification(); err != nil {
		glog.Warningf("identification: %v", err)
	}
}

// Classify classifies the obstacle in front.
func (m *Mission) Classify() {
	if _, err := m.Classifier.Run(); err != nil {
		glog.Errorf("classify: %v", err)
	}
}

// Halt stops drive when the runner is canceled. Maneuvers can't be
// interrupted, so this is how a running course is brought to rest.
func Halt(drive hw.Drive) framework.Runnable {
	return framework.NamedRun("halt", framework.RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		glog.Info("halt")
		drive.Stop()
		return ctx.Err()
	}))
}
