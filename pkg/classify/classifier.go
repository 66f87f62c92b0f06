package classify

import (
	"flag"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/mazebot/pkg/maneuver"
	"github.com/robotalks/mazebot/pkg/telemetry"
)

// ProfileTag is the radio line preceding a classification result.
const ProfileTag = "80663"

// Motion defines the swing used to sample a profile.
type Motion struct {
	Speed     float64
	Curvature float64
	// SwingOut is the turn from baseline to one side.
	SwingOut time.Duration
	// SwingAcross is the turn from one side to the other.
	SwingAcross time.Duration
	// Pause lets the car settle before sampling.
	Pause time.Duration
}

// DefaultMotion is the tuned swing.
var DefaultMotion = Motion{
	Speed:       30,
	Curvature:   0.01,
	SwingOut:    500 * time.Millisecond,
	SwingAcross: time.Second,
	Pause:       2 * time.Second,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&DefaultMotion.SwingOut, "swing-out", DefaultMotion.SwingOut, "Duration of the swing from baseline when sampling a profile.")
	flag.DurationVar(&DefaultMotion.SwingAcross, "swing-across", DefaultMotion.SwingAcross, "Duration of the swing across baseline when sampling a profile.")
	flag.DurationVar(&DefaultMotion.Pause, "swing-pause", DefaultMotion.Pause, "Pause before sampling a profile.")
}

// Classifier samples a profile with the Pilot's range sensor and reports
// the shape on the radio link.
type Classifier struct {
	Pilot  *maneuver.Pilot
	Status *telemetry.Status
	Motion Motion
}

// New creates a Classifier with DefaultMotion.
func New(pilot *maneuver.Pilot, status *telemetry.Status) *Classifier {
	return &Classifier{Pilot: pilot, Status: status, Motion: DefaultMotion}
}

// Run samples, classifies and reports. A shape is always returned, the
// error only reflects radio failures.
func (c *Classifier) Run() (shape Shape, err error) {
	err = c.Status.Guard(func() error {
		if err := c.Status.Link.Println(ProfileTag); err != nil {
			return err
		}
		p := c.Sample()
		shape = p.Shape()
		d1, d2 := p.Deltas()
		glog.Infof("profile %+v deltas (%v, %v): %s", p, d1, d2, shape)
		return c.Status.Link.Println(shape.String())
	})
	return
}

// Sample swings left, across to the right and back to baseline, taking
// one range sample at each of the first three positions.
func (c *Classifier) Sample() (p Profile) {
	m, pilot := c.Motion, c.Pilot
	p.Baseline = pilot.Range.DistanceCm()
	pilot.TurnFor(m.Speed, m.Curvature, m.SwingOut)
	time.Sleep(m.Pause)
	p.Left = pilot.Range.DistanceCm()
	pilot.TurnFor(-m.Speed, m.Curvature, m.SwingAcross)
	time.Sleep(m.Pause)
	p.Right = pilot.Range.DistanceCm()
	pilot.TurnFor(m.Speed, m.Curvature, m.SwingOut)
	return
}
