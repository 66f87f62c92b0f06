// Package maneuver implements blocking drive primitives guarded by range
// and encoder feedback.
//
// A maneuver returns only when its own stop condition becomes true: there
// is no timeout and no cancellation. An open path keeps DriveUntilClose
// driving forever, and a mis-calibrated turn silently overshoots.
package maneuver

import (
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/mazebot/pkg/hw"
)

// Direction of a turn.
type Direction int

// Directions.
const (
	Left Direction = iota + 1
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Pilot runs maneuvers one at a time on a car.
type Pilot struct {
	Drive        hw.Drive
	Range        hw.RangeSensor
	LeftEncoder  hw.Encoder
	RightEncoder hw.Encoder

	PollInterval     time.Duration
	TurnPollInterval time.Duration
	TurnSpeed        float64

	// Calibrated quarter turns: outer wheel distance for each direction.
	TurnCurvature float64
	LeftTurnCm    float64
	RightTurnCm   float64
}

// NewPilot creates a Pilot with default polling.
func NewPilot(drive hw.Drive, rangeSensor hw.RangeSensor, left, right hw.Encoder) *Pilot {
	return &Pilot{
		Drive:            drive,
		Range:            rangeSensor,
		LeftEncoder:      left,
		RightEncoder:     right,
		PollInterval:     DefaultPollInterval,
		TurnPollInterval: DefaultTurnPollInterval,
		TurnSpeed:        DefaultTurnSpeed,
		TurnCurvature:    DefaultTurnCurvature,
		LeftTurnCm:       DefaultLeftTurnCm,
		RightTurnCm:      DefaultRightTurnCm,
	}
}

// DriveUntilClose drives straight until a range sample is below thresholdCm.
func (p *Pilot) DriveUntilClose(thresholdCm, speed float64) {
	glog.V(1).Infof("drive until < %vcm at %v", thresholdCm, speed)
	p.Drive.GoStraight(speed)
	p.pollRange(func(d float64) bool { return d < thresholdCm })
}

// DriveUntilFar drives straight until a range sample exceeds thresholdCm.
// It's typically used with a negative speed to back off a wall.
func (p *Pilot) DriveUntilFar(thresholdCm, speed float64) {
	glog.V(1).Infof("drive until > %vcm at %v", thresholdCm, speed)
	p.Drive.GoStraight(speed)
	p.pollRange(func(d float64) bool { return d > thresholdCm })
}

// TurnByDistance turns until the outer wheel travelled targetCm.
// A left turn measures the right wheel and a right turn the left wheel.
func (p *Pilot) TurnByDistance(dir Direction, curvature, targetCm float64) {
	if curvature < 0 {
		curvature = -curvature
	}
	var enc hw.Encoder
	switch dir {
	case Left:
		enc = p.RightEncoder
	case Right:
		enc, curvature = p.LeftEncoder, -curvature
	default:
		panic(fmt.Sprintf("invalid turn direction %d", int(dir)))
	}
	glog.V(1).Infof("turn %s %vcm", dir, targetCm)
	enc.Reset()
	p.Drive.Turn(p.TurnSpeed, curvature)
	for enc.DistanceCm() < targetCm {
		time.Sleep(p.TurnPollInterval)
	}
	p.Drive.Stop()
}

// TurnLeft performs the calibrated left quarter turn.
func (p *Pilot) TurnLeft() {
	p.TurnByDistance(Left, p.TurnCurvature, p.LeftTurnCm)
}

// TurnRight performs the calibrated right quarter turn.
func (p *Pilot) TurnRight() {
	p.TurnByDistance(Right, p.TurnCurvature, p.RightTurnCm)
}

// DriveFor drives straight for a fixed duration.
func (p *Pilot) DriveFor(speed float64, d time.Duration) {
	p.Drive.GoStraight(speed)
	time.Sleep(d)
	p.Drive.Stop()
}

// TurnFor turns for a fixed duration.
func (p *Pilot) TurnFor(speed, curvature float64, d time.Duration) {
	p.Drive.Turn(speed, curvature)
	time.Sleep(d)
	p.Drive.Stop()
}

func (p *Pilot) pollRange(done func(float64) bool) {
	for {
		if d := p.Range.DistanceCm(); done(d) {
			p.Drive.Stop()
			glog.V(1).Infof("stopped at %vcm", d)
			return
		}
		time.Sleep(p.PollInterval)
	}
}
