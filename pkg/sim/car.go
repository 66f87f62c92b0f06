package sim

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/robotalks/mazebot/pkg/hw"
)

// Car is a simulated differential drive car.
//
// Drive commands take effect immediately. Run advances the simulation on a
// ticker and acts as the pulse source of both encoders; Step can be used
// instead to advance to an explicit time.
type Car struct {
	Config Config
	World  World
	Left   *hw.PulseCounter
	Right  *hw.PulseCounter
	// Now is the clock, time.Now if nil.
	Now func() time.Time

	lock     sync.Mutex
	pose     Pose2D
	lastTime time.Time
	vLeft    float64 // cm/s
	vRight   float64 // cm/s
	travelL  float64 // cm, absolute
	travelR  float64 // cm, absolute
	emittedL uint64
	emittedR uint64
	stops    int
}

// NewCar creates a Car at pose in world.
func NewCar(conf Config, world World, pose Pose2D) *Car {
	return &Car{
		Config: conf,
		World:  world,
		Left:   hw.NewPulseCounter(conf.CmPerPulse),
		Right:  hw.NewPulseCounter(conf.CmPerPulse),
		pose:   pose,
	}
}

// Name implements Named.
func (c *Car) Name() string {
	return "sim-car"
}

// Run implements Runnable.
func (c *Car) Run(ctx context.Context) error {
	tick := c.Config.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Step(c.now())
		}
	}
}

// Step advances the simulation to now.
func (c *Car) Step(now time.Time) {
	c.lock.Lock()
	c.advance(now)
	c.lock.Unlock()
}

// Pose gets the current pose.
func (c *Car) Pose() Pose2D {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.pose
}

// Stops gets the number of stops which actually stopped the car.
func (c *Car) Stops() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.stops
}

// Moving indicates any wheel is turning.
func (c *Car) Moving() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.vLeft != 0 || c.vRight != 0
}

// GoStraight implements hw.Drive.
func (c *Car) GoStraight(speed float64) {
	v := speed * c.Config.CmPerSpeedUnit
	c.command(v, v)
}

// Turn implements hw.Drive. The outer wheel runs at speed and the inner
// wheel at speed*|curvature|; positive curvature turns left.
func (c *Car) Turn(speed, curvature float64) {
	outer := speed * c.Config.CmPerSpeedUnit
	inner := outer * math.Abs(curvature)
	switch {
	case curvature > 0:
		c.command(inner, outer)
	case curvature < 0:
		c.command(outer, inner)
	default:
		c.command(outer, outer)
	}
}

// Stop implements hw.Drive.
func (c *Car) Stop() {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.vLeft == 0 && c.vRight == 0 {
		return
	}
	c.advance(c.now())
	c.vLeft, c.vRight = 0, 0
	c.stops++
}

// DistanceCm implements hw.RangeSensor. Nothing in range reads as the
// sensor maximum.
func (c *Car) DistanceCm() float64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.advance(c.now())
	d := -1.0
	if c.World != nil {
		d = c.World.RangeFrom(c.pose)
	}
	if d < 0 {
		d = c.Config.MaxRange
	}
	return d
}

func (c *Car) command(vLeft, vRight float64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.advance(c.now())
	c.vLeft, c.vRight = vLeft, vRight
}

func (c *Car) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// advance integrates the motion since lastTime. Must be called with lock.
func (c *Car) advance(now time.Time) {
	if c.lastTime.IsZero() || !now.After(c.lastTime) {
		if c.lastTime.IsZero() {
			c.lastTime = now
		}
		return
	}
	secs := now.Sub(c.lastTime).Seconds()
	c.lastTime = now
	if c.vLeft == 0 && c.vRight == 0 {
		return
	}
	dl, dr := c.vLeft*secs, c.vRight*secs
	c.pose = Arc(c.pose, dl, dr, c.Config.Track)
	c.travelL += math.Abs(dl)
	c.travelR += math.Abs(dr)
	emitPulses(c.Left, c.travelL, &c.emittedL)
	emitPulses(c.Right, c.travelR, &c.emittedR)
}

// emitPulses feeds counter with the pulses of total wheel travel not yet
// emitted. Counter resets don't matter as only increments are emitted.
func emitPulses(counter *hw.PulseCounter, travel float64, emitted *uint64) {
	if counter == nil {
		return
	}
	cm := counter.CmPerPulse
	if cm <= 0 {
		cm = hw.DefaultCmPerPulse
	}
	if total := uint64(travel / cm); total > *emitted {
		counter.AddPulses(total - *emitted)
		*emitted = total
	}
}

// Arc moves pose by left and right wheel travel dl and dr (cm) of a car
// with wheels track cm apart.
func Arc(pose Pose2D, dl, dr, track float64) Pose2D {
	dist := (dl + dr) / 2
	if track <= 0 || dl == dr {
		pose.Pos2D.OffsetBy(pose.Orientation.Project(dist))
		return pose
	}
	dTheta := (dr - dl) / track
	radius := dist / dTheta
	theta := pose.Orientation.Radians()
	pose.X += radius * (math.Sin(theta+dTheta) - math.Sin(theta))
	pose.Y -= radius * (math.Cos(theta+dTheta) - math.Cos(theta))
	pose.Orientation = pose.Orientation.AddRadians(dTheta)
	return pose
}
