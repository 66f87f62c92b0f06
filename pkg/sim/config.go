package sim

import (
	"flag"
	"time"

	"github.com/robotalks/mazebot/pkg/hw"
)

// Defaults
const (
	DefaultTrack          float64 = 11
	DefaultCmPerSpeedUnit float64 = 0.15
	DefaultMaxRange       float64 = 300
	DefaultTick                   = time.Millisecond
)

// Config defines the simulated car.
type Config struct {
	// Track is the distance (cm) between wheels.
	Track float64
	// CmPerSpeedUnit converts drive speed into cm/s.
	CmPerSpeedUnit float64
	CmPerPulse     float64
	// MaxRange is read when nothing is in range.
	MaxRange float64
	Tick     time.Duration

	// Course size (cm) of the default box world.
	CourseX float64
	CourseY float64
	// Start position inside the course, facing +X.
	StartX float64
	StartY float64
}

var defaultConfig = Config{
	Track:          DefaultTrack,
	CmPerSpeedUnit: DefaultCmPerSpeedUnit,
	CmPerPulse:     hw.DefaultCmPerPulse,
	MaxRange:       DefaultMaxRange,
	Tick:           DefaultTick,
	CourseX:        240,
	CourseY:        180,
	StartX:         20,
	StartY:         30,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.Track, "sim-track", defaultConfig.Track, "Distance (cm) between wheels.")
	flag.Float64Var(&defaultConfig.CmPerSpeedUnit, "sim-speed-scale", defaultConfig.CmPerSpeedUnit, "cm/s per drive speed unit.")
	flag.Float64Var(&defaultConfig.CourseX, "sim-course-x", defaultConfig.CourseX, "Course width (cm).")
	flag.Float64Var(&defaultConfig.CourseY, "sim-course-y", defaultConfig.CourseY, "Course depth (cm).")
	flag.Float64Var(&defaultConfig.StartX, "sim-start-x", defaultConfig.StartX, "Start X (cm).")
	flag.Float64Var(&defaultConfig.StartY, "sim-start-y", defaultConfig.StartY, "Start Y (cm).")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewCar creates a car at the start position of a box course.
func (c *Config) NewCar() *Car {
	world := Box(c.CourseX, c.CourseY)
	world.MaxRange = c.MaxRange
	return NewCar(*c, world, Pose2D{Pos2D: Pos2D{X: c.StartX, Y: c.StartY}})
}
