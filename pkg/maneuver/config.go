package maneuver

import (
	"flag"
	"time"

	"github.com/robotalks/mazebot/pkg/hw"
)

// Defaults
const (
	DefaultPollInterval     = 10 * time.Millisecond
	DefaultTurnPollInterval = time.Millisecond
	DefaultTurnSpeed        = 100

	DefaultTurnCurvature = 0.3
	DefaultLeftTurnCm    = 21.4
	DefaultRightTurnCm   = 28.4
)

// Config defines the polling and the calibrated turns.
type Config struct {
	PollInterval     time.Duration
	TurnPollInterval time.Duration
	TurnSpeed        float64

	// Calibrated quarter turns: outer wheel distance for each direction.
	TurnCurvature float64
	LeftTurnCm    float64
	RightTurnCm   float64
}

var defaultConfig = Config{
	PollInterval:     DefaultPollInterval,
	TurnPollInterval: DefaultTurnPollInterval,
	TurnSpeed:        DefaultTurnSpeed,
	TurnCurvature:    DefaultTurnCurvature,
	LeftTurnCm:       DefaultLeftTurnCm,
	RightTurnCm:      DefaultRightTurnCm,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.PollInterval, "range-poll", defaultConfig.PollInterval, "Range polling interval.")
	flag.DurationVar(&defaultConfig.TurnPollInterval, "encoder-poll", defaultConfig.TurnPollInterval, "Encoder polling interval.")
	flag.Float64Var(&defaultConfig.TurnSpeed, "turn-speed", defaultConfig.TurnSpeed, "Speed of encoder guarded turns.")
	flag.Float64Var(&defaultConfig.TurnCurvature, "turn-curvature", defaultConfig.TurnCurvature, "Curvature of quarter turns.")
	flag.Float64Var(&defaultConfig.LeftTurnCm, "left-turn-cm", defaultConfig.LeftTurnCm, "Right wheel distance (cm) of a left quarter turn.")
	flag.Float64Var(&defaultConfig.RightTurnCm, "right-turn-cm", defaultConfig.RightTurnCm, "Left wheel distance (cm) of a right quarter turn.")
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

// NewPilot creates a Pilot using the config.
func (c *Config) NewPilot(drive hw.Drive, rangeSensor hw.RangeSensor, left, right hw.Encoder) *Pilot {
	p := NewPilot(drive, rangeSensor, left, right)
	p.PollInterval = c.PollInterval
	p.TurnPollInterval = c.TurnPollInterval
	p.TurnSpeed = c.TurnSpeed
	p.TurnCurvature = c.TurnCurvature
	p.LeftTurnCm = c.LeftTurnCm
	p.RightTurnCm = c.RightTurnCm
	return p
}
