package mission

import (
	"flag"

	"github.com/robotalks/mazebot/pkg/classify"
	"github.com/robotalks/mazebot/pkg/maneuver"
	"github.com/robotalks/mazebot/pkg/telemetry"
	"github.com/robotalks/mazebot/pkg/vision"
)

// Config defines the configuration of the mission.
type Config struct {
	TimeScale float64
}

var defaultConfig = Config{
	TimeScale: 1,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.TimeScale, "time-scale", defaultConfig.TimeScale, "Scale of course waits and timed moves.")
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

// NewMission creates a Mission using the config.
func (c *Config) NewMission(pilot *maneuver.Pilot, status *telemetry.Status, cli *vision.Client) *Mission {
	return &Mission{
		Pilot:      pilot,
		Status:     status,
		Vision:     cli,
		Classifier: classify.New(pilot, status),
		TimeScale:  c.TimeScale,
	}
}
