package telemetry

import (
	"flag"
	"time"
)

// DefaultInterval is the reporting period.
const DefaultInterval = time.Second

// Config defines the configuration of the reporter.
type Config struct {
	Interval time.Duration
}

var defaultConfig = Config{
	Interval: DefaultInterval,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.Interval, "telemetry-interval", defaultConfig.Interval, "Telemetry reporting interval.")
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

// NewReporter creates a Reporter using the config.
func (c *Config) NewReporter(status *Status) *Reporter {
	r := NewReporter(status)
	r.Interval = c.Interval
	return r
}
