package vision

import (
	"flag"
	"time"

	"github.com/robotalks/mazebot/pkg/telemetry"
)

// Defaults
const (
	DefaultSettle       = 5 * time.Second
	DefaultProbeTimeout = 50 * time.Millisecond
)

// Config defines the timing of vision requests.
type Config struct {
	Settle       time.Duration
	ProbeTimeout time.Duration
	FrameTimeout time.Duration
	Silent       bool
}

var defaultConfig = Config{
	Settle:       DefaultSettle,
	ProbeTimeout: DefaultProbeTimeout,
	Silent:       true,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.Settle, "vision-settle", defaultConfig.Settle, "Time given to the vision module to prepare a reply.")
	flag.DurationVar(&defaultConfig.ProbeTimeout, "vision-probe-timeout", defaultConfig.ProbeTimeout, "How long to wait for the first reply byte after settle.")
	flag.DurationVar(&defaultConfig.FrameTimeout, "vision-frame-timeout", defaultConfig.FrameTimeout, "Per-byte timeout inside a reply, 0 waits forever.")
	flag.BoolVar(&defaultConfig.Silent, "vision-silent", defaultConfig.Silent, "Treat a missing reply as success, set false to get ErrNoReply.")
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

// NewClient creates a Client using the config.
func (c *Config) NewClient(port Port, status *telemetry.Status) *Client {
	cli := NewClient(port, status)
	cli.Settle = c.Settle
	cli.ProbeTimeout = c.ProbeTimeout
	cli.FrameTimeout = c.FrameTimeout
	cli.Silent = c.Silent
	return cli
}
