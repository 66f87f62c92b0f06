// Package env sets up the links of the controller from command line flags.
package env

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/golang/glog"
	"go.bug.st/serial"

	"github.com/robotalks/mazebot/pkg/framework"
	"github.com/robotalks/mazebot/pkg/radio"
	"github.com/robotalks/mazebot/pkg/radio/mqtt"
	"github.com/robotalks/mazebot/pkg/sim"
	"github.com/robotalks/mazebot/pkg/vision"
)

// Config provides the options to set up the links.
type Config struct {
	// Type and ID name the controller on MQTT as Type/ID.
	Type string
	ID   string

	// VisionPort is the serial device of the vision module. When empty, a
	// simulated vision module is used.
	VisionPort string
	// RadioPort is the serial device of the radio. When empty, radio lines
	// go to stdout.
	RadioPort string
	Baud      int

	// MQTTBrokerURL mirrors the radio link to MQTT when specified.
	// e.g. mqtt://host:port/topic-prefix/
	MQTTBrokerURL string
}

var defaultConfig = Config{
	Type: "mazebot",
	Baud: 9600,
}

func init() {
	if val := os.Getenv("MAZEBOT_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("MAZEBOT_VISION_PORT"); val != "" {
		defaultConfig.VisionPort = val
	}
	if val := os.Getenv("MAZEBOT_RADIO_PORT"); val != "" {
		defaultConfig.RadioPort = val
	}
	defaultConfig.ID = MachineID()
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Type, "type", defaultConfig.Type, "Controller type")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Controller ID")
	flag.StringVar(&defaultConfig.VisionPort, "vision-port", defaultConfig.VisionPort, "Serial device of the vision module, empty for simulation.")
	flag.StringVar(&defaultConfig.RadioPort, "radio-port", defaultConfig.RadioPort, "Serial device of the radio, empty for stdout.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate of serial devices.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL to mirror the radio link.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Name is the controller name used on MQTT.
func (c *Config) Name() string {
	return c.Type + "/" + c.ID
}

// Env holds the opened links.
type Env struct {
	Config *Config
	Radio  *radio.Link
	Vision vision.Port
	Mirror *mqtt.Mirror

	closers []io.Closer
}

// NewEnv opens the links from config.
func (c *Config) NewEnv() (env *Env, err error) {
	if c.Type == "" || c.ID == "" {
		return nil, fmt.Errorf("controller type and id must be specified")
	}
	env = &Env{Config: c}
	defer func() {
		if err != nil {
			env.Close()
			env = nil
		}
	}()

	var radioOut io.Writer = os.Stdout
	if c.RadioPort != "" {
		port, err := c.openSerial(c.RadioPort)
		if err != nil {
			return env, fmt.Errorf("open radio port error: %w", err)
		}
		env.closers = append(env.closers, port)
		radioOut = port
	}
	if c.MQTTBrokerURL != "" {
		if env.Mirror, err = mqtt.NewMirror(c.MQTTBrokerURL, c.Name()); err != nil {
			return env, fmt.Errorf("create MQTT mirror error: %w", err)
		}
		radioOut = io.MultiWriter(radioOut, env.Mirror.Writer)
	}
	env.Radio = radio.New(radioOut)

	if c.VisionPort != "" {
		port, err := c.openSerial(c.VisionPort)
		if err != nil {
			return env, fmt.Errorf("open vision port error: %w", err)
		}
		env.closers = append(env.closers, port)
		env.Vision = port
	} else {
		glog.Info("vision module simulated")
		env.Vision = sim.NewVisionPort()
	}
	return env, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	env, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return env
}

func (c *Config) openSerial(path string) (serial.Port, error) {
	return serial.Open(path, &serial.Mode{
		BaudRate: c.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
}

// Runnables returns the background components of the links.
func (e *Env) Runnables() []framework.Runnable {
	if e.Mirror != nil {
		return []framework.Runnable{e.Mirror}
	}
	return nil
}

// Close closes all opened ports.
func (e *Env) Close() error {
	var errs framework.AggregatedError
	for _, c := range e.closers {
		errs.Add(c.Close())
	}
	e.closers = nil
	return errs.Aggregate()
}
