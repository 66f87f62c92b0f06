// Package sh provides the bench shell driving a car interactively.
package sh

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/mazebot/pkg/env"
	"github.com/robotalks/mazebot/pkg/framework"
	"github.com/robotalks/mazebot/pkg/sim"
	"github.com/robotalks/mazebot/pkg/telemetry"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool

	Shell  *ishell.Shell
	Bench  *Bench
	Runner *framework.Runner
}

const (
	shellKey = "$shell"
	prompt   = "mazebot > "
)

var (
	// flags

	evalOnly bool
	report   bool

	// commands
	commands = []*ishell.Cmd{
		&StatusCmd,
		&BehaviorCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&report, "report", report, "Run telemetry reporter in background.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell on bench.
func New(bench *Bench) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
		Bench:       bench,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(prompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// BenchFrom gets Bench from ishell context.
func BenchFrom(c *ishell.Context) *Bench {
	return ShellFrom(c).Bench
}

// ParseArgs parses args as float values, names are used in errors and
// define the required count. Missing optional values keep defaults.
func ParseArgs(args []string, names []string, required int, defaults ...float64) ([]float64, error) {
	if len(args) < required {
		return nil, fmt.Errorf("%s required", names[len(args)])
	}
	if len(args) > len(names) {
		return nil, fmt.Errorf("too many arguments")
	}
	vals := make([]float64, len(names))
	copy(vals[required:], defaults)
	for n, arg := range args {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("Invalid %s: %v", names[n], err)
		}
		vals[n] = val
	}
	return vals, nil
}

// WithArgs wraps a command func requiring float arguments.
func WithArgs(names []string, required int, fn func(c *ishell.Context, vals []float64), defaults ...float64) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		vals, err := ParseArgs(c.Args, names, required, defaults...)
		if err != nil {
			c.Err(err)
			return
		}
		fn(c, vals)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// StatusCmd prints pose and telemetry status.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "",
		Func: func(c *ishell.Context) {
			b := BenchFrom(c)
			pose := b.Car.Pose()
			snapshot := b.Status.Snapshot()
			c.Printf("pose (%.1f, %.1f) %.1f° moving %v\n", pose.X, pose.Y, pose.Orientation.Degrees(), b.Car.Moving())
			c.Printf("range %.1fcm encoders L %.1fcm R %.1fcm\n",
				b.Car.DistanceCm(), b.Car.Left.DistanceCm(), b.Car.Right.DistanceCm())
			c.Printf("behavior %s gap %v seq %d\n", snapshot.Behavior, snapshot.Gap, b.Reporter.Seq())
		},
	}

	// BehaviorCmd sets the behavior label.
	BehaviorCmd = ishell.Cmd{
		Name:    "behavior",
		Aliases: []string{"b"},
		Help:    "S|L|R|B",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 || len(c.Args[0]) != 1 {
				c.Err(fmt.Errorf("BEHAVIOR required"))
				return
			}
			behavior := telemetry.Behavior(c.Args[0][0])
			if !behavior.IsValid() {
				c.Err(fmt.Errorf("Invalid BEHAVIOR: %q", c.Args[0]))
				return
			}
			BenchFrom(c).Status.SetBehavior(behavior)
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	e := env.NewConfig().MustNewEnv()
	defer e.Close()
	bench := NewBench(e, sim.NewConfig().NewCar())
	s := New(bench)
	s.Runner = framework.NewRunner().Go(bench.Runnables(report)...)
	s.Run(flag.Args()...)
	s.Runner.Cancel()
	if err := s.Runner.Wait(); err != nil {
		log.Println(err)
	}
}
