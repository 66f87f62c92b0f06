package maneuver

import (
	"fmt"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/mazebot/pkg/cli/sh"
	"github.com/robotalks/mazebot/pkg/maneuver"
)

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

var (
	// UntilCloseCmd exposes DriveUntilClose.
	UntilCloseCmd = ishell.Cmd{
		Name:    "drive.close",
		Aliases: []string{"dc"},
		Help:    "THRESHOLD(cm) [SPEED]",
		Func: sh.WithArgs([]string{"THRESHOLD", "SPEED"}, 1, func(c *ishell.Context, vals []float64) {
			sh.BenchFrom(c).Pilot.DriveUntilClose(vals[0], vals[1])
		}, 100),
	}

	// UntilFarCmd exposes DriveUntilFar.
	UntilFarCmd = ishell.Cmd{
		Name:    "drive.far",
		Aliases: []string{"df"},
		Help:    "THRESHOLD(cm) [SPEED]",
		Func: sh.WithArgs([]string{"THRESHOLD", "SPEED"}, 1, func(c *ishell.Context, vals []float64) {
			sh.BenchFrom(c).Pilot.DriveUntilFar(vals[0], vals[1])
		}, -100),
	}

	// DriveForCmd exposes DriveFor.
	DriveForCmd = ishell.Cmd{
		Name:    "drive.for",
		Aliases: []string{"d"},
		Help:    "SPEED DURATION(s)",
		Func: sh.WithArgs([]string{"SPEED", "DURATION"}, 2, func(c *ishell.Context, vals []float64) {
			sh.BenchFrom(c).Pilot.DriveFor(vals[0], seconds(vals[1]))
		}),
	}

	// TurnCmd exposes TurnByDistance.
	TurnCmd = ishell.Cmd{
		Name:    "turn",
		Aliases: []string{"t"},
		Help:    "left|right [DISTANCE(cm)] [CURVATURE]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("DIRECTION required"))
				return
			}
			pilot := sh.BenchFrom(c).Pilot
			var dir maneuver.Direction
			var dist float64
			switch c.Args[0] {
			case "left", "l":
				dir, dist = maneuver.Left, pilot.LeftTurnCm
			case "right", "r":
				dir, dist = maneuver.Right, pilot.RightTurnCm
			default:
				c.Err(fmt.Errorf("Invalid DIRECTION: %q", c.Args[0]))
				return
			}
			vals, err := sh.ParseArgs(c.Args[1:], []string{"DISTANCE", "CURVATURE"}, 0, dist, pilot.TurnCurvature)
			if err != nil {
				c.Err(err)
				return
			}
			pilot.TurnByDistance(dir, vals[1], vals[0])
		},
	}

	// TurnForCmd exposes TurnFor.
	TurnForCmd = ishell.Cmd{
		Name:    "turn.for",
		Aliases: []string{"tf"},
		Help:    "SPEED CURVATURE DURATION(s)",
		Func: sh.WithArgs([]string{"SPEED", "CURVATURE", "DURATION"}, 3, func(c *ishell.Context, vals []float64) {
			sh.BenchFrom(c).Pilot.TurnFor(vals[0], vals[1], seconds(vals[2]))
		}),
	}

	// StopCmd stops the car.
	StopCmd = ishell.Cmd{
		Name:    "stop",
		Aliases: []string{"s"},
		Help:    "",
		Func: func(c *ishell.Context) {
			sh.BenchFrom(c).Pilot.Drive.Stop()
		},
	}
)

func init() {
	sh.AddCmds(
		&UntilCloseCmd,
		&UntilFarCmd,
		&DriveForCmd,
		&TurnCmd,
		&TurnForCmd,
		&StopCmd,
	)
}
