package mission

import (
	"time"

	"github.com/robotalks/mazebot/pkg/telemetry"
)

const (
	cruise = 100
)

func sec(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func untilClose(cm float64) func(*Mission) {
	return func(m *Mission) { m.Pilot.DriveUntilClose(cm, cruise) }
}

func straightFor(s float64) func(*Mission) {
	return func(m *Mission) { m.Pilot.DriveFor(cruise, m.Scaled(sec(s))) }
}

func turnFor(speed, curvature, s float64) func(*Mission) {
	return func(m *Mission) { m.Pilot.TurnFor(speed, curvature, m.Scaled(sec(s))) }
}

func turnLeft(m *Mission)  { m.Pilot.TurnLeft() }
func turnRight(m *Mission) { m.Pilot.TurnRight() }

// Course is the competition course: two missions and the exit.
func Course() []Step {
	return []Step{
		// to mission 1
		{Name: "approach", Wait: sec(2), Behavior: telemetry.Straight, Do: untilClose(30)},
		{Name: "matrix", Do: (*Mission).Matrix},
		{Name: "turn left", Wait: sec(2), Behavior: telemetry.Left, Do: turnLeft},
		{Name: "arrive mission 1", Wait: sec(1), Behavior: telemetry.Straight, Do: untilClose(18)},
		// mission 1
		{Name: "turn back left", Behavior: telemetry.Left, Do: turnFor(-cruise, 0.3, 2.5)},
		{Name: "back off", Wait: sec(1), Behavior: telemetry.Back, Do: func(m *Mission) { m.Pilot.DriveUntilFar(40, -cruise) }},
		{Name: "forward", Wait: sec(1), Behavior: telemetry.Straight, Do: untilClose(30)},
		{Name: "identification", Do: (*Mission).Identification},
		{Name: "turn right", Wait: sec(1.5), Behavior: telemetry.Right, Do: turnFor(cruise, -0.3, 2.5)},
		{Name: "leave mission 1", Wait: sec(1), Behavior: telemetry.Straight, Do: straightFor(2.1)},
		// to mission 2
		{Name: "turn right", Wait: sec(1), Behavior: telemetry.Right, Do: turnRight},
		{Name: "cross", Wait: sec(1), Behavior: telemetry.Straight, Do: straightFor(6)},
		{Name: "turn right", Wait: sec(1), Behavior: telemetry.Right, Do: turnRight},
		// mission 2
		{Name: "enter mission 2", Wait: sec(2), Behavior: telemetry.Straight, Do: straightFor(2.1)},
		{Name: "face obstacle", Wait: sec(1), Behavior: telemetry.Right, Do: turnRight},
		{Name: "classify", Wait: sec(3), Do: (*Mission).Classify},
		{Name: "turn back right", Wait: sec(1), Behavior: telemetry.Back, Do: turnFor(-cruise, -0.3, 2.3)},
		{Name: "leave mission 2", Wait: sec(1), Behavior: telemetry.Straight, Do: untilClose(30)},
		// exit
		{Name: "turn right", Wait: sec(1), Behavior: telemetry.Right, Do: turnRight},
		{Name: "exit", Wait: sec(1), Behavior: telemetry.Straight, Do: func(m *Mission) { m.Pilot.Drive.GoStraight(cruise) }},
	}
}
