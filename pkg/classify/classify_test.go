package classify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/mazebot/pkg/maneuver"
	"github.com/robotalks/mazebot/pkg/radio"
	"github.com/robotalks/mazebot/pkg/telemetry"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name   string
		d1, d2 float64
		expect Shape
	}{
		{name: "slope", d1: -2.0, d2: 2.5, expect: Slope},
		{name: "square", d1: -2.0, d2: 1.5, expect: Square},
		{name: "depression", d1: -4.5, d2: 2.0, expect: Depression},
		{name: "sharp", d1: -4.5, d2: 5.0, expect: Sharp},
		{name: "flat", d1: 0, d2: 0, expect: Square},
		{name: "slope boundary d2", d1: -2.0, d2: 2, expect: Square},
		{name: "not steep enough", d1: -1.9, d2: 5, expect: Square},
		{name: "below slope band", d1: -2, d2: 0.7, expect: Square},
		{name: "deep left slope", d1: -4.5, d2: 4.0, expect: Sharp},
		{name: "depression overrides square", d1: -4.5, d2: 0.9, expect: Depression},
		{name: "far left depression", d1: -6, d2: 2.5, expect: Depression},
		{name: "far left sharp", d1: -6, d2: 4, expect: Sharp},
		{name: "low right keeps default", d1: -4.5, d2: 0.5, expect: Square},
		{name: "low right far left", d1: -6, d2: 0.8, expect: Square},
		{name: "positive deltas", d1: 3, d2: 3, expect: Square},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, Classify(tc.d1, tc.d2))
		})
	}
}

func TestShapeString(t *testing.T) {
	require.Equal(t, "square", Square.String())
	require.Equal(t, "slope", Slope.String())
	require.Equal(t, "sharp", Sharp.String())
	require.Equal(t, "depression", Depression.String())
	require.Equal(t, "Shape(9)", Shape(9).String())
}

func TestProfileDeltas(t *testing.T) {
	p := Profile{Baseline: 20, Left: 18, Right: 22.5}
	d1, d2 := p.Deltas()
	require.Equal(t, -2.0, d1)
	require.Equal(t, 2.5, d2)
	require.Equal(t, Slope, p.Shape())
}

type driveCmd struct {
	op        string
	speed     float64
	curvature float64
}

type testCar struct {
	t       *testing.T
	status  *telemetry.Status
	cmds    []driveCmd
	samples []float64
	reads   int
}

func (c *testCar) GoStraight(speed float64) {
	c.cmds = append(c.cmds, driveCmd{op: "straight", speed: speed})
}

func (c *testCar) Turn(speed, curvature float64) {
	c.cmds = append(c.cmds, driveCmd{op: "turn", speed: speed, curvature: curvature})
}

func (c *testCar) Stop() {
	c.cmds = append(c.cmds, driveCmd{op: "stop"})
}

func (c *testCar) DistanceCm() float64 {
	assert.True(c.t, c.status.InGap())
	d := c.samples[c.reads]
	c.reads++
	return d
}

func TestClassifierRun(t *testing.T) {
	testCases := []struct {
		samples []float64
		expect  Shape
		output  string
	}{
		{samples: []float64{20, 18, 22.5}, expect: Slope, output: "80663\r\nslope\r\n"},
		{samples: []float64{20, 15.5, 22}, expect: Depression, output: "80663\r\ndepression\r\n"},
		{samples: []float64{20, 15.5, 25}, expect: Sharp, output: "80663\r\nsharp\r\n"},
		{samples: []float64{20, 20, 20}, expect: Square, output: "80663\r\nsquare\r\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.expect.String(), func(t *testing.T) {
			var out bytes.Buffer
			status := telemetry.NewStatus(radio.New(&out), nil)
			car := &testCar{t: t, status: status, samples: tc.samples}
			c := New(maneuver.NewPilot(car, car, nil, nil), status)
			c.Motion = Motion{Speed: 30, Curvature: 0.01}
			shape, err := c.Run()
			require.NoError(t, err)
			require.Equal(t, tc.expect, shape)
			require.Equal(t, tc.output, out.String())
			require.Equal(t, 3, car.reads)
			require.False(t, status.InGap())
			require.Equal(t, []driveCmd{
				{op: "turn", speed: 30, curvature: 0.01}, {op: "stop"},
				{op: "turn", speed: -30, curvature: 0.01}, {op: "stop"},
				{op: "turn", speed: 30, curvature: 0.01}, {op: "stop"},
			}, car.cmds)
		})
	}
}
