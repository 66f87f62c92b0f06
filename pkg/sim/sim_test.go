package sim

import (
	"context"
	"io"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial"

	"github.com/robotalks/mazebot/pkg/hw"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestCar() (*Car, *testClock) {
	clock := &testClock{t: time.Unix(1000, 0)}
	conf := NewConfig()
	conf.CourseX, conf.CourseY = 240, 180
	conf.StartX, conf.StartY = 20, 30
	car := conf.NewCar()
	car.Now = clock.now
	return car, clock
}

func TestRangeFrom(t *testing.T) {
	w := Box(100, 50)
	testCases := []struct {
		name    string
		degrees float64
		expect  float64
	}{
		{name: "east", degrees: 0, expect: 90},
		{name: "north", degrees: 90, expect: 40},
		{name: "west", degrees: 180, expect: 10},
		{name: "south", degrees: -90, expect: 10},
		{name: "diagonal", degrees: 45, expect: 40 * math.Sqrt2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pose := Pose2D{Pos2D: Pos2D{X: 10, Y: 10}, Orientation: AngleFromDegrees(tc.degrees)}
			require.InDelta(t, tc.expect, w.RangeFrom(pose), 1e-9)
		})
	}
	w.MaxRange = 50
	require.Equal(t, -1.0, w.RangeFrom(Pose2D{Pos2D: Pos2D{X: 10, Y: 10}}))
}

func TestRangeFromInnerWall(t *testing.T) {
	w := Box(100, 50).Add(Segment{A: Pos2D{X: 30, Y: 0}, B: Pos2D{X: 30, Y: 20}})
	require.InDelta(t, 20, w.RangeFrom(Pose2D{Pos2D: Pos2D{X: 10, Y: 10}}), 1e-9)
	require.InDelta(t, 90, w.RangeFrom(Pose2D{Pos2D: Pos2D{X: 10, Y: 30}}), 1e-9)
}

func TestArc(t *testing.T) {
	pose := Arc(Pose2D{}, 0, 5*math.Pi, 10)
	require.InDelta(t, 5, pose.X, 1e-9)
	require.InDelta(t, 5, pose.Y, 1e-9)
	require.InDelta(t, math.Pi/2, pose.Orientation.Radians(), 1e-9)

	pose = Arc(Pose2D{Orientation: AngleFromDegrees(90)}, 3, 3, 10)
	require.InDelta(t, 0, pose.X, 1e-9)
	require.InDelta(t, 3, pose.Y, 1e-9)

	pose = Arc(Pose2D{}, 2, -2, 10)
	require.InDelta(t, 0, pose.X, 1e-9)
	require.InDelta(t, -0.4, pose.Orientation.Radians(), 1e-9)
}

func TestCarGoStraight(t *testing.T) {
	car, clock := newTestCar()
	require.InDelta(t, 220, car.DistanceCm(), 1e-9)
	car.GoStraight(100)
	clock.advance(2 * time.Second)
	require.InDelta(t, 190, car.DistanceCm(), 1e-9)
	require.Equal(t, uint64(47), car.Left.Pulses())
	require.Equal(t, uint64(47), car.Right.Pulses())

	car.GoStraight(-100)
	clock.advance(time.Second)
	require.InDelta(t, 205, car.DistanceCm(), 1e-9)
	// travel is counted regardless of direction
	require.Equal(t, uint64(70), car.Left.Pulses())
}

func TestCarTurn(t *testing.T) {
	testCases := []struct {
		name      string
		curvature float64
		outer     func(*Car) *hw.PulseCounter
		inner     func(*Car) *hw.PulseCounter
		heading   float64
	}{
		{
			name:      "left",
			curvature: 0.3,
			outer:     func(c *Car) *hw.PulseCounter { return c.Right },
			inner:     func(c *Car) *hw.PulseCounter { return c.Left },
			heading:   10.5 / 11,
		},
		{
			name:      "right",
			curvature: -0.3,
			outer:     func(c *Car) *hw.PulseCounter { return c.Left },
			inner:     func(c *Car) *hw.PulseCounter { return c.Right },
			heading:   -10.5 / 11,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			car, clock := newTestCar()
			car.Turn(100, tc.curvature)
			clock.advance(time.Second)
			car.Step(clock.now())
			require.Equal(t, uint64(23), tc.outer(car).Pulses())
			require.Equal(t, uint64(7), tc.inner(car).Pulses())
			require.InDelta(t, tc.heading, car.Pose().Orientation.Radians(), 1e-9)
		})
	}
}

func TestCarStopIdempotent(t *testing.T) {
	car, clock := newTestCar()
	car.Stop()
	require.Zero(t, car.Stops())
	car.GoStraight(100)
	clock.advance(time.Second)
	car.Stop()
	require.False(t, car.Moving())
	pose, pulses := car.Pose(), car.Left.Pulses()
	clock.advance(time.Second)
	car.Stop()
	car.Stop()
	car.Step(clock.now())
	require.Equal(t, 1, car.Stops())
	require.Equal(t, pose, car.Pose())
	require.Equal(t, pulses, car.Left.Pulses())
}

func TestCarRunFeedsEncoders(t *testing.T) {
	car, _ := newTestCar()
	car.Now = nil
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- car.Run(ctx) }()
	car.GoStraight(100)
	require.Eventually(t, func() bool {
		return car.Right.DistanceCm() >= 1
	}, time.Second, time.Millisecond)
	car.Stop()
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

func TestVisionPort(t *testing.T) {
	p := NewVisionPort()
	p.SetReadTimeout(time.Millisecond)
	buf := make([]byte, 4)
	n, err := p.Read(buf)
	require.NoError(t, err)
	require.Zero(t, n)

	p.Write([]byte("identification"))
	n, _ = p.Read(buf)
	require.Equal(t, 1, n)
	require.Equal(t, byte('3'), buf[0])

	p.Write([]byte("unknown"))
	n, _ = p.Read(buf)
	require.Zero(t, n)
}

func TestVisionPortBlocksWithoutTimeout(t *testing.T) {
	p := NewVisionPort()
	p.Replies["partial"] = []byte("A")
	p.SetReadTimeout(serial.NoTimeout)
	type result struct {
		n   int
		err error
		b   byte
	}
	resCh := make(chan result, 1)
	go func() {
		buf := make([]byte, 1)
		n, err := p.Read(buf)
		resCh <- result{n: n, err: err, b: buf[0]}
	}()

	select {
	case <-resCh:
		t.Fatal("read returned without a queued reply")
	case <-time.After(20 * time.Millisecond):
	}
	p.Write([]byte("partial"))
	select {
	case res := <-resCh:
		require.NoError(t, res.err)
		require.Equal(t, 1, res.n)
		require.Equal(t, byte('A'), res.b)
	case <-time.After(time.Second):
		t.Fatal("read still blocked after reply queued")
	}

	go func() {
		_, err := p.Read(make([]byte, 1))
		resCh <- result{err: err}
	}()
	time.Sleep(10 * time.Millisecond)
	p.Close()
	select {
	case res := <-resCh:
		require.Equal(t, io.EOF, res.err)
	case <-time.After(time.Second):
		t.Fatal("read still blocked after close")
	}
}

func TestAngleWraps(t *testing.T) {
	testCases := []struct {
		degrees float64
		expect  float64
	}{
		{degrees: 0, expect: 0},
		{degrees: 90, expect: 90},
		{degrees: 270, expect: -90},
		{degrees: -450, expect: -90},
		{degrees: 720 + 45, expect: 45},
	}
	for _, tc := range testCases {
		require.InDelta(t, tc.expect, AngleFromDegrees(tc.degrees).Degrees(), 1e-9)
	}
	require.InDelta(t, -150, AngleFromDegrees(170).AddRadians(math.Pi/9*2).Degrees(), 1e-9)
	p := AngleFromDegrees(90).Project(2)
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, 2, p.Y, 1e-9)
}
