package telemetry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/mazebot/pkg/hw"
	"github.com/robotalks/mazebot/pkg/radio"
)

type lineRecorder struct {
	lock   sync.Mutex
	buf    bytes.Buffer
	lineCh chan string
}

func newLineRecorder() *lineRecorder {
	return &lineRecorder{lineCh: make(chan string, 64)}
}

func (r *lineRecorder) Write(p []byte) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.buf.Write(p)
	if bytes.HasSuffix(p, []byte(radio.Terminator)) {
		select {
		case r.lineCh <- strings.TrimSuffix(string(p), radio.Terminator):
		default:
		}
	}
	return len(p), nil
}

func (r *lineRecorder) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.buf.Len()
}

func (r *lineRecorder) next(t *testing.T) string {
	select {
	case line := <-r.lineCh:
		return line
	case <-time.After(time.Second):
		t.Fatal("expect line timeout")
	}
	return ""
}

func TestBehavior(t *testing.T) {
	require.Equal(t, "S", Straight.String())
	require.Equal(t, "B", Back.String())
	require.True(t, Left.IsValid())
	require.False(t, Behavior('X').IsValid())
}

func TestStatusSnapshot(t *testing.T) {
	s := NewStatus(radio.New(newLineRecorder()), nil)
	require.Equal(t, Snapshot{Behavior: Straight}, s.Snapshot())
	s.SetBehavior(Right)
	s.Guard(func() error {
		require.Equal(t, Snapshot{Behavior: Right, Gap: true}, s.Snapshot())
		return nil
	})
	require.Equal(t, Snapshot{Behavior: Right}, s.Snapshot())
}

func TestGuardRestoresOnError(t *testing.T) {
	var states []bool
	s := NewStatus(radio.New(newLineRecorder()), hw.IndicatorFunc(func(on bool) {
		states = append(states, on)
	}))
	errBoom := errors.New("boom")
	require.False(t, s.InGap())
	err := s.Guard(func() error {
		require.True(t, s.InGap())
		return errBoom
	})
	require.Equal(t, errBoom, err)
	require.False(t, s.InGap())
	require.Equal(t, []bool{true, false}, states)
}

func TestGuardRestoresOnPanic(t *testing.T) {
	s := NewStatus(radio.New(newLineRecorder()), nil)
	require.Panics(t, func() {
		s.Guard(func() error { panic("stuck") })
	})
	require.False(t, s.InGap())
}

func TestTickSuppressedInGap(t *testing.T) {
	rec := newLineRecorder()
	s := NewStatus(radio.New(rec), nil)
	r := NewReporter(s)
	require.True(t, r.Tick())
	s.Guard(func() error {
		require.False(t, r.Tick())
		require.False(t, r.Tick())
		return nil
	})
	s.SetBehavior(Left)
	require.True(t, r.Tick())
	require.Equal(t, "0 S\r\n1 L\r\n", rec.buf.String())
	require.Equal(t, uint64(2), r.Seq())
}

func TestReporterSequence(t *testing.T) {
	rec := newLineRecorder()
	r := NewReporter(NewStatus(radio.New(rec), nil))
	r.Interval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()

	const count = 10
	for n := 0; n < count; n++ {
		require.Equal(t, fmt.Sprintf("%d S", n), rec.next(t))
	}
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

func TestReporterSilentDuringGuard(t *testing.T) {
	rec := newLineRecorder()
	s := NewStatus(radio.New(rec), nil)
	r := NewReporter(s)
	r.Interval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	rec.next(t)
	s.Guard(func() error {
		before := rec.Len()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, before, rec.Len())
		return nil
	})
	for {
		line := rec.next(t)
		var seq int
		var label string
		_, err := fmt.Sscanf(line, "%d %s", &seq, &label)
		require.NoError(t, err)
		require.Equal(t, "S", label)
		if seq > 3 {
			break
		}
	}
}

func TestConfig(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, DefaultInterval, conf.Interval)
	conf.Interval = 5 * time.Millisecond
	r := conf.NewReporter(NewStatus(radio.New(newLineRecorder()), nil))
	require.Equal(t, 5*time.Millisecond, r.Interval)
}
