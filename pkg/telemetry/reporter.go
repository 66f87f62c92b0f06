package telemetry

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
)

// Reporter emits "<seq> <behavior>" lines on the radio link once per
// Interval, skipping ticks while a guarded section is running. Emitted
// sequence numbers start from 0 and never skip.
type Reporter struct {
	Status   *Status
	Interval time.Duration

	seq uint64
}

// NewReporter creates a Reporter.
func NewReporter(status *Status) *Reporter {
	return &Reporter{Status: status, Interval: defaultConfig.Interval}
}

// Name implements Named.
func (r *Reporter) Name() string {
	return "telemetry"
}

// Seq gets the sequence number of the next line. It must not be called
// concurrently with Run.
func (r *Reporter) Seq() uint64 {
	return r.seq
}

// Run implements Runnable. It only returns when ctx is canceled.
func (r *Reporter) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	r.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Tick emits one line unless the mission gap flag is set.
func (r *Reporter) Tick() (emitted bool) {
	err := r.Status.Link.Do(func(w io.Writer) error {
		if r.Status.InGap() {
			return nil
		}
		if _, err := fmt.Fprintf(w, "%d %c\r\n", r.seq, byte(r.Status.Behavior())); err != nil {
			return err
		}
		r.seq++
		emitted = true
		return nil
	})
	if err != nil {
		glog.Errorf("telemetry write error: %v", err)
	}
	return
}
