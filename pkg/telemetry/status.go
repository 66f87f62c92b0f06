// Package telemetry reports the robot's current behavior over the radio
// link while the mission path is blocked in maneuvers.
package telemetry

import (
	"io"
	"sync/atomic"

	"github.com/robotalks/mazebot/pkg/hw"
	"github.com/robotalks/mazebot/pkg/radio"
)

// Behavior is the single character label of the current maneuver.
type Behavior byte

// Behaviors.
const (
	Straight Behavior = 'S'
	Left     Behavior = 'L'
	Right    Behavior = 'R'
	Back     Behavior = 'B'
)

// String implements fmt.Stringer.
func (b Behavior) String() string {
	return string(rune(b))
}

// IsValid checks if b is one of the known behaviors.
func (b Behavior) IsValid() bool {
	switch b {
	case Straight, Left, Right, Back:
		return true
	}
	return false
}

// Snapshot is a read-only copy of Status.
type Snapshot struct {
	Behavior Behavior
	Gap      bool
}

// Status is shared between the mission path (the only writer) and the
// Reporter (reader). While a guarded section is running, the mission gap
// flag is set and the Reporter stays silent.
type Status struct {
	Link      *radio.Link
	Indicator hw.Indicator

	behavior atomic.Uint32
	gap      atomic.Bool
}

// NewStatus creates a Status starting with Straight behavior.
func NewStatus(link *radio.Link, indicator hw.Indicator) *Status {
	s := &Status{Link: link, Indicator: indicator}
	s.SetBehavior(Straight)
	return s
}

// SetBehavior updates the behavior label.
func (s *Status) SetBehavior(b Behavior) {
	s.behavior.Store(uint32(b))
}

// Behavior gets the behavior label.
func (s *Status) Behavior() Behavior {
	return Behavior(s.behavior.Load())
}

// InGap indicates a guarded section is running.
func (s *Status) InGap() bool {
	return s.gap.Load()
}

// Snapshot reads the current status.
func (s *Status) Snapshot() Snapshot {
	return Snapshot{Behavior: s.Behavior(), Gap: s.InGap()}
}

// Guard runs fn as a guarded section. The gap flag is raised under the radio
// lock, so once Guard enters fn no telemetry line is in flight. The flag and
// the indicator are restored on every exit path of fn.
func (s *Status) Guard(fn func() error) error {
	s.Link.Do(func(io.Writer) error {
		s.gap.Store(true)
		return nil
	})
	s.indicator().SetActive(true)
	defer func() {
		s.gap.Store(false)
		s.indicator().SetActive(false)
	}()
	return fn()
}

func (s *Status) indicator() hw.Indicator {
	if s.Indicator == nil {
		return hw.NopIndicator
	}
	return s.Indicator
}
