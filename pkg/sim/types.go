// Package sim simulates a differential drive car in a walled course.
//
// The simulated Car implements hw.Drive and hw.RangeSensor, and feeds two
// hw.PulseCounter encoders from a background pulse source, so maneuvers can
// be exercised without hardware.
package sim

// Pos2D defines the position in 2D (cm).
type Pos2D struct {
	X, Y float64
}

// OffsetBy moves the position.
func (p *Pos2D) OffsetBy(off Pos2D) {
	p.X += off.X
	p.Y += off.Y
}

// Pose2D defines the pose in 2D.
type Pose2D struct {
	Pos2D
	Orientation Angle
}

// Angle is the common representation of angle, in radians.
type Angle float64

// Segment is a wall between two points.
type Segment struct {
	A, B Pos2D
}

// World answers range queries.
type World interface {
	// RangeFrom measures the distance from pose along its orientation to
	// the nearest obstacle, or a negative value when nothing is in range.
	RangeFrom(pose Pose2D) float64
}
