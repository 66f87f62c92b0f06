// Package classify tells the cross-section of an obstacle from three range
// samples taken while swinging the car left and right of the baseline.
package classify

import "fmt"

// Shape is the cross-section of an obstacle.
type Shape int

// Shapes.
const (
	Square Shape = iota
	Slope
	Sharp
	Depression
)

// String returns the word reported on the radio link.
func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Slope:
		return "slope"
	case Sharp:
		return "sharp"
	case Depression:
		return "depression"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Profile holds the three samples (cm) of one classification.
type Profile struct {
	Baseline float64
	Left     float64
	Right    float64
}

// Deltas returns Left-Baseline and Right-Baseline. The subtraction is done
// in single precision, which is what the thresholds were tuned against.
func (p Profile) Deltas() (delta1, delta2 float64) {
	b := float32(p.Baseline)
	return float64(float32(p.Left) - b), float64(float32(p.Right) - b)
}

// Shape classifies the profile.
func (p Profile) Shape() Shape {
	return Classify(p.Deltas())
}

// Classify maps the deltas to a Shape. Thresholds are hardware tuned and
// the evaluation order matters: the second test overrides the first.
//
// The else branches bind to the innermost condition, so Sharp requires
// delta2 >= 4, and delta1 < -4 with delta2 <= 0.8 keeps the result of the
// first test.
func Classify(delta1, delta2 float64) Shape {
	shape := Square
	if delta1 < -0.8 && delta2 > 0.7 && delta1 > -5 && delta1 < -1.9 {
		if delta2 > 2 {
			shape = Slope
		} else {
			shape = Square
		}
	}
	if delta1 < -4 && delta2 > 0.8 {
		if delta2 < 4 {
			shape = Depression
		} else {
			shape = Sharp
		}
	}
	return shape
}
