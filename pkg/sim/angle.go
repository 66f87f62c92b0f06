package sim

import "math"

// Headings are counterclockwise from +X and wrapped into (-π, π].

// AngleFromDegrees creates a heading from degrees.
func AngleFromDegrees(d float64) Angle {
	return AngleFromRadians(d * math.Pi / 180)
}

// AngleFromRadians creates a heading from radians.
func AngleFromRadians(r float64) Angle {
	return Angle(math.Atan2(math.Sin(r), math.Cos(r)))
}

// AddRadians turns the heading by r, positive to the left.
func (a Angle) AddRadians(r float64) Angle {
	return AngleFromRadians(float64(a) + r)
}

// Radians gets the heading in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees gets the heading in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Project is the offset of travelling dist along the heading.
func (a Angle) Project(dist float64) Pos2D {
	sin, cos := math.Sincos(float64(a))
	return Pos2D{X: dist * cos, Y: dist * sin}
}
