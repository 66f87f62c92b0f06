package sim

import "math"

// Walls is a World made of wall segments.
type Walls struct {
	Segments []Segment
	// MaxRange beyond which nothing is detected, 0 means unlimited.
	MaxRange float64
}

// Box creates a rectangular room with the corner at origin.
func Box(cx, cy float64) *Walls {
	a, b, c, d := Pos2D{0, 0}, Pos2D{cx, 0}, Pos2D{cx, cy}, Pos2D{0, cy}
	return new(Walls).Add(Segment{a, b}, Segment{b, c}, Segment{c, d}, Segment{d, a})
}

// Add adds wall segments.
func (w *Walls) Add(segs ...Segment) *Walls {
	w.Segments = append(w.Segments, segs...)
	return w
}

// RangeFrom implements World.
func (w *Walls) RangeFrom(pose Pose2D) float64 {
	dir := pose.Orientation.Project(1)
	best := -1.0
	for _, seg := range w.Segments {
		if d, ok := castRay(pose.Pos2D, dir, seg); ok && (best < 0 || d < best) {
			best = d
		}
	}
	if w.MaxRange > 0 && best > w.MaxRange {
		return -1
	}
	return best
}

// castRay intersects the ray from o along unit vector dir with seg.
func castRay(o, dir Pos2D, seg Segment) (float64, bool) {
	ex, ey := seg.B.X-seg.A.X, seg.B.Y-seg.A.Y
	denom := dir.X*ey - dir.Y*ex
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	ax, ay := seg.A.X-o.X, seg.A.Y-o.Y
	t := (ax*ey - ay*ex) / denom
	u := (ax*dir.Y - ay*dir.X) / denom
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}
