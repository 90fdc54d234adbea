package plane2d

import "math"

// collinearEpsilon is float64 machine epsilon (2^-52), the threshold used
// to decide whether two segment directions are parallel.
const collinearEpsilon = 0x1p-52

// segmentMargin is the distance, measured along the segment whose
// intersection is being tested, that an intersection point must keep from
// either endpoint to be reported. It keeps "intersections" from landing
// exactly on a vertex, which would otherwise produce zero-area children
// when the mesh is cut there.
const segmentMargin = 0.01

// Segment is a directed line segment between two points.
type Segment struct {
	P0, P1 Coord
}

// NewSegment constructs a Segment from its endpoints.
func NewSegment(p0, p1 Coord) Segment {
	return Segment{P0: p0, P1: p1}
}

// Dir returns the (non-normalized) direction from P0 to P1.
func (s Segment) Dir() Coord {
	return s.P1.Sub(s.P0)
}

// Len returns the length of the segment.
func (s Segment) Len() float64 {
	return s.Dir().Norm()
}

// Collinear reports whether s and other point in parallel (or
// anti-parallel) directions, i.e. whether the 2x2 determinant of their
// directions is within machine epsilon of zero.
func (s Segment) Collinear(other Segment) bool {
	d1, d2 := s.Dir(), other.Dir()
	return math.Abs(d1.X*d2.Y-d1.Y*d2.X) < collinearEpsilon
}

// Intersect computes the point where the infinite lines through s and
// other cross, using Cramer's rule on the 2x2 linear system, and returns
// it only if it lies strictly in the interior of s — more precisely, if
// its signed parameter along s keeps at least segmentMargin away from
// either of s's endpoints.
//
// Collinear segments never intersect (ok == false).
//
// The source this is grounded on used a slope-intercept form (k, b =
// dy/dx, y0-k*x0) which is undefined for vertical segments; unfolded
// triangle edges can be vertical, so this implementation uses the
// parametric/Cramer's-rule form instead. See DESIGN.md.
func (s Segment) Intersect(other Segment) (point Coord, ok bool) {
	if s.Collinear(other) {
		return Coord{}, false
	}

	d1, d2 := s.Dir(), other.Dir()

	// Solve: p0 + t*d1 = q0 + u*d2  =>  t*d1 - u*d2 = q0 - p0.
	a11, a12 := d1.X, -d2.X
	a21, a22 := d1.Y, -d2.Y
	b1 := other.P0.X - s.P0.X
	b2 := other.P0.Y - s.P0.Y

	det := a11*a22 - a12*a21
	t := (b1*a22 - a12*b2) / det

	candidate := s.P0.Add(d1.Scale(t))

	// Signed parameter of candidate along s, measured in s's own units.
	param := candidate.Sub(s.P0).Dot(d1.Normalize())
	length := d1.Norm()
	if param <= segmentMargin || param >= length-segmentMargin {
		return Coord{}, false
	}
	return candidate, true
}
