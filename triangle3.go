package geodesic

import "math"

// Triangle3 is three 3D points, ordered a, b, c.
type Triangle3 [3]Coord3D

// sideLengths returns |bc|, |ca|, |ab|, i.e. the side opposite each
// vertex in the same order as the vertices themselves.
func (t Triangle3) sideLengths() (a, b, c float64) {
	return t[1].Dist(t[2]), t[2].Dist(t[0]), t[0].Dist(t[1])
}

// Area computes the triangle's area via Heron's formula.
func (t Triangle3) Area() float64 {
	a, b, c := t.sideLengths()
	s := (a + b + c) / 2
	radicand := s * (s - a) * (s - b) * (s - c)
	if radicand < 0 {
		// Degenerate/near-collinear triangles can push the radicand
		// slightly negative due to floating-point error.
		radicand = 0
	}
	return math.Sqrt(radicand)
}

// Collinear reports whether the triangle has zero area.
func (t Triangle3) Collinear() bool {
	return t.Area() == 0
}

// Angles returns the interior angles at a, b and c (in that order), with
// the third computed as pi minus the other two so the sum is exact. It
// returns ok=false if the triangle is degenerate.
func (t Triangle3) Angles() (angles [3]float64, ok bool) {
	if t.Collinear() {
		return [3]float64{}, false
	}
	a, b, c := t.sideLengths()

	// Law of cosines: the angle at vertex a is opposite side a.
	alpha := math.Acos(clamp((b*b+c*c-a*a)/(2*b*c), -1, 1))
	beta := math.Acos(clamp((a*a+c*c-b*b)/(2*a*c), -1, 1))
	gamma := math.Pi - alpha - beta
	return [3]float64{alpha, beta, gamma}, true
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
