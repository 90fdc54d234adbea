package geodesic

import (
	"math"

	"github.com/nayl-gafurov/geodesic-path/plane2d"
)

// Coord3D is a point or vector in 3-space.
type Coord3D struct {
	X, Y, Z float64
}

// Add returns c+c1.
func (c Coord3D) Add(c1 Coord3D) Coord3D {
	return Coord3D{c.X + c1.X, c.Y + c1.Y, c.Z + c1.Z}
}

// Sub returns c-c1.
func (c Coord3D) Sub(c1 Coord3D) Coord3D {
	return Coord3D{c.X - c1.X, c.Y - c1.Y, c.Z - c1.Z}
}

// Scale returns c scaled by s.
func (c Coord3D) Scale(s float64) Coord3D {
	return Coord3D{c.X * s, c.Y * s, c.Z * s}
}

// Dot returns the dot product of c and c1.
func (c Coord3D) Dot(c1 Coord3D) float64 {
	return c.X*c1.X + c.Y*c1.Y + c.Z*c1.Z
}

// Cross returns the cross product c x c1.
func (c Coord3D) Cross(c1 Coord3D) Coord3D {
	return Coord3D{
		c.Y*c1.Z - c.Z*c1.Y,
		c.Z*c1.X - c.X*c1.Z,
		c.X*c1.Y - c.Y*c1.X,
	}
}

// Norm returns the Euclidean magnitude of c.
func (c Coord3D) Norm() float64 {
	return math.Sqrt(c.Dot(c))
}

// Dist returns the Euclidean distance between c and c1.
func (c Coord3D) Dist(c1 Coord3D) float64 {
	return c.Sub(c1).Norm()
}

// Normalize returns c scaled to unit length.
//
// The behavior is undefined if c has zero length.
func (c Coord3D) Normalize() Coord3D {
	return c.Scale(1 / c.Norm())
}

// XY drops the Z component, used to project an already-unfolded (and
// therefore effectively planar) point into plane2d's coordinate space.
func (c Coord3D) XY() plane2d.Coord {
	return plane2d.Coord{X: c.X, Y: c.Y}
}
