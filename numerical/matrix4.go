// Package numerical implements the small affine-matrix kernel used to
// unfold triangle fans into a shared plane, the 3D analogue of the
// teacher's own numerical package (see numerical/matrix4_test.go in the
// reference pack, which exercises the same flat 16-entry row-major
// layout and Mul convention used here).
package numerical

import "math"

// Matrix4 is a 4x4 matrix stored in row-major order:
//
//	[ 0  1  2  3 ]
//	[ 4  5  6  7 ]
//	[ 8  9 10 11 ]
//	[12 13 14 15 ]
type Matrix4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() *Matrix4 {
	return &Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix4Columns builds an affine basis matrix whose first three
// columns are x, y, z and whose fourth column is the homogeneous origin
// (origin, 1). This is exactly the "[x|y|z|origin]" construction used by
// TriNode.GetBasis.
func NewMatrix4Columns(x, y, z, origin [3]float64) *Matrix4 {
	return &Matrix4{
		x[0], y[0], z[0], origin[0],
		x[1], y[1], z[1], origin[1],
		x[2], y[2], z[2], origin[2],
		0, 0, 0, 1,
	}
}

// Mul returns m*m1.
func (m *Matrix4) Mul(m1 *Matrix4) *Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * m1[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return &out
}

// ApplyPoint applies m to the homogeneous point (p, 1) and drops the
// resulting w component (which is always 1 for the affine matrices this
// package constructs).
func (m *Matrix4) ApplyPoint(p [3]float64) [3]float64 {
	var out [3]float64
	for row := 0; row < 3; row++ {
		out[row] = m[row*4+0]*p[0] + m[row*4+1]*p[1] + m[row*4+2]*p[2] + m[row*4+3]
	}
	return out
}

// Inverse returns the inverse of m.
//
// m is assumed to be an affine matrix whose upper-left 3x3 block is
// orthonormal (true of every basis produced by TriNode.GetBasis, since
// its columns are constructed as mutually-perpendicular unit vectors)
// and whose bottom row is [0 0 0 1]. Under that assumption, the inverse
// of the rotation block is simply its transpose, and the inverse
// translation is -R^T * t.
func (m *Matrix4) Inverse() *Matrix4 {
	rt := [3][3]float64{
		{m[0], m[4], m[8]},
		{m[1], m[5], m[9]},
		{m[2], m[6], m[10]},
	}
	t := [3]float64{m[3], m[7], m[11]}
	var invT [3]float64
	for row := 0; row < 3; row++ {
		invT[row] = -(rt[row][0]*t[0] + rt[row][1]*t[1] + rt[row][2]*t[2])
	}
	return &Matrix4{
		rt[0][0], rt[0][1], rt[0][2], invT[0],
		rt[1][0], rt[1][1], rt[1][2], invT[1],
		rt[2][0], rt[2][1], rt[2][2], invT[2],
		0, 0, 0, 1,
	}
}

// ApproxEqual reports whether m and m1 agree within epsilon in every
// entry. Used only by tests.
func (m *Matrix4) ApproxEqual(m1 *Matrix4, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-m1[i]) > epsilon {
			return false
		}
	}
	return true
}
