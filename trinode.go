package geodesic

import "github.com/nayl-gafurov/geodesic-path/numerical"

// nodeHandle addresses a TriNode inside a Mesh's arena. noHandle marks
// "no parent" / "not found".
type nodeHandle int32

const noHandle nodeHandle = -1

// TriNode is an "extended triangle": a node in the hierarchy of
// triangles that cutting produces as the path refiner subdivides the
// mesh. It tracks the 3D triangle it covers, an optional unfolded planar
// image set by the wedge unfolder, any children produced by cutting it,
// and its parent (noHandle for top-level nodes).
type TriNode struct {
	Indices  [3]int
	Triangle Triangle3

	// Unfolded is the planar image of Triangle after Mesh.Transform has
	// run, valid only until the next re-edge of this node.
	Unfolded *Triangle3

	// Children tile the same 3D region as Triangle once this node has
	// been cut; a non-empty Children marks the node as refined, and
	// traversal should descend into them instead of using Triangle
	// directly.
	Children []nodeHandle
	Parent   nodeHandle
}

// isLeaf reports whether this node has not been refined by a cut.
func (n *TriNode) isLeaf() bool {
	return len(n.Children) == 0
}

// hasVertex reports whether vertex index v occupies one of this node's
// three corners.
func (n *TriNode) hasVertex(v int) bool {
	return n.Indices[0] == v || n.Indices[1] == v || n.Indices[2] == v
}

// hasVertices reports whether both u and v occupy corners of this node.
func (n *TriNode) hasVertices(u, v int) bool {
	return n.hasVertex(u) && n.hasVertex(v)
}

// GetBasis builds an orthonormal affine basis anchored at edge[0], with
// x pointing toward edge[1], whose z axis is the oriented triangle
// normal. The orientation of z depends on whether edge[1] is this node's
// middle slot (Indices[1]): that is the convention that determines which
// side of the edge the triangle unfolds toward in Mesh.Transform.
//
// tri supplies the three corner positions to use (the node's original
// Triangle on the first call of an unfold chain, or a previously
// unfolded image on later calls).
func (n *TriNode) GetBasis(edge [2]int, tri Triangle3) *numerical.Matrix4 {
	corner := func(idx int) Coord3D {
		for i, v := range n.Indices {
			if v == idx {
				return tri[i]
			}
		}
		panic("geodesic: edge vertex does not belong to this node")
	}
	a := corner(edge[0])
	b := corner(edge[1])

	// The remaining vertex, i.e. the one that is neither edge[0] nor
	// edge[1].
	var c Coord3D
	for i, v := range n.Indices {
		if v != edge[0] && v != edge[1] {
			c = tri[i]
			break
		}
	}

	x := b.Sub(a).Normalize()
	var z Coord3D
	if edge[1] == n.Indices[1] {
		z = c.Sub(a).Cross(x).Normalize()
	} else {
		z = x.Cross(c.Sub(a)).Normalize()
	}
	y := z.Cross(x)

	return numerical.NewMatrix4Columns(
		[3]float64{x.X, x.Y, x.Z},
		[3]float64{y.X, y.Y, y.Z},
		[3]float64{z.X, z.Y, z.Z},
		[3]float64{a.X, a.Y, a.Z},
	)
}
