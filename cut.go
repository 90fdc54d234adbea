package geodesic

// edgeCutTolerance is the magnitude of the cross-product test used to
// decide whether a point lies on a triangle edge, in the same
// SCALE-magnified units as the rest of the mesh.
const edgeCutTolerance = 0.1

// cutPoint pairs a vertex store index with its 3D position: either an
// existing mesh vertex, or one about to be appended.
type cutPoint struct {
	Index int
	Point Coord3D
}

// findSide locates the edge of n that cp lies on, returning the edge's
// two endpoint indices (in n's winding order) and the index of the
// remaining ("opposite") vertex. It reports found=false if cp coincides
// with one of n's own vertices, or does not lie on any edge within
// edgeCutTolerance.
func findSide(n *TriNode, cp cutPoint) (a, b, opposite int, found bool) {
	if n.hasVertex(cp.Index) {
		return 0, 0, 0, false
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (i + 2) % 3
		edge := n.Triangle[j].Sub(n.Triangle[i])
		cross := edge.Cross(cp.Point.Sub(n.Triangle[i]))
		if cross.Norm() < edgeCutTolerance {
			return n.Indices[i], n.Indices[j], n.Indices[k], true
		}
	}
	return 0, 0, 0, false
}

// splitEdge cuts the edge (a,b) of the triangle covered by corners,
// opposite its third vertex, at cp, producing the two triangles that
// partition the original one. corners resolves the current 3D position
// of any vertex index, including cp.Index itself.
func splitEdge(corners func(idx int) Coord3D, a, b, opposite int, cp cutPoint) (*TriNode, *TriNode) {
	pos := func(idx int) Coord3D {
		if idx == cp.Index {
			return cp.Point
		}
		return corners(idx)
	}
	child1 := &TriNode{
		Indices:  [3]int{a, cp.Index, opposite},
		Triangle: Triangle3{pos(a), pos(cp.Index), pos(opposite)},
		Parent:   noHandle,
	}
	child2 := &TriNode{
		Indices:  [3]int{cp.Index, b, opposite},
		Triangle: Triangle3{pos(cp.Index), pos(b), pos(opposite)},
		Parent:   noHandle,
	}
	return child1, child2
}

// Cut subdivides the TriNode at h by inserting first and second, each
// either coincident with one of h's vertices or lying on one of its
// edges, and returns the handles of the 0, 2 or 3 children produced
// (spec.md's "2-4 children per cut" describes the general range; exactly
// two points produces at most 3, since the second cut only ever refines
// one of the two triangles the first cut already produced).
//
// Cut always mutates the arena: it replaces h's existing Children (if
// any; a prior speculative cut can be rolled back this way by the
// caller) with the newly produced set, wiring each child's Parent back
// to h.
func (m *Mesh) Cut(h nodeHandle, first, second cutPoint) []nodeHandle {
	n := m.node(h)
	corners := func(idx int) Coord3D { return m.Vertices[idx] }

	fa, fb, fop, foundFirst := findSide(n, first)
	if !foundFirst {
		sa, sb, sop, foundSecond := findSide(n, second)
		if !foundSecond {
			return m.attachChildren(h, nil)
		}
		c1, c2 := splitEdge(corners, sa, sb, sop, second)
		return m.attachChildren(h, []*TriNode{c1, c2})
	}

	c1, c2 := splitEdge(corners, fa, fb, fop, first)

	// Re-test second against the two newly emitted triangles: whichever
	// one still contains an edge matching second's location is the one
	// to refine further.
	for _, target := range []*TriNode{c1, c2} {
		sa, sb, sop, foundSecond := findSide(target, second)
		if !foundSecond {
			continue
		}
		other := c2
		if target == c2 {
			other = c1
		}
		targetCorners := func(idx int) Coord3D {
			for i, v := range target.Indices {
				if v == idx {
					return target.Triangle[i]
				}
			}
			return m.Vertices[idx]
		}
		sub1, sub2 := splitEdge(targetCorners, sa, sb, sop, second)
		return m.attachChildren(h, []*TriNode{other, sub1, sub2})
	}

	return m.attachChildren(h, []*TriNode{c1, c2})
}

// attachChildren replaces h's Children with the given detached nodes,
// allocating each in the arena and wiring its Parent back to h. A nil or
// empty children slice clears h back to a leaf.
func (m *Mesh) attachChildren(h nodeHandle, children []*TriNode) []nodeHandle {
	n := m.node(h)
	if len(children) == 0 {
		n.Children = nil
		return nil
	}
	handles := make([]nodeHandle, len(children))
	for i, c := range children {
		c.Parent = h
		handles[i] = m.addNode(c)
	}
	n.Children = handles
	return handles
}
