package geodesic

import "github.com/nayl-gafurov/geodesic-path/plane2d"

// thinWedgeAreaThreshold is the per-triangle area, in SCALE-magnified
// units, under which a two-triangle wedge is considered thin enough to
// skip unfolding entirely.
const thinWedgeAreaThreshold = 2.0

// thinWedgeShortcut implements the performance bail-out for thin,
// near-planar two-triangle wedges. It only applies once both wedge
// triangles already have a parent, i.e. both were already produced by an
// earlier cut: two pristine, never-cut triangles always fall through to
// a full unfold-and-cut. Given two parents, the shortcut further
// requires that t0's parent does not already carry m or u as a corner
// and t1's parent does not already carry v, and that both triangles are
// smaller than thinWedgeAreaThreshold; only then is the wedge resolved
// directly from its current (already re-edged) indices without
// unfolding or cutting.
func (m *Mesh) thinWedgeShortcut(w Wedge, u, mIdx, v int) ([]int, bool) {
	if len(w) != 2 {
		return nil, false
	}
	t0, t1 := m.node(w[0]), m.node(w[1])

	if t0.Parent == noHandle || t1.Parent == noHandle {
		return nil, false
	}
	parent0, parent1 := m.node(t0.Parent), m.node(t1.Parent)
	if parent0.hasVertex(mIdx) || parent0.hasVertex(u) || parent1.hasVertex(v) {
		return nil, false
	}
	if t0.Triangle.Area() >= thinWedgeAreaThreshold || t1.Triangle.Area() >= thinWedgeAreaThreshold {
		return nil, false
	}
	// t0.Indices[0] is m by construction of FindWedge; the assertion
	// flagged in spec.md's Open Questions.
	if t0.Indices[0] != mIdx {
		panic("geodesic: wedge not re-edged to m in slot 0")
	}
	return []int{t0.Indices[1], t0.Indices[2], t1.Indices[2]}, true
}

// sharedParent reports whether a and b are both children of the same
// earlier cut, i.e. the interior edge between them is an artifact of
// that cut rather than original mesh topology.
func sharedParent(a, b *TriNode) bool {
	return a.Parent != noHandle && a.Parent == b.Parent
}

// cutWedge is the cutter and path rewriter (spec.md 4.8): it unfolds w,
// intersects the chord from u to v with each interior wedge edge,
// subdivides the crossed triangles, and returns the resulting vertex
// index sub-path from u to v (exclusive of m, which a qualifying wedge
// always routes around).
func (m *Mesh) cutWedge(w Wedge, u, v int) []int {
	m.Unfold(w)

	first := m.node(w[0])
	last := m.node(w[len(w)-1])
	chord := plane2d.NewSegment(first.Unfolded[1].XY(), last.Unfolded[2].XY())

	path := []int{u}

	for i := 0; i < len(w)-1; i++ {
		h := w[i]
		n := m.node(h)
		next := m.node(w[i+1])
		if sharedParent(n, next) {
			continue
		}

		edge := plane2d.NewSegment(n.Unfolded[0].XY(), n.Unfolded[2].XY())
		q, ok := chord.Intersect(edge)
		if !ok {
			continue
		}

		a := m.Vertices[n.Indices[0]]
		b := m.Vertices[n.Indices[2]]
		dist := q.Sub(edge.P0).Norm()
		p := a.Add(b.Sub(a).Normalize().Scale(dist))
		k := m.AddVertex(p)

		lastIdx := path[len(path)-1]
		m.Cut(h, cutPoint{Index: lastIdx, Point: m.Vertices[lastIdx]}, cutPoint{Index: k, Point: p})
		path = append(path, k)
	}

	// Force the final cut on the last wedge triangle so the sub-path
	// always reaches v, regardless of whether the loop above found an
	// intersection on its incoming edge.
	lastIdx := path[len(path)-1]
	vPoint := m.Vertices[last.Indices[2]]
	m.Cut(w[len(w)-1], cutPoint{Index: lastIdx, Point: m.Vertices[lastIdx]}, cutPoint{Index: last.Indices[2], Point: vPoint})
	path = append(path, last.Indices[2])

	return path
}

// refineWindow attempts to replace the 3-vertex window (u, mIdx, v) with
// a shorter sub-path. It returns ok=false if no wedge qualifies for
// refinement (including the degenerate case where every candidate
// triangle is collinear).
func (m *Mesh) refineWindow(u, mIdx, v int) ([]int, bool) {
	w, ok := m.FindWedge(u, mIdx, v)
	if !ok {
		return nil, false
	}

	if sub, ok := m.thinWedgeShortcut(w, u, mIdx, v); ok {
		return sub, true
	}

	sub := m.cutWedge(w, u, v)
	if len(sub) < 2 {
		// Degenerate recovery: roll back the speculative subdivision and
		// fall back to the original endpoints.
		if parent := m.node(w[0]).Parent; parent != noHandle {
			m.node(parent).Children = nil
		}
		return []int{u, v}, true
	}
	return sub, true
}

// Refine repeatedly scans path for a 3-window that can be improved,
// splicing in the replacement and restarting the scan, until no window
// improves. It returns the refined path; the input slice is not modified.
func (m *Mesh) Refine(path []int) []int {
	for {
		improved := false
		for i := 0; i+2 < len(path); i++ {
			sub, ok := m.refineWindow(path[i], path[i+1], path[i+2])
			if !ok {
				continue
			}
			next := make([]int, 0, len(path)-1+len(sub))
			next = append(next, path[:i]...)
			next = append(next, sub...)
			next = append(next, path[i+3:]...)
			path = next
			improved = true
			break
		}
		if !improved {
			return path
		}
	}
}
