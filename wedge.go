package geodesic

import (
	"math"

	"github.com/unixpickle/essentials"
)

// maxWedgeSpan bounds how many triangles a single wedge extension may
// walk before giving up. It exists only to keep a malformed (e.g.
// non-manifold) input mesh from spinning trianglePairByEdge forever; a
// well-formed manifold mesh never approaches it.
const maxWedgeSpan = 100000

// maxWedgeAngle is the largest accumulated internal angle, at the
// shared vertex m, that a wedge may have and still be considered an
// improvement candidate.
const maxWedgeAngle = math.Pi - 0.2

// Wedge is a triangle fan around a shared vertex m, ordered from the
// triangle touching u to the triangle touching v. Every handle in a
// Wedge has already been re-edged so Indices[0]==m.
type Wedge []nodeHandle

// trianglePairByEdge returns every current leaf TriNode containing both
// vertex m and vertex u, excluding the node at exclude (noHandle to
// exclude nothing), re-edged so Indices = [m, u, third]. A manifold edge
// interior to the mesh yields exactly two results; a boundary edge
// yields one.
func (m *Mesh) trianglePairByEdge(mIdx, uIdx int, exclude nodeHandle) []nodeHandle {
	var matches []nodeHandle
	for _, h := range m.allLeaves() {
		if h == exclude {
			continue
		}
		if m.node(h).hasVertices(mIdx, uIdx) {
			matches = append(matches, h)
		}
	}
	// Deterministic order: matches is already produced by the mesh's
	// fixed arena/DFS order, but sort explicitly so behavior does not
	// depend on allLeaves' traversal strategy.
	essentials.VoodooSort(matches, func(i, j int) bool { return matches[i] < matches[j] })
	for _, h := range matches {
		m.reEdge(h, mIdx, uIdx)
	}
	return matches
}

// wedgeScore sums the internal angle at m (Indices[0]) over every
// triangle in the wedge, substituting pi for any degenerate (collinear)
// triangle.
func (m *Mesh) wedgeScore(w Wedge) float64 {
	var score float64
	for _, h := range w {
		n := m.node(h)
		angles, ok := n.Triangle.Angles()
		if !ok {
			score += math.Pi
			continue
		}
		score += angles[0]
	}
	return score
}

// extendWedge grows a single-triangle wedge seed out to v by repeatedly
// following the shared-vertex-m triangle fan, stopping once a triangle
// whose outgoing (third) vertex is v has been appended.
func (m *Mesh) extendWedge(seed nodeHandle, mIdx, v int) Wedge {
	w := Wedge{seed}
	last := seed
	s := m.node(seed).Indices[2]
	for i := 0; s != v && i < maxWedgeSpan; i++ {
		next := m.trianglePairByEdge(mIdx, s, last)
		if len(next) == 0 {
			break
		}
		last = next[0]
		w = append(w, last)
		s = m.node(last).Indices[2]
	}
	return w
}

// FindWedge enumerates the two triangle fans around m between u and v
// and returns the one with the lower accumulated angle at m, provided
// that angle is strictly below maxWedgeAngle. It returns ok=false if
// neither fan qualifies (including the case where u and v are not
// connected by any fan around m at all).
func (m *Mesh) FindWedge(u, mIdx, v int) (Wedge, bool) {
	seeds := m.trianglePairByEdge(mIdx, u, noHandle)
	if len(seeds) == 0 {
		return nil, false
	}

	var best Wedge
	bestScore := math.Inf(1)
	for _, seed := range seeds {
		w := m.extendWedge(seed, mIdx, v)
		if len(w) == 0 {
			continue
		}
		if m.node(w[len(w)-1]).Indices[2] != v {
			// This fan ran out (hit maxWedgeSpan or a boundary) without
			// reaching v; it cannot be a candidate.
			continue
		}
		score := m.wedgeScore(w)
		if score < bestScore {
			bestScore = score
			best = w
		}
	}

	if best == nil || bestScore >= maxWedgeAngle {
		return nil, false
	}
	return best, true
}
