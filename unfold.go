package geodesic

import "github.com/nayl-gafurov/geodesic-path/numerical"

// Unfold flattens a wedge into a shared plane by composing, for each
// triangle in turn, an affine basis change from that triangle's own
// frame into the running "to" frame established by the previous
// triangle. The result is that consecutive triangles share their
// outgoing edge in the unfolded plane, and every triangle's Unfolded
// field ends up populated.
func (m *Mesh) Unfold(w Wedge) {
	basisTo := numerical.Identity4()
	for _, h := range w {
		n := m.node(h)
		basisFrom := n.GetBasis([2]int{n.Indices[0], n.Indices[1]}, n.Triangle)
		m.Transform(h, basisFrom, basisTo)
		basisTo = n.GetBasis([2]int{n.Indices[0], n.Indices[2]}, *n.Unfolded)
	}
}
