package geodesic

import "github.com/nayl-gafurov/geodesic-path/numerical"

// Mesh is the growing collection of 3D vertex coordinates and the
// top-level TriNodes built from the input triangle buffer. It exclusively
// owns the top-level nodes; each TriNode exclusively owns its own
// Children, which the Mesh still stores in the same arena for simplicity
// of addressing (see nodeHandle).
type Mesh struct {
	Vertices []Coord3D
	nodes    []*TriNode
	topLevel []nodeHandle
}

// NewMesh returns an empty Mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends c to the vertex store and returns its index. Vertex
// indices are never invalidated once assigned.
func (m *Mesh) AddVertex(c Coord3D) int {
	m.Vertices = append(m.Vertices, c)
	return len(m.Vertices) - 1
}

// addNode allocates a TriNode in the arena and returns its handle.
func (m *Mesh) addNode(n *TriNode) nodeHandle {
	m.nodes = append(m.nodes, n)
	return nodeHandle(len(m.nodes) - 1)
}

// node dereferences a handle.
func (m *Mesh) node(h nodeHandle) *TriNode {
	return m.nodes[h]
}

// AddTriangle creates a new top-level TriNode for the three given vertex
// indices, using their current positions in the vertex store.
func (m *Mesh) AddTriangle(indices [3]int) {
	tri := Triangle3{
		m.Vertices[indices[0]],
		m.Vertices[indices[1]],
		m.Vertices[indices[2]],
	}
	h := m.addNode(&TriNode{Indices: indices, Triangle: tri, Parent: noHandle})
	m.topLevel = append(m.topLevel, h)
}

// leaves appends the current leaf frontier under h (h itself if it has
// not been cut, or the leaf frontier of each child otherwise) onto out.
func (m *Mesh) leaves(h nodeHandle, out []nodeHandle) []nodeHandle {
	n := m.node(h)
	if n.isLeaf() {
		return append(out, h)
	}
	for _, c := range n.Children {
		out = m.leaves(c, out)
	}
	return out
}

// allLeaves returns the handles of every currently-unrefined TriNode in
// the mesh: this is the frontier that wedge discovery searches.
func (m *Mesh) allLeaves() []nodeHandle {
	var out []nodeHandle
	for _, h := range m.topLevel {
		out = m.leaves(h, out)
	}
	return out
}

// reEdge rewrites n's Indices so that slot 0 holds a, slot 1 holds b and
// slot 2 holds the remaining vertex, recomputes Triangle from the vertex
// store in the new order, and clears Unfolded (which is only valid for
// the previous edge ordering). a and b must both already be among n's
// Indices.
func (m *Mesh) reEdge(h nodeHandle, a, b int) {
	n := m.node(h)
	var c int
	for _, v := range n.Indices {
		if v != a && v != b {
			c = v
			break
		}
	}
	n.Indices = [3]int{a, b, c}
	n.Triangle = Triangle3{m.Vertices[a], m.Vertices[b], m.Vertices[c]}
	n.Unfolded = nil
}

// Transform writes n's Unfolded triangle as `to . from^-1` applied to
// each vertex of n.Triangle, then recurses into n's children with the
// same (from, to) pair: children inherit the unfolding of their parent.
func (m *Mesh) Transform(h nodeHandle, from, to *numerical.Matrix4) {
	n := m.node(h)
	combined := to.Mul(from.Inverse())
	unfolded := Triangle3{}
	for i, v := range n.Triangle {
		p := combined.ApplyPoint([3]float64{v.X, v.Y, v.Z})
		unfolded[i] = Coord3D{X: p[0], Y: p[1], Z: p[2]}
	}
	n.Unfolded = &unfolded
	for _, c := range n.Children {
		m.Transform(c, from, to)
	}
}
