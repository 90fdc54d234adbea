package geodesic

import (
	"math"
	"testing"
)

func newRightTriangleMesh() (*Mesh, nodeHandle, int, int, int) {
	m := NewMesh()
	a := m.AddVertex(Coord3D{0, 0, 0})
	b := m.AddVertex(Coord3D{2, 0, 0})
	c := m.AddVertex(Coord3D{0, 2, 0})
	m.AddTriangle([3]int{a, b, c})
	return m, m.topLevel[0], a, b, c
}

func childrenArea(m *Mesh, handles []nodeHandle) float64 {
	var total float64
	for _, h := range handles {
		total += m.node(h).Triangle.Area()
	}
	return total
}

// A cut whose "first" point coincides with one of the triangle's own
// corners degenerates to a single split on "second": exactly 2 children,
// tiling the same area as the parent.
func TestMeshCutVertexPlusEdgeProducesTwoChildren(t *testing.T) {
	m, h, a, b, _ := newRightTriangleMesh()
	parentArea := m.node(h).Triangle.Area()

	mid := m.AddVertex(Coord3D{1, 0, 0})
	children := m.Cut(h,
		cutPoint{Index: a, Point: m.Vertices[a]},
		cutPoint{Index: mid, Point: m.Vertices[mid]},
	)
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if got := childrenArea(m, children); math.Abs(got-parentArea) > 1e-9 {
		t.Errorf("children area %v, want %v", got, parentArea)
	}
	for _, ch := range children {
		if !m.node(ch).hasVertex(mid) {
			t.Errorf("child %v missing the cut vertex", ch)
		}
	}
	if m.node(h).isLeaf() {
		t.Error("h should no longer be a leaf after Cut")
	}
	_ = b
}

// A cut whose two points land on different edges of the triangle produces
// 3 children: the first split's untouched half, plus the two children of
// splitting the other half again.
func TestMeshCutTwoEdgesProducesThreeChildren(t *testing.T) {
	m, h, _, _, _ := newRightTriangleMesh()
	parentArea := m.node(h).Triangle.Area()

	// Midpoint of B-C and midpoint of C-A.
	firstPt := m.Vertices[1].Add(m.Vertices[2]).Scale(0.5)
	secondPt := m.Vertices[2].Add(m.Vertices[0]).Scale(0.5)
	first := m.AddVertex(firstPt)
	second := m.AddVertex(secondPt)

	children := m.Cut(h,
		cutPoint{Index: first, Point: firstPt},
		cutPoint{Index: second, Point: secondPt},
	)
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	if got := childrenArea(m, children); math.Abs(got-parentArea) > 1e-9 {
		t.Errorf("children area %v, want %v", got, parentArea)
	}
}

// Two points neither of which lies on an edge or vertex of the triangle
// leave it uncut.
func TestMeshCutNoMatchProducesNoChildren(t *testing.T) {
	m, h, _, _, _ := newRightTriangleMesh()
	far := m.AddVertex(Coord3D{10, 10, 10})
	farther := m.AddVertex(Coord3D{20, 20, 20})

	children := m.Cut(h,
		cutPoint{Index: far, Point: m.Vertices[far]},
		cutPoint{Index: farther, Point: m.Vertices[farther]},
	)
	if len(children) != 0 {
		t.Fatalf("got %d children, want 0", len(children))
	}
	if !m.node(h).isLeaf() {
		t.Error("h should remain a leaf")
	}
}

func TestMeshReEdgePreservesVertexSet(t *testing.T) {
	m, h, a, b, c := newRightTriangleMesh()
	m.reEdge(h, b, c)
	n := m.node(h)
	if n.Indices != ([3]int{b, c, a}) {
		t.Errorf("got %v, want [%d %d %d]", n.Indices, b, c, a)
	}
	if n.Unfolded != nil {
		t.Error("reEdge must clear any stale Unfolded image")
	}
}
