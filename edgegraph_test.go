package geodesic

import "testing"

// Invariant 6: every edge of the input triangulation is present in the
// graph in both directions. Only presence is checked here, not weights.
func TestBuildEdgeGraphIsSymmetric(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(Coord3D{0, 0, 0})
	b := m.AddVertex(Coord3D{3, 0, 0})
	c := m.AddVertex(Coord3D{0, 4, 0})
	tris := [][3]int{{a, b, c}}
	m.AddTriangle(tris[0])

	g := buildEdgeGraph(m, tris)

	for _, pair := range [][2]int{{a, b}, {b, c}, {c, a}} {
		u, v := vertexID(pair[0]), vertexID(pair[1])
		if !g.HasEdge(u, v) {
			t.Fatalf("missing edge %s->%s", u, v)
		}
		if !g.HasEdge(v, u) {
			t.Fatalf("missing edge %s->%s", v, u)
		}
	}
}

func TestShortestPathTrivialWhenStartEqualsEnd(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(Coord3D{0, 0, 0})
	b := m.AddVertex(Coord3D{1, 0, 0})
	c := m.AddVertex(Coord3D{0, 1, 0})
	tris := [][3]int{{a, b, c}}
	m.AddTriangle(tris[0])

	g := buildEdgeGraph(m, tris)
	path, err := shortestPath(g, a, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 1 || path[0] != a {
		t.Errorf("got %v, want [%d]", path, a)
	}
}

func TestShortestPathUnreachableIsNoPath(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(Coord3D{0, 0, 0})
	b := m.AddVertex(Coord3D{1, 0, 0})
	c := m.AddVertex(Coord3D{0, 1, 0})
	tris := [][3]int{{a, b, c}}
	m.AddTriangle(tris[0])
	d := m.AddVertex(Coord3D{100, 100, 100})

	g := buildEdgeGraph(m, tris)
	essentialsMustHaveVertex(t, g, d)

	_, err := shortestPath(g, a, d)
	if err != ErrNoPath {
		t.Fatalf("got err %v, want ErrNoPath", err)
	}
}

func essentialsMustHaveVertex(t *testing.T, g interface {
	HasVertex(string) bool
}, idx int) {
	t.Helper()
	if !g.HasVertex(vertexID(idx)) {
		t.Fatalf("vertex %d was never added to the graph", idx)
	}
}
