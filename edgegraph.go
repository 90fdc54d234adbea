package geodesic

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
)

// vertexID renders a vertex index as the string ID lvlath's core.Graph
// addresses vertices by.
func vertexID(idx int) string {
	return strconv.Itoa(idx)
}

// buildEdgeGraph constructs the adjacency graph of the mesh's
// 1-skeleton: every ordered pair of endpoints of every input triangle
// contributes an entry, weighted by floor(||p_u - p_v|| * 1000).
// Duplicate entries (one per incident triangle) are allowed; lvlath's
// multigraph mode tolerates them without changing Dijkstra's result.
func buildEdgeGraph(mesh *Mesh, trianglesIdx [][3]int) *core.Graph {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := range mesh.Vertices {
		essentials.Must(g.AddVertex(vertexID(i)))
	}
	addEdge := func(a, b int) {
		w := int64(math.Floor(mesh.Vertices[a].Dist(mesh.Vertices[b]) * 1000))
		_, err := g.AddEdge(vertexID(a), vertexID(b), w)
		essentials.Must(err)
	}
	for _, tri := range trianglesIdx {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			addEdge(a, b)
			addEdge(b, a)
		}
	}
	return g
}

// shortestPath runs Dijkstra from start to end over g and reconstructs
// the vertex-index path by walking the predecessor map. It returns
// ErrNoPath if end is unreachable from start.
func shortestPath(g *core.Graph, start, end int) ([]int, error) {
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(vertexID(start)), dijkstra.WithReturnPath())
	if err != nil {
		return nil, errors.Wrap(err, "shortest path")
	}
	if dist[vertexID(end)] == math.MaxInt64 {
		return nil, ErrNoPath
	}

	var reversed []string
	cur := vertexID(end)
	for cur != vertexID(start) {
		reversed = append(reversed, cur)
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, ErrNoPath
		}
		cur = p
	}
	reversed = append(reversed, vertexID(start))

	path := make([]int, len(reversed))
	for i, id := range reversed {
		v, convErr := strconv.Atoi(id)
		if convErr != nil {
			return nil, errors.Wrap(convErr, "shortest path")
		}
		path[len(reversed)-1-i] = v
	}
	return path, nil
}
