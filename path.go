package geodesic

import "github.com/pkg/errors"

// Scale is the fixed factor applied to input coordinates on ingest and
// divided back out on output. It is a numerical-conditioning choice that
// the edge-cut and intersection tolerances elsewhere in this package are
// tuned against; callers must not rescale coordinates themselves.
const Scale = 50000

// GetPath computes the refined geodesic path between vertex indices
// start and end on the mesh described by coordinates (a flat x,y,z,...
// buffer) and indices (a flat triangle-index buffer).
//
// It returns a flat x,y,z,... buffer tracing the path, or ErrBadInput if
// either buffer is malformed, or ErrNoPath if start and end are not
// connected by the mesh's 1-skeleton.
func GetPath(start, end uint32, coordinates []float32, indices []uint32) ([]float32, error) {
	mesh, triangles, err := buildMesh(coordinates, indices)
	if err != nil {
		return nil, err
	}
	if int(start) >= len(mesh.Vertices) || int(end) >= len(mesh.Vertices) {
		return nil, errors.Wrap(ErrBadInput, "start/end out of range")
	}

	graph := buildEdgeGraph(mesh, triangles)
	initial, err := shortestPath(graph, int(start), int(end))
	if err != nil {
		return nil, err
	}

	refined := mesh.Refine(initial)
	return toOutputBuffer(mesh, refined), nil
}

// buildMesh validates and ingests the raw buffers: coordinates are
// scaled by Scale and stored as Coord3D, and each triangle of indices
// becomes a top-level TriNode.
func buildMesh(coordinates []float32, indices []uint32) (*Mesh, [][3]int, error) {
	if len(coordinates)%3 != 0 {
		return nil, nil, errors.Wrap(ErrBadInput, "coordinates length not a multiple of 3")
	}
	if len(indices)%3 != 0 {
		return nil, nil, errors.Wrap(ErrBadInput, "indices length not a multiple of 3")
	}

	mesh := NewMesh()
	numVerts := len(coordinates) / 3
	for i := 0; i < numVerts; i++ {
		mesh.AddVertex(Coord3D{
			X: float64(coordinates[3*i]) * Scale,
			Y: float64(coordinates[3*i+1]) * Scale,
			Z: float64(coordinates[3*i+2]) * Scale,
		})
	}

	numTris := len(indices) / 3
	triangles := make([][3]int, numTris)
	for i := 0; i < numTris; i++ {
		var tri [3]int
		for j := 0; j < 3; j++ {
			idx := indices[3*i+j]
			if int(idx) >= numVerts {
				return nil, nil, errors.Wrap(ErrBadInput, "triangle index out of range")
			}
			tri[j] = int(idx)
		}
		triangles[i] = tri
		mesh.AddTriangle(tri)
	}

	return mesh, triangles, nil
}

// toOutputBuffer maps a vertex-index path to a flat x,y,z,... buffer,
// reversing Scale.
func toOutputBuffer(mesh *Mesh, path []int) []float32 {
	out := make([]float32, 0, len(path)*3)
	for _, idx := range path {
		c := mesh.Vertices[idx]
		out = append(out, float32(c.X/Scale), float32(c.Y/Scale), float32(c.Z/Scale))
	}
	return out
}
