// Package geodesic refines an edge-following shortest path on a
// triangulated 3D surface mesh into an approximate geodesic.
//
// Given a mesh (vertices and triangle indices) and two vertex indices, the
// entry point GetPath computes the graph shortest path along mesh edges,
// then repeatedly straightens it by unfolding adjacent triangle fans into
// a plane, cutting the mesh where the straight chord crosses an interior
// edge, and splicing the resulting vertex into the path. Iteration stops
// once no window of three consecutive path vertices can be improved.
//
// The algorithm is a heuristic, not an exact geodesic solver.
package geodesic
