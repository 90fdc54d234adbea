package geodesic

import "github.com/pkg/errors"

// ErrBadInput indicates malformed input buffers: a coordinates or indices
// slice whose length is not a multiple of 3, or an index addressing a
// vertex outside the coordinates buffer.
var ErrBadInput = errors.New("geodesic: bad input")

// ErrNoPath indicates that start and end are not connected by the mesh's
// 1-skeleton, so Dijkstra found no route between them.
var ErrNoPath = errors.New("geodesic: no path between start and end")

// ErrDegenerate indicates that every triangle available to a required
// wedge was collinear (zero area), so no angle score could be computed.
//
// Degeneracies encountered while refining an individual window are not
// reported this way; they simply leave that window unimproved and the
// outer loop continues. No function in this package returns
// ErrDegenerate; it is exported so callers can match it with errors.Is.
var ErrDegenerate = errors.New("geodesic: degenerate geometry")
