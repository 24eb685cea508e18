// Package dijkstra provides single-source shortest paths over a core.Graph.
//
// What
//
//   - ShortestPath(g, source, target) returns the total path weight and the
//     sequence of vertex IDs from source to target.
//   - source == target yields (0, [source]).
//   - An unreachable target yields (+Inf, []) — a normal result, not an error.
//   - WithMaxDistance(d) prunes exploration beyond distance d.
//
// Why
//
//   - Route queries on small and medium directed weighted graphs.
//   - Foundation for the layout and analysis helpers in this module.
//
// Determinism
//
//	The priority queue orders entries by (distance, vertex ID), so equal
//	distances settle in ascending ID order and results are reproducible.
//
// Correctness notes
//
//   - Path reconstruction stops when the current vertex equals the source.
//     Stopping at "distance zero" would be wrong whenever a zero-weight edge
//     gives an intermediate vertex distance zero.
//   - Reconstruction short-circuits on an unreachable target before any
//     predecessor lookup, so it cannot fault on a missing link.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E)
//
// Usage
//
//	dist, path, err := dijkstra.ShortestPath(g, 0, 2)
//	if err != nil {
//	    // ErrNilGraph or ErrVertexNotFound
//	}
//	if math.IsInf(dist, 1) {
//	    // target not reachable from source
//	}
package dijkstra
