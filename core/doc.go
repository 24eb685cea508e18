// Package core provides the fundamental in-memory directed weighted graph.
//
// What
//
//   - Graph owns the vertex set and two mirrored adjacency maps
//     (outgoing and incoming), keyed by int64 vertex identity.
//   - Vertices carry an optional 3D Position used by the layout package;
//     positions never influence topology or algorithms.
//   - All structural mutation (AddVertex, RemoveVertex, AddEdge, RemoveEdge)
//     and lookup (HasVertex, OutNeighbors, InNeighbors, Edges, ...) lives here.
//
// Invariants
//
//   - Mirror: out[src][dst] and in[dst][src] always agree, on every mutation.
//   - Weights are non-negative; self-loops and parallel edges are rejected.
//     Re-adding an edge between the same ordered pair upserts the weight.
//   - Every ID appearing in either adjacency map exists in the vertex set.
//
// Concurrency
//
//	Graph is not safe for concurrent use. Callers must not mutate topology
//	while a traversal from dijkstra or scc is in progress, and must not run
//	two traversals on the same Graph simultaneously. Traversal scratch state
//	lives in per-call maps rather than on vertices, so purely sequential
//	reuse never needs a reset.
//
// Staleness
//
//	Revision() returns a counter bumped on every structural mutation; cache
//	a traversal result together with the revision it was computed at and
//	recompute when they differ.
package core
