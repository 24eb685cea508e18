// Package digraph is a small library for directed, weighted graphs:
// build a graph in memory, query shortest paths, discover strongly
// connected components, persist to JSON, and hand vertex positions to
// a renderer of your choice.
//
// Everything is organized under six subpackages:
//
//	core/     — Graph, Vertex and Position types; all structural mutation and lookup
//	dijkstra/ — single-source shortest path over non-negative weights
//	scc/      — reachability and strongly-connected-component discovery
//	graphio/  — JSON persistence (load, save, round-trip safe)
//	layout/   — placement heuristic and the Renderer port for visualization
//	builder/  — deterministic topology constructors for tests and benchmarks
//
// The library is single-threaded by contract: a Graph must not be mutated
// while a traversal is running, and two traversals must not share a Graph
// concurrently. Traversal state is owned by each call, never stored on the
// graph, so sequential reuse is always safe.
//
// Quick ASCII example:
//
//	0 ──1──▶ 1 ──4──▶ 2
//
//	dijkstra.ShortestPath(g, 0, 2) == (5, [0 1 2])
//
//	go get github.com/matanb1238/digraph
package digraph
