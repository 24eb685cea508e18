// Package layout bridges the graph model and a host-supplied renderer.
//
// What
//
//   - Place(g) assigns a coordinate to every unplaced vertex using the
//     neighbor-averaging heuristic, writes positions back into the graph,
//     and returns a Snapshot of all positions, edge pairs, and viewport
//     bounds.
//   - Plot(g, r) is Place followed by r.Render(snapshot).
//   - Renderer is the presentation port: the library computes placement,
//     the host draws. No plotting dependency lives in this module.
//
// Why
//
//	Rendering is a presentation concern. Keeping it behind a one-method
//	interface lets hosts plug in SVG writers, terminal plotters, or test
//	doubles without the core caring.
//
// Determinism
//
//	Vertices are placed in ascending ID order and anchors are chosen from
//	the lowest-ID placed neighbors. Pass WithSeed to pin the random
//	fallback and make an entire placement reproducible.
package layout
