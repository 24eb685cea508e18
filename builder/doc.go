// Package builder assembles core graphs from deterministic topology
// constructors.
//
// What
//
//   - Build(gopts, cons...) creates a graph and applies constructors in
//     order: Path, Cycle, Complete, Star over vertex IDs 0..n-1.
//   - Same inputs and constructor order always produce identical graphs,
//     which makes builder fixtures safe anchors for golden tests and
//     benchmarks.
//
// Usage
//
//	g, err := builder.Build(nil, builder.Cycle(5, 1))
//	if err != nil {
//	    // ErrTooFewVertices, ErrNilConstructor, or a core error
//	}
package builder
