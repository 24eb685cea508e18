// Package scc defines error sentinels for reachability and
// strongly-connected-component queries over a core.Graph.
package scc

import "errors"

// Sentinel errors for scc execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrVertexNotFound is returned when the queried vertex is absent.
	ErrVertexNotFound = errors.New("scc: vertex not found")
)
