// Package graphio defines the JSON wire format and error sentinels for
// graph persistence.
package graphio

import "errors"

// Sentinel errors for persistence operations.
var (
	// ErrNilGraph is returned when a nil graph is passed to Write or Save.
	ErrNilGraph = errors.New("graphio: graph is nil")

	// ErrParse indicates malformed input: invalid JSON, or a document whose
	// nodes/edges violate the graph invariants (unknown endpoints, negative
	// weights, self-loops). Inspect with errors.Is.
	ErrParse = errors.New("graphio: malformed graph document")
)

// jsonNode is the wire form of one vertex.
// Pos is emitted only when the vertex has a position.
type jsonNode struct {
	ID  int64       `json:"node_id"`
	Pos *[3]float64 `json:"pos,omitempty"`
}

// jsonEdge is the wire form of one directed edge.
type jsonEdge struct {
	Src  int64   `json:"src"`
	W    float64 `json:"w"`
	Dest int64   `json:"dest"`
}

// jsonGraph is the top-level document:
//
//	{ "Nodes": [ { "node_id": 0, "pos": [x, y, z] }, ... ],
//	  "Edges": [ { "src": 0, "w": 1.5, "dest": 1 }, ... ] }
type jsonGraph struct {
	Nodes []jsonNode `json:"Nodes"`
	Edges []jsonEdge `json:"Edges"`
}
