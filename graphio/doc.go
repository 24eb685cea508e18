// Package graphio persists core graphs in a compact JSON format.
//
// Wire format
//
//	{ "Nodes": [ { "node_id": 0, "pos": [1.0, 2.0, 0.0] },
//	             { "node_id": 1 } ],
//	  "Edges": [ { "src": 0, "w": 1.5, "dest": 1 } ] }
//
// pos is optional per node and omitted for unplaced vertices; omission on
// load leaves the position unset.
//
// Guarantees
//
//   - Load stages into a fresh graph and returns it only on full success:
//     malformed input or an I/O fault yields an error and no graph, never a
//     partially mutated one.
//   - Save emits nodes ordered by ID and edges by (src, dest), so a
//     save → load → save round-trip is byte-stable and preserves the vertex
//     ID set, positions where set, and every (src, dest, weight) triple.
//
// Errors
//
//	Parse faults (bad JSON, unknown endpoints, negative weights, self-loops)
//	wrap ErrParse; file faults wrap the underlying *os* error with path
//	context. Branch with errors.Is.
package graphio
