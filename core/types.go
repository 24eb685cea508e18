// Package core defines the central Graph, Vertex, and Position types
// and provides the primitives for building and querying directed,
// weighted graphs.
//
// This file declares Vertex, Position, Graph, GraphOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrNegativeWeight   - edge weight below zero.
//	ErrSelfLoop         - edge source equals destination.
//	ErrDuplicateVertex  - vertex ID already present (strict mode only).
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrSelfLoop indicates an edge from a vertex to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateVertex indicates AddVertex saw an existing ID while the
	// graph was constructed with WithStrictAdd.
	ErrDuplicateVertex = errors.New("core: vertex ID already exists")
)

// Position is an optional 3D coordinate attached to a Vertex.
// It is orthogonal to graph topology; absence is valid.
type Position struct {
	X, Y, Z float64
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; identities are
// externally assigned. Pos is nil until a coordinate is supplied, either
// at insertion time (WithPosition) or later via Graph.SetPosition.
//
// Vertex carries no traversal state: distance and predecessor maps are
// owned by each algorithm call, so a Vertex never changes during a search.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID int64

	// Pos is the optional spatial position. Nil means unplaced.
	Pos *Position
}

// Edge is a read-only view of one directed connection, as returned by
// Graph.Edges. The adjacency maps remain the authoritative storage.
type Edge struct {
	// From is the source vertex ID.
	From int64

	// To is the destination vertex ID.
	To int64

	// Weight is the non-negative cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictAdd makes AddVertex fail with ErrDuplicateVertex when the ID
// already exists, instead of the default idempotent no-op.
func WithStrictAdd() GraphOption {
	return func(g *Graph) { g.strictAdd = true }
}

// VertexOption configures properties of an individual vertex when added.
type VertexOption func(*Vertex)

// WithPosition sets the spatial position of the vertex being added.
func WithPosition(p Position) VertexOption {
	return func(v *Vertex) {
		pos := p
		v.Pos = &pos
	}
}

// Graph is the core in-memory directed weighted graph.
//
// It maintains two mirrored adjacency maps: out[src][dst] and in[dst][src]
// always agree on which edges exist and their weights, on every mutation.
// Self-loops and parallel edges are disallowed; re-adding an edge between
// the same ordered pair upserts the weight.
//
// Graph is NOT safe for concurrent use: callers must not mutate topology
// while a traversal is in progress, and must serialize access themselves
// if sharing a Graph across goroutines.
type Graph struct {
	// Configuration flags
	strictAdd bool // AddVertex rejects duplicates when true

	// Storage
	vertices map[int64]*Vertex           // vertex ID → Vertex
	out      map[int64]map[int64]float64 // src ID → dst ID → weight
	in       map[int64]map[int64]float64 // dst ID → src ID → weight

	// revision increments on every structural mutation; callers may use it
	// to detect staleness of cached traversal results.
	revision uint64
}

// NewGraph creates an empty Graph with the given options.
// By default AddVertex is idempotent (permissive mode).
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[int64]*Vertex),
		out:      make(map[int64]map[int64]float64),
		in:       make(map[int64]map[int64]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Revision reports the number of structural mutations applied so far.
// Any successful AddVertex, RemoveVertex, AddEdge or RemoveEdge bumps it.
// Complexity: O(1)
func (g *Graph) Revision() uint64 { return g.revision }
