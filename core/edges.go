// Edge lifecycle and queries: AddEdge, RemoveEdge, HasEdge, Weight,
// OutNeighbors, InNeighbors, Edges, EdgeCount.
//
// Invariant: for every edge (src, dst, w) in out[src], the symmetric
// entry w exists in in[dst], and vice versa. Both maps are updated
// inside the same call, so the mirror never diverges.
//
// Determinism: Edges() returns edges sorted by (From, To) ascending.

package core

import "sort"

// AddEdge inserts or overwrites the directed edge src→dst with the given
// weight, mirrored into both adjacency maps.
//
// Returns ErrVertexNotFound if either endpoint is absent,
// ErrNegativeWeight if weight < 0, ErrSelfLoop if src == dst.
// On any error the graph is left unchanged.
//
// Complexity: O(1)
func (g *Graph) AddEdge(src, dst int64, weight float64) error {
	if src == dst {
		return ErrSelfLoop
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	if _, ok := g.vertices[src]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[dst]; !ok {
		return ErrVertexNotFound
	}

	g.out[src][dst] = weight
	g.in[dst][src] = weight
	g.revision++

	return nil
}

// RemoveEdge deletes the directed edge src→dst from both adjacency maps.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1)
func (g *Graph) RemoveEdge(src, dst int64) error {
	row, ok := g.out[src]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = row[dst]; !ok {
		return ErrEdgeNotFound
	}

	delete(g.out[src], dst)
	delete(g.in[dst], src)
	g.revision++

	return nil
}

// HasEdge reports whether the directed edge src→dst exists.
// Complexity: O(1)
func (g *Graph) HasEdge(src, dst int64) bool {
	row, ok := g.out[src]
	if !ok {
		return false
	}
	_, ok = row[dst]

	return ok
}

// Weight returns the weight of the directed edge src→dst and true,
// or 0 and false when the edge does not exist.
// Complexity: O(1)
func (g *Graph) Weight(src, dst int64) (float64, bool) {
	row, ok := g.out[src]
	if !ok {
		return 0, false
	}
	w, ok := row[dst]

	return w, ok
}

// OutNeighbors returns a copy of the outgoing adjacency row of id:
// a map from destination ID to edge weight, empty when the vertex has
// no outgoing edges. Returns ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(deg⁺(id))
func (g *Graph) OutNeighbors(id int64) (map[int64]float64, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return copyRow(g.out[id]), nil
}

// InNeighbors returns a copy of the incoming adjacency row of id:
// a map from source ID to edge weight, empty when the vertex has no
// incoming edges. Returns ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(deg⁻(id))
func (g *Graph) InNeighbors(id int64) (map[int64]float64, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return copyRow(g.in[id]), nil
}

// Edges returns a flat slice of all directed edges, sorted by (From, To).
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	var out []Edge
	for src, row := range g.out {
		for dst, w := range row {
			out = append(out, Edge{From: src, To: dst, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of directed edges.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	n := 0
	for _, row := range g.out {
		n += len(row)
	}

	return n
}

// copyRow duplicates one adjacency row so callers cannot mutate storage.
func copyRow(row map[int64]float64) map[int64]float64 {
	cp := make(map[int64]float64, len(row))
	for id, w := range row {
		cp[id] = w
	}

	return cp
}
