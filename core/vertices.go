// Vertex lifecycle and queries: AddVertex, RemoveVertex, HasVertex,
// Vertices, VertexCount, Position, SetPosition.
//
// Determinism: Vertices() returns IDs sorted ascending, so iteration
// order is stable across runs.

package core

import "sort"

// AddVertex inserts a vertex with the given ID if absent.
// If the ID already exists this is a no-op success, unless the graph was
// created with WithStrictAdd, in which case it returns ErrDuplicateVertex.
// Options (e.g. WithPosition) apply only when the vertex is actually created.
//
// Complexity: O(1)
func (g *Graph) AddVertex(id int64, opts ...VertexOption) error {
	if _, exists := g.vertices[id]; exists {
		if g.strictAdd {
			return ErrDuplicateVertex
		}

		return nil
	}

	v := &Vertex{ID: id}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[id] = v
	g.out[id] = make(map[int64]float64)
	g.in[id] = make(map[int64]float64)
	g.revision++

	return nil
}

// RemoveVertex deletes the vertex with the given ID together with every
// edge where it appears as source or destination, in both adjacency maps,
// preserving the mirror invariant. Returns ErrVertexNotFound if absent.
//
// Complexity: O(deg(id)) — only rows of incident neighbors are touched.
func (g *Graph) RemoveVertex(id int64) error {
	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Drop mirrored entries of outgoing edges: id→dst lives in in[dst][id].
	for dst := range g.out[id] {
		delete(g.in[dst], id)
	}
	// Drop mirrored entries of incoming edges: src→id lives in out[src][id].
	for src := range g.in[id] {
		delete(g.out[src], id)
	}

	delete(g.out, id)
	delete(g.in, id)
	delete(g.vertices, id)
	g.revision++

	return nil
}

// HasVertex reports whether the graph contains a vertex with the given ID.
// Complexity: O(1)
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []int64 {
	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertex returns a value copy of the vertex with the given ID and true,
// or the zero Vertex and false when absent. The copy's position pointer
// is duplicated, so callers cannot mutate graph state through it.
// Complexity: O(1)
func (g *Graph) Vertex(id int64) (Vertex, bool) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}
	cp := Vertex{ID: v.ID}
	if v.Pos != nil {
		pos := *v.Pos
		cp.Pos = &pos
	}

	return cp, true
}

// Position returns the coordinate of the given vertex and true, or the
// zero Position and false when the vertex is absent or unplaced.
// Complexity: O(1)
func (g *Graph) Position(id int64) (Position, bool) {
	v, ok := g.vertices[id]
	if !ok || v.Pos == nil {
		return Position{}, false
	}

	return *v.Pos, true
}

// SetPosition assigns a coordinate to an existing vertex.
// Returns ErrVertexNotFound if the vertex is absent.
// Positions are presentation data; setting one does not bump the revision.
// Complexity: O(1)
func (g *Graph) SetPosition(id int64, p Position) error {
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	pos := p
	v.Pos = &pos

	return nil
}
