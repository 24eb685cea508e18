// Package scc discovers strongly connected components by intersecting
// forward and backward breadth-first reachability.
package scc

import (
	"fmt"
	"sort"

	"github.com/matanb1238/digraph/core"
)

// direction selects which adjacency rows a breadth-first sweep follows.
type direction int

const (
	forward  direction = iota // follow outgoing edges
	backward                  // follow incoming edges
)

// ReachableFrom returns the set of vertices reachable from id by following
// outgoing edges. The result excludes id itself, even when id lies on a
// cycle back to itself; callers needing the full closure add it back.
// Returns ErrNilGraph or ErrVertexNotFound for invalid input.
//
// Complexity: O(V + E)
func ReachableFrom(g *core.Graph, id int64) (map[int64]struct{}, error) {
	return sweep(g, id, forward)
}

// ReachableTo returns the set of vertices from which id can be reached,
// by following incoming edges backward. Excludes id itself, like
// ReachableFrom.
//
// Complexity: O(V + E)
func ReachableTo(g *core.Graph, id int64) (map[int64]struct{}, error) {
	return sweep(g, id, backward)
}

// ComponentOf returns the strongly connected component containing id, as a
// sorted slice of vertex IDs. The queried vertex is always a member of its
// own component, so an isolated vertex yields [id].
//
// Complexity: O(V + E)
func ComponentOf(g *core.Graph, id int64) ([]int64, error) {
	fwd, err := ReachableFrom(g, id)
	if err != nil {
		return nil, err
	}
	bwd, err := ReachableTo(g, id)
	if err != nil {
		return nil, err
	}

	// Mutual reachability: forward ∩ backward. Both sweeps exclude id, so
	// the vertex itself is added explicitly.
	comp := []int64{id}
	for v := range fwd {
		if _, ok := bwd[v]; ok {
			comp = append(comp, v)
		}
	}
	sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })

	return comp, nil
}

// Components partitions the full vertex set into strongly connected
// components. Vertices are visited in ascending ID order; each component
// is sorted, and components are ordered by their smallest member. Every
// vertex appears in exactly one component.
//
// Complexity: O(V·(V+E)) worst case — one double sweep per undiscovered
// vertex. Adequate for the small and medium graphs this library targets.
func Components(g *core.Graph) ([][]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	assigned := make(map[int64]struct{}, g.VertexCount())
	var comps [][]int64
	for _, id := range g.Vertices() {
		if _, done := assigned[id]; done {
			continue
		}
		comp, err := ComponentOf(g, id)
		if err != nil {
			return nil, fmt.Errorf("scc: component of %d: %w", id, err)
		}
		for _, v := range comp {
			assigned[v] = struct{}{}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// sweep is the breadth-first worker shared by both reachability helpers.
func sweep(g *core.Graph, id int64, dir direction) (map[int64]struct{}, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	visited := map[int64]struct{}{id: {}}
	queue := []int64{id}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]

		row, err := neighbors(g, u, dir)
		if err != nil {
			return nil, fmt.Errorf("scc: neighbors of %d: %w", u, err)
		}
		for v := range row {
			if _, seen := visited[v]; !seen {
				visited[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	// The start vertex is excluded from the result by contract.
	delete(visited, id)

	return visited, nil
}

func neighbors(g *core.Graph, id int64, dir direction) (map[int64]float64, error) {
	if dir == forward {
		return g.OutNeighbors(id)
	}

	return g.InNeighbors(id)
}
