// Package dijkstra_test contains unit tests for the shortest-path
// implementation: input validation, path correctness, tie-breaking,
// unreachable targets, zero-weight edges, and MaxDistance pruning.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/matanb1238/digraph/core"
	"github.com/matanb1238/digraph/dijkstra"
)

// buildGraph creates a graph with vertices 0..n-1 and the given edges.
func buildGraph(t *testing.T, n int64, edges [][3]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := int64(0); id < n; id++ {
		if err := g.AddVertex(id); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(int64(e[0]), int64(e[1]), e[2]); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(nil, 0, 1)
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_MissingEndpoints(t *testing.T) {
	g := buildGraph(t, 2, nil)

	if _, _, err := dijkstra.ShortestPath(g, 5, 1); err != dijkstra.ErrVertexNotFound {
		t.Errorf("absent source: expected ErrVertexNotFound, got %v", err)
	}
	if _, _, err := dijkstra.ShortestPath(g, 0, 5); err != dijkstra.ErrVertexNotFound {
		t.Errorf("absent target: expected ErrVertexNotFound, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic functionality: the canonical two-edge chain.
// ------------------------------------------------------------------------

func TestShortestPath_Chain(t *testing.T) {
	// 0→1 (1), 1→2 (4).
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 4}})

	dist, path, err := dijkstra.ShortestPath(g, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if dist != 1 {
		t.Errorf("dist = %v; want 1", dist)
	}
	if !equalPath(path, []int64{0, 1}) {
		t.Errorf("path = %v; want [0 1]", path)
	}

	dist, path, err = dijkstra.ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if dist != 5 {
		t.Errorf("dist = %v; want 5", dist)
	}
	if !equalPath(path, []int64{0, 1, 2}) {
		t.Errorf("path = %v; want [0 1 2]", path)
	}
}

func TestShortestPath_PrefersCheaperDetour(t *testing.T) {
	// Direct 0→3 costs 10; detour 0→1→2→3 costs 6.
	g := buildGraph(t, 4, [][3]float64{
		{0, 3, 10},
		{0, 1, 2}, {1, 2, 2}, {2, 3, 2},
	})

	dist, path, err := dijkstra.ShortestPath(g, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if dist != 6 {
		t.Errorf("dist = %v; want 6", dist)
	}
	if !equalPath(path, []int64{0, 1, 2, 3}) {
		t.Errorf("path = %v; want [0 1 2 3]", path)
	}
}

// ------------------------------------------------------------------------
// 3. Edge cases: self path, unreachable target, zero-weight edges.
// ------------------------------------------------------------------------

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}})

	for id := int64(0); id < 3; id++ {
		dist, path, err := dijkstra.ShortestPath(g, id, id)
		if err != nil {
			t.Fatal(err)
		}
		if dist != 0 {
			t.Errorf("dist(%d,%d) = %v; want 0", id, id, dist)
		}
		if !equalPath(path, []int64{id}) {
			t.Errorf("path(%d,%d) = %v; want [%d]", id, id, path, id)
		}
	}
}

func TestShortestPath_UnreachableTarget(t *testing.T) {
	// Edge points away from target: 2 is disconnected from 0.
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {2, 1, 1}})

	dist, path, err := dijkstra.ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatalf("unreachable target must not be an error, got %v", err)
	}
	if !math.IsInf(dist, 1) {
		t.Errorf("dist = %v; want +Inf", dist)
	}
	if len(path) != 0 {
		t.Errorf("path = %v; want empty", path)
	}
}

func TestShortestPath_ZeroWeightEdgeReconstruction(t *testing.T) {
	// 0→1 has weight 0, so vertex 1 sits at distance 0 without being the
	// source. Reconstruction must still walk all the way back to 0.
	g := buildGraph(t, 3, [][3]float64{{0, 1, 0}, {1, 2, 3}})

	dist, path, err := dijkstra.ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if dist != 3 {
		t.Errorf("dist = %v; want 3", dist)
	}
	if !equalPath(path, []int64{0, 1, 2}) {
		t.Errorf("path = %v; want [0 1 2]", path)
	}
}

// ------------------------------------------------------------------------
// 4. Determinism: equal-distance ties settle toward the smaller ID.
// ------------------------------------------------------------------------

func TestShortestPath_EqualCostTieBreaksOnSmallerID(t *testing.T) {
	// Two parallel routes 0→1→3 and 0→2→3, both costing 2.
	g := buildGraph(t, 4, [][3]float64{
		{0, 1, 1}, {1, 3, 1},
		{0, 2, 1}, {2, 3, 1},
	})

	for i := 0; i < 10; i++ {
		dist, path, err := dijkstra.ShortestPath(g, 0, 3)
		if err != nil {
			t.Fatal(err)
		}
		if dist != 2 {
			t.Fatalf("dist = %v; want 2", dist)
		}
		if !equalPath(path, []int64{0, 1, 3}) {
			t.Fatalf("path = %v; want [0 1 3] (smaller-ID route)", path)
		}
	}
}

// ------------------------------------------------------------------------
// 5. MaxDistance: vertices beyond the cap are not explored.
// ------------------------------------------------------------------------

func TestShortestPath_MaxDistanceLimits(t *testing.T) {
	// Linear: 0→1→2→3, each hop weight 1.
	g := buildGraph(t, 4, [][3]float64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})

	dist, path, err := dijkstra.ShortestPath(g, 0, 3, dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist, 1) {
		t.Errorf("dist = %v; want +Inf (pruned)", dist)
	}
	if len(path) != 0 {
		t.Errorf("path = %v; want empty", path)
	}

	// Within the cap the result is unaffected.
	dist, _, err = dijkstra.ShortestPath(g, 0, 1, dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if dist != 1 {
		t.Errorf("dist = %v; want 1", dist)
	}
}

func TestWithMaxDistance_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative MaxDistance")
		}
	}()
	dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
}

// equalPath compares two ID sequences element-wise.
func equalPath(got, want []int64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}
