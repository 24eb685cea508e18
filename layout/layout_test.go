// Package layout_test contains unit tests for the placement heuristic,
// snapshot bounds, and the renderer port.
package layout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matanb1238/digraph/core"
	"github.com/matanb1238/digraph/layout"
)

func TestPlace_Validation(t *testing.T) {
	_, err := layout.Place(nil)
	require.ErrorIs(t, err, layout.ErrNilGraph)

	require.ErrorIs(t, layout.Plot(core.NewGraph(), nil), layout.ErrNilRenderer)
}

func TestPlace_FullyUnplacedGraph(t *testing.T) {
	g := core.NewGraph()
	for id := int64(0); id < 4; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge(0, 1, 1))

	snap, err := layout.Place(g, layout.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, snap.Positions, 4)

	// Every vertex must now be placed on the graph itself too.
	for _, id := range g.Vertices() {
		_, ok := g.Position(id)
		require.True(t, ok, "vertex %d must be placed", id)
	}
	require.Equal(t, [][2]int64{{0, 1}}, snap.Edges)
}

func TestPlace_DeterministicWithSeed(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph()
		for id := int64(0); id < 5; id++ {
			_ = g.AddVertex(id)
		}
		_ = g.AddEdge(0, 1, 1)
		_ = g.AddEdge(1, 2, 1)

		return g
	}

	a, err := layout.Place(build(), layout.WithSeed(7))
	require.NoError(t, err)
	b, err := layout.Place(build(), layout.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestPlace_KeepsExistingPositions(t *testing.T) {
	g := core.NewGraph()
	fixed := core.Position{X: 10, Y: 20, Z: 30}
	require.NoError(t, g.AddVertex(0, core.WithPosition(fixed)))
	require.NoError(t, g.AddVertex(1))

	snap, err := layout.Place(g, layout.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, fixed, snap.Positions[0])
}

func TestPlace_MidpointOfTwoPlacedOutNeighbors(t *testing.T) {
	// Vertex 0 points at two placed vertices; its position must be their
	// exact midpoint, with no randomness involved.
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1, core.WithPosition(core.Position{X: 0, Y: 0, Z: 2})))
	require.NoError(t, g.AddVertex(2, core.WithPosition(core.Position{X: 4, Y: 6, Z: 4})))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))

	snap, err := layout.Place(g)
	require.NoError(t, err)
	require.Equal(t, core.Position{X: 2, Y: 3, Z: 3}, snap.Positions[0])
}

func TestPlace_MidpointOfOutAndInNeighbor(t *testing.T) {
	// 0→1 placed, 2→0 placed: one anchor from each direction.
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1, core.WithPosition(core.Position{X: 2, Y: 2})))
	require.NoError(t, g.AddVertex(2, core.WithPosition(core.Position{X: 6, Y: 4})))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 0, 1))

	snap, err := layout.Place(g)
	require.NoError(t, err)
	require.Equal(t, core.Position{X: 4, Y: 3}, snap.Positions[0])
}

func TestSnapshot_BoundsCarryThirdMargin(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0, core.WithPosition(core.Position{X: 0, Y: 0})))
	require.NoError(t, g.AddVertex(1, core.WithPosition(core.Position{X: 3, Y: 6})))

	snap, err := layout.Place(g)
	require.NoError(t, err)

	// marginX = |0+3|/3 = 1, marginY = |0+6|/3 = 2.
	require.Equal(t, -1.0, snap.MinX)
	require.Equal(t, 4.0, snap.MaxX)
	require.Equal(t, -2.0, snap.MinY)
	require.Equal(t, 8.0, snap.MaxY)
}

func TestPlot_InvokesRenderer(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddEdge(0, 1, 1))

	var got layout.Snapshot
	r := layout.RendererFunc(func(s layout.Snapshot) error {
		got = s

		return nil
	})
	require.NoError(t, layout.Plot(g, r, layout.WithSeed(3)))
	require.Len(t, got.Positions, 2)
	require.Equal(t, [][2]int64{{0, 1}}, got.Edges)

	// Renderer failures propagate unchanged.
	boom := errors.New("render failed")
	r = layout.RendererFunc(func(layout.Snapshot) error { return boom })
	require.ErrorIs(t, layout.Plot(g, r), boom)
}
