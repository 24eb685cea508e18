// Package layout turns a partially placed graph into a fully placed
// Snapshot a renderer can draw.
//
// Placement heuristic for a vertex without a position, tried in order:
//
//  1. midpoint of its two lowest-ID placed out-neighbors;
//  2. midpoint of its two lowest-ID placed in-neighbors;
//  3. midpoint of one placed out-neighbor and one placed in-neighbor;
//  4. one placed neighbor blended with a random coordinate in bounds;
//  5. a random coordinate within the current bounds.
//
// Vertices are placed in ascending ID order, so a vertex placed earlier in
// the pass can anchor later ones. With WithSeed the whole pass is
// deterministic.
package layout

import (
	"sort"

	"github.com/matanb1238/digraph/core"
)

// Place assigns a position to every unplaced vertex of g, writes the
// positions back into the graph, and returns the resulting Snapshot.
// Already placed vertices are never moved.
//
// Complexity: O(V log V + E)
func Place(g *core.Graph, opts ...Option) (Snapshot, error) {
	if g == nil {
		return Snapshot{}, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &placer{g: g, options: cfg}
	p.bounds()
	if err := p.placeAll(); err != nil {
		return Snapshot{}, err
	}

	return p.snapshot(), nil
}

// Plot places g and hands the Snapshot to r.
func Plot(g *core.Graph, r Renderer, opts ...Option) error {
	if r == nil {
		return ErrNilRenderer
	}
	snap, err := Place(g, opts...)
	if err != nil {
		return err
	}

	return r.Render(snap)
}

// placer holds the mutable state for a single Place execution.
type placer struct {
	g       *core.Graph
	options Options

	minX, minY float64
	maxX, maxY float64
}

// bounds derives the random-placement window from the vertices that are
// already placed. With no placement at all, a fixed unit window is used;
// with two or more vertices to place, the window is widened by one so
// fallback positions do not pile up on the hull.
func (p *placer) bounds() {
	placed := 0
	unplaced := 0
	first := true
	for _, id := range p.g.Vertices() {
		pos, ok := p.g.Position(id)
		if !ok {
			unplaced++
			continue
		}
		placed++
		if first {
			p.minX, p.maxX = pos.X, pos.X
			p.minY, p.maxY = pos.Y, pos.Y
			first = false
			continue
		}
		p.minX = minF(p.minX, pos.X)
		p.maxX = maxF(p.maxX, pos.X)
		p.minY = minF(p.minY, pos.Y)
		p.maxY = maxF(p.maxY, pos.Y)
	}

	if placed == 0 {
		p.minX, p.minY = 1, 1
		p.maxX, p.maxY = 2, 2

		return
	}
	if unplaced >= 2 {
		p.maxX++
		p.maxY++
	}
}

// placeAll walks vertices in ascending ID order and fills in the gaps.
func (p *placer) placeAll() error {
	for _, id := range p.g.Vertices() {
		if _, ok := p.g.Position(id); ok {
			continue
		}
		if err := p.g.SetPosition(id, p.alongNeighbors(id)); err != nil {
			return err
		}
	}

	return nil
}

// alongNeighbors picks a coordinate for id near its placed neighbors,
// falling back to a random point within the current bounds.
func (p *placer) alongNeighbors(id int64) core.Position {
	out := p.placedNeighbors(p.g.OutNeighbors, id)
	in := p.placedNeighbors(p.g.InNeighbors, id)

	switch {
	case len(out) >= 2:
		return midpoint(out[0], out[1])
	case len(in) >= 2:
		return midpoint(in[0], in[1])
	case len(out) == 1 && len(in) == 1:
		return midpoint(out[0], in[0])
	case len(out) == 1:
		return p.blendRandom(out[0])
	case len(in) == 1:
		return p.blendRandom(in[0])
	default:
		return core.Position{X: p.uniform(p.minX, p.maxX), Y: p.uniform(p.minY, p.maxY)}
	}
}

// placedNeighbors returns the positions of the placed neighbors of id in
// ascending neighbor-ID order, so the anchor choice is deterministic.
func (p *placer) placedNeighbors(row func(int64) (map[int64]float64, error), id int64) []core.Position {
	nbrs, err := row(id)
	if err != nil {
		return nil
	}
	ids := make([]int64, 0, len(nbrs))
	for nbr := range nbrs {
		ids = append(ids, nbr)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var placed []core.Position
	for _, nbr := range ids {
		if pos, ok := p.g.Position(nbr); ok {
			placed = append(placed, pos)
			if len(placed) == 2 {
				break
			}
		}
	}

	return placed
}

// blendRandom averages a single anchor with a random in-bounds coordinate,
// keeping the anchor's depth.
func (p *placer) blendRandom(anchor core.Position) core.Position {
	return core.Position{
		X: (anchor.X + p.uniform(p.minX, p.maxX)) / 2,
		Y: (anchor.Y + p.uniform(p.minY, p.maxY)) / 2,
		Z: anchor.Z,
	}
}

func (p *placer) uniform(lo, hi float64) float64 {
	return lo + p.options.rng.Float64()*(hi-lo)
}

// snapshot assembles the renderer view. Axis bounds are the final
// placement extent widened by a one-third margin on each side.
func (p *placer) snapshot() Snapshot {
	positions := make(map[int64]core.Position, p.g.VertexCount())
	first := true
	var minX, minY, maxX, maxY float64
	for _, id := range p.g.Vertices() {
		pos, _ := p.g.Position(id)
		positions[id] = pos
		if first {
			minX, maxX = pos.X, pos.X
			minY, maxY = pos.Y, pos.Y
			first = false
			continue
		}
		minX = minF(minX, pos.X)
		maxX = maxF(maxX, pos.X)
		minY = minF(minY, pos.Y)
		maxY = maxF(maxY, pos.Y)
	}

	marginX := absF(minX+maxX) / 3
	marginY := absF(minY+maxY) / 3

	edges := p.g.Edges()
	pairs := make([][2]int64, 0, len(edges))
	for _, e := range edges {
		pairs = append(pairs, [2]int64{e.From, e.To})
	}

	return Snapshot{
		Positions: positions,
		Edges:     pairs,
		MinX:      minX - marginX,
		MinY:      minY - marginY,
		MaxX:      maxX + marginX,
		MaxY:      maxY + marginY,
	}
}

// midpoint averages two positions component-wise.
func midpoint(a, b core.Position) core.Position {
	return core.Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

func absF(a float64) float64 {
	if a < 0 {
		return -a
	}

	return a
}
