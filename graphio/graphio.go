// Package graphio persists core graphs as JSON.
//
// Loading stages every node and edge into a fresh graph and hands it over
// only on full success: a mid-document failure can never leave the caller
// with a partially populated graph. Saving enumerates vertices and
// out-edges in deterministic order, so equal graphs produce equal files.
package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matanb1238/digraph/core"
)

// Read decodes a graph document from r into a fresh core.Graph.
//
// Nodes are added first (with positions when present), then edges. Any
// JSON fault or invariant violation (unknown endpoint, negative weight,
// self-loop) returns an error wrapping ErrParse, and no graph is returned.
//
// Complexity: O(V + E)
func Read(r io.Reader) (*core.Graph, error) {
	var doc jsonGraph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	g := core.NewGraph()
	for _, n := range doc.Nodes {
		opts := []core.VertexOption{}
		if n.Pos != nil {
			opts = append(opts, core.WithPosition(core.Position{
				X: n.Pos[0], Y: n.Pos[1], Z: n.Pos[2],
			}))
		}
		if err := g.AddVertex(n.ID, opts...); err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrParse, n.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.Src, e.Dest, e.W); err != nil {
			return nil, fmt.Errorf("%w: edge %d→%d: %v", ErrParse, e.Src, e.Dest, err)
		}
	}

	return g, nil
}

// Load reads a graph from the JSON file at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Write encodes g as a graph document onto w.
// Nodes are ordered by ID and edges by (src, dest); the pos field is
// emitted only for placed vertices.
//
// Complexity: O(V log V + E log E)
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	doc := jsonGraph{
		Nodes: make([]jsonNode, 0, g.VertexCount()),
		Edges: make([]jsonEdge, 0, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		n := jsonNode{ID: id}
		if p, ok := g.Position(id); ok {
			n.Pos = &[3]float64{p.X, p.Y, p.Z}
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, jsonEdge{Src: e.From, W: e.Weight, Dest: e.To})
	}

	if err := json.NewEncoder(w).Encode(&doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return nil
}

// Save writes g to the file at path, creating or truncating it.
func Save(g *core.Graph, path string) error {
	if g == nil {
		return ErrNilGraph
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}

	if err = Write(f, g); err != nil {
		f.Close()

		return err
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("graphio: close %s: %w", path, err)
	}

	return nil
}
