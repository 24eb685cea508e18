// Package builder provides deterministic topology constructors for
// assembling core graphs in tests, examples, and benchmarks.
package builder

import (
	"errors"
	"fmt"

	"github.com/matanb1238/digraph/core"
)

// Sentinel errors for builder constructors.
var (
	// ErrTooFewVertices indicates a constructor received an n below its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNilConstructor indicates Build received a nil constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies a deterministic graph mutation. Constructors must
// validate parameters early, return sentinel errors instead of panicking,
// and produce identical topology for identical inputs and call order.
type Constructor func(g *core.Graph) error

// Build creates a new core.Graph with the given graph options and applies
// all constructors in order. The first constructor error is wrapped and
// returned immediately; no partial cleanup is attempted.
func Build(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Path adds vertices 0..n-1 chained by edges i→i+1 of the given weight.
// Requires n ≥ 2.
func Path(n int64, weight float64) Constructor {
	return func(g *core.Graph) error {
		if n < 2 {
			return fmt.Errorf("path(%d): %w", n, ErrTooFewVertices)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := int64(0); i < n-1; i++ {
			if err := g.AddEdge(i, i+1, weight); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle adds vertices 0..n-1 chained by i→i+1 plus the closing edge
// n-1→0, making the whole graph one strongly connected component.
// Requires n ≥ 2.
func Cycle(n int64, weight float64) Constructor {
	return func(g *core.Graph) error {
		if n < 2 {
			return fmt.Errorf("cycle(%d): %w", n, ErrTooFewVertices)
		}
		if err := Path(n, weight)(g); err != nil {
			return err
		}

		return g.AddEdge(n-1, 0, weight)
	}
}

// Complete adds vertices 0..n-1 with an edge between every ordered pair.
// Requires n ≥ 2.
func Complete(n int64, weight float64) Constructor {
	return func(g *core.Graph) error {
		if n < 2 {
			return fmt.Errorf("complete(%d): %w", n, ErrTooFewVertices)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			for j := int64(0); j < n; j++ {
				if i == j {
					continue
				}
				if err := g.AddEdge(i, j, weight); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star adds a hub vertex 0 with spokes 0→i for every 1 ≤ i < n.
// Requires n ≥ 2.
func Star(n int64, weight float64) Constructor {
	return func(g *core.Graph) error {
		if n < 2 {
			return fmt.Errorf("star(%d): %w", n, ErrTooFewVertices)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := int64(1); i < n; i++ {
			if err := g.AddEdge(0, i, weight); err != nil {
				return err
			}
		}

		return nil
	}
}

// addRange inserts vertices 0..n-1, tolerating ones added by an earlier
// constructor in the same Build call.
func addRange(g *core.Graph, n int64) error {
	for i := int64(0); i < n; i++ {
		if err := g.AddVertex(i); err != nil && !errors.Is(err, core.ErrDuplicateVertex) {
			return err
		}
	}

	return nil
}
