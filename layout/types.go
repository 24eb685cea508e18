// Package layout defines the Snapshot value handed to renderers, the
// Renderer port itself, and placement options.
package layout

import (
	"errors"
	"math/rand"
	"time"

	"github.com/matanb1238/digraph/core"
)

// Sentinel errors for layout operations.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("layout: graph is nil")

	// ErrNilRenderer is returned when Plot is called without a renderer.
	ErrNilRenderer = errors.New("layout: renderer is nil")
)

// Snapshot is the presentation view of a graph: every vertex placed, plus
// the directed edge pairs and the axis bounds (placement extent widened by
// a one-third margin on each side).
type Snapshot struct {
	// Positions maps every vertex ID to its coordinate.
	Positions map[int64]core.Position

	// Edges lists each directed edge as a {src, dest} pair, sorted.
	Edges [][2]int64

	// Axis bounds for the renderer viewport.
	MinX, MinY, MaxX, MaxY float64
}

// Renderer consumes a Snapshot and draws it. Implementations are supplied
// by the host application; the core library never depends on a plotting
// stack.
type Renderer interface {
	Render(Snapshot) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(Snapshot) error

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) error { return f(s) }

// Options configures placement.
type Options struct {
	rng *rand.Rand
}

// Option represents a functional option for configuring Place and Plot.
type Option func(*Options)

// WithSeed makes random fallback placement deterministic for the given seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// DefaultOptions returns Options with a time-seeded random source.
func DefaultOptions() Options {
	return Options{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}
