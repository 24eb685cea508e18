// Package dijkstra defines configuration options and error sentinels
// for the shortest-path search over a core.Graph.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does
	// not exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of ShortestPath.
//
// MaxDistance – optional cap on distances to explore; vertices farther
// than this from the source are not settled. Must be ≥ 0.
// Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// MaxDistance = +Inf (explore every reachable vertex).
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
