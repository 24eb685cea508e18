package dijkstra_test

import (
	"testing"

	"github.com/matanb1238/digraph/builder"
	"github.com/matanb1238/digraph/dijkstra"
)

// BenchmarkShortestPath_Path measures a full-length route on a 1000-vertex chain.
func BenchmarkShortestPath_Path(b *testing.B) {
	const n = 1000
	g, err := builder.Build(nil, builder.Path(n, 1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.ShortestPath(g, 0, n-1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPath_Complete measures a one-hop query on a dense graph.
func BenchmarkShortestPath_Complete(b *testing.B) {
	const n = 200
	g, err := builder.Build(nil, builder.Complete(n, 1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.ShortestPath(g, 0, n-1); err != nil {
			b.Fatal(err)
		}
	}
}
