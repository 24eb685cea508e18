// Package dijkstra implements single-source shortest paths on a directed
// weighted core.Graph with non-negative edge weights.
//
// ShortestPath processes vertices in order of increasing distance using a
// min-heap priority queue, relaxing outgoing edges and updating distances.
// Ties on equal distance break toward the smaller vertex ID, so results
// are deterministic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps, owned by the call.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: a vertex may be pushed multiple times; stale
//     entries are skipped via the visited set when popped.
//   - Distance and predecessor maps live on the call stack, never on the
//     graph or its vertices, so sequential calls need no reset and never
//     observe each other's state.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/matanb1238/digraph/core"
)

// ShortestPath computes the minimum-cost path from source to target in g.
//
// Returns:
//
//   - dist: total weight of the path, or +Inf when target is unreachable.
//   - path: vertex IDs from source to target inclusive; empty when target
//     is unreachable. For source == target the path is [source].
//   - err:  ErrNilGraph or ErrVertexNotFound for invalid input.
//
// Unreachability is a normal, representable result, never an error.
func ShortestPath(g *core.Graph, source, target int64, opts ...Option) (float64, []int64, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return 0, nil, ErrVertexNotFound
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Non-negative weights are a core invariant (AddEdge rejects w < 0),
	// so no pre-scan for negative edges is needed here.

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int64]float64, V),
		prev:    make(map[int64]int64, V),
		visited: make(map[int64]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init(source)
	r.process()

	return r.reconstruct(source, target)
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       *core.Graph       // the input graph; read-only within the call
	options Options           // configuration (MaxDistance)
	dist    map[int64]float64 // vertex ID → current best distance from source
	prev    map[int64]int64   // vertex ID → predecessor on the shortest path
	visited map[int64]bool    // whether a vertex's distance is finalized
	pq      nodePQ            // min-heap of (distance, id) with id tiebreak
}

// init sets every distance to +Inf except the source (0) and seeds the heap.
func (r *runner) init(source int64) {
	inf := math.Inf(1)
	for _, id := range r.g.Vertices() {
		r.dist[id] = inf
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the minimum-distance vertex and relaxes its
// outgoing edges until the heap drains or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entries (lazy decrease-key).
		if r.visited[u] {
			continue
		}
		// Everything left in the heap is at least this far away.
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		r.relax(u)
	}
}

// relax attempts to improve the distance of every out-neighbor of u.
func (r *runner) relax(u int64) {
	// OutNeighbors cannot fail here: u was taken from the vertex set and
	// topology is frozen for the duration of the call.
	neighbors, err := r.g.OutNeighbors(u)
	if err != nil {
		return
	}

	for v, w := range neighbors {
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, to avoid churning on equal paths.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}
}

// reconstruct walks predecessor links backward from target and reverses
// the collected sequence.
//
// Termination is "current vertex equals source", not "distance is zero":
// an intermediate vertex can legitimately sit at distance zero behind a
// zero-weight edge. An unreachable target (dist still +Inf) short-circuits
// before any predecessor lookup.
func (r *runner) reconstruct(source, target int64) (float64, []int64, error) {
	if source == target {
		return 0, []int64{source}, nil
	}
	if math.IsInf(r.dist[target], 1) {
		return math.Inf(1), []int64{}, nil
	}

	path := []int64{target}
	for cur := target; cur != source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	// Reverse to get source → target.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return r.dist[target], path, nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int64
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by distance ascending, breaking
// ties by smaller vertex ID so that extraction order is deterministic.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
