// Package scc provides reachability queries and strongly-connected-component
// discovery over a core.Graph.
//
// What
//
//   - ReachableFrom(g, v): vertices reachable from v along outgoing edges.
//   - ReachableTo(g, v): vertices that reach v along incoming edges.
//     Both exclude v itself; callers needing the closure add it back.
//   - ComponentOf(g, v): the SCC containing v — the intersection of forward
//     and backward reachability, plus v itself. An isolated vertex is its
//     own singleton component.
//   - Components(g): partition of the full vertex set into SCCs. Every
//     vertex appears in exactly one component; the union is the vertex set.
//
// Determinism
//
//	Vertices are swept in ascending ID order, each component is sorted,
//	and components are emitted ordered by their smallest member.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - ComponentOf: O(V + E) — two breadth-first sweeps and an intersection.
//   - Components:  O(V·(V+E)) worst case. This double-BFS driver favors
//     simplicity over the single-pass Tarjan/Kosaraju variants and is
//     intended for small and medium graphs.
//
// Usage
//
//	comps, err := scc.Components(g)
//	if err != nil {
//	    // ErrNilGraph
//	}
//	for _, comp := range comps {
//	    fmt.Println(comp)
//	}
package scc
