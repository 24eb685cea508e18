package core

// Clone returns a deep copy of the graph: vertices (including positions),
// both adjacency maps, and the configuration flags. The clone starts with
// the same revision as the original; subsequent mutations diverge.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		strictAdd: g.strictAdd,
		vertices:  make(map[int64]*Vertex, len(g.vertices)),
		out:       make(map[int64]map[int64]float64, len(g.out)),
		in:        make(map[int64]map[int64]float64, len(g.in)),
		revision:  g.revision,
	}

	for id, v := range g.vertices {
		nv := &Vertex{ID: id}
		if v.Pos != nil {
			pos := *v.Pos
			nv.Pos = &pos
		}
		cp.vertices[id] = nv
	}
	for id, row := range g.out {
		cp.out[id] = copyRow(row)
	}
	for id, row := range g.in {
		cp.in[id] = copyRow(row)
	}

	return cp
}
