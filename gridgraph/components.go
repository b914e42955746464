package gridgraph

// ConnectedComponents finds all contiguous regions of free cells under
// 4-connectivity. Components are discovered in row-major order of their first
// cell; each component lists its cells in BFS discovery order using DefaultOrder.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			origin := Cell{Row: r, Col: c}
			if !g.IsTraversable(origin) || seen[g.index(origin)] {
				continue
			}
			// BFS to collect component
			queue := []Cell{origin}
			seen[g.index(origin)] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range DefaultOrder {
					v := u.Add(d)
					if !g.IsTraversable(v) || seen[g.index(v)] {
						continue
					}
					seen[g.index(v)] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// ComponentLabels returns a row-major label per cell: the index of its component in
// ConnectedComponents order, or -1 for blocked cells.
func (g *Grid) ComponentLabels() []int {
	labels := make([]int, g.rows*g.cols)
	for i := range labels {
		labels[i] = -1
	}
	for id, comp := range g.ConnectedComponents() {
		for _, c := range comp {
			labels[g.index(c)] = id
		}
	}
	return labels
}

// Connected reports whether a and b are both free and lie in the same component.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsTraversable(a) || !g.IsTraversable(b) {
		return false
	}
	labels := g.ComponentLabels()
	return labels[g.index(a)] == labels[g.index(b)]
}
