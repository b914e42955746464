package bidirectional_test

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid returns a rows×cols grid with roughly 30% obstacles.
func randomGrid(rng *rand.Rand, rows, cols int) *gridgraph.Grid {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for col := range values[r] {
			if rng.Intn(10) < 3 {
				values[r][col] = 1
			}
		}
	}
	return gridgraph.MustGrid(values)
}

// referenceDistance is a plain distance-array BFS used as an oracle.
// It returns -1 when goal is unreachable or either endpoint is invalid.
func referenceDistance(g *gridgraph.Grid, start, goal gridgraph.Cell) int {
	if !g.IsTraversable(start) || !g.IsTraversable(goal) {
		return -1
	}
	dist := make([][]int, g.Rows())
	for r := range dist {
		dist[r] = make([]int, g.Cols())
		for col := range dist[r] {
			dist[r][col] = -1
		}
	}
	dist[start.Row][start.Col] = 0
	queue := []gridgraph.Cell{start}
	moves := [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, m := range moves {
			v := gridgraph.C(u.Row+m[0], u.Col+m[1])
			if g.IsTraversable(v) && dist[v.Row][v.Col] < 0 {
				dist[v.Row][v.Col] = dist[u.Row][u.Col] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist[goal.Row][goal.Col]
}
