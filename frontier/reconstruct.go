package frontier

import "github.com/katalvlaran/gridpath/gridgraph"

// Reconstruct walks parent links from end back to the root and returns the
// cells in root→end order. It returns an empty path if end is absent from
// parents, or if the chain leaves the map or loops before reaching a root.
//
// Complexity: O(L) for a path of L cells.
func Reconstruct(parents ParentMap, end gridgraph.Cell) gridgraph.Path {
	path := Chain(parents, end)
	// reverse to get root → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Chain walks parent links starting at from (inclusive) until a root is reached,
// returning the cells in walk order (from first, root last). Joining a backward
// tree onto a forward path needs this unreversed form.
func Chain(parents ParentMap, from gridgraph.Cell) gridgraph.Path {
	link, ok := parents[from]
	if !ok {
		return gridgraph.Path{}
	}
	out := gridgraph.Path{from}
	for !link.Root {
		next := link.Parent
		// a chain longer than the map can only be a cycle
		if link, ok = parents[next]; !ok || len(out) >= len(parents) {
			return gridgraph.Path{}
		}
		out = append(out, next)
	}
	return out
}
