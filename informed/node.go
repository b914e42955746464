package informed

import "github.com/katalvlaran/gridpath/gridgraph"

// Node is a search node: the cell, its cost from start (G), the heuristic
// estimate to the goal (H) and their sum (F).
type Node struct {
	Cell gridgraph.Cell
	G    int
	H    int
	F    int
}

// NewNode builds a Node with F = g + h.
func NewNode(c gridgraph.Cell, g, h int) Node {
	return Node{Cell: c, G: g, H: h, F: g + h}
}

// Less orders nodes by F, then by H so that nodes closer to the goal win ties.
func Less(a, b Node) bool {
	if a.F != b.F {
		return a.F < b.F
	}
	return a.H < b.H
}

// nodeItem is a heap entry. seq breaks remaining ties first-in first-out,
// which makes the expansion order deterministic.
type nodeItem struct {
	Node
	seq int
}

// nodePQ is a min-heap of *nodeItem ordered by Less, then seq.
// Stale entries are left in place and skipped on pop (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if Less(pq[i].Node, pq[j].Node) {
		return true
	}
	if Less(pq[j].Node, pq[i].Node) {
		return false
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; used by heap.Push.
func (pq *nodePQ) Push(x interface{}) {
	*pq = append(*pq, x.(*nodeItem))
}

// Pop removes the last element; used by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
