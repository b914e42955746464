// Package bidirectional implements bidirectional breadth-first search on a
// 4-connected obstacle grid.
//
// What
//
//   - Runs one full BFS expansion seeded at start and a second seeded at goal,
//     both to exhaustion of their reachable component (forward first).
//   - Picks the meeting point: the first cell of the forward visitation order
//     that the backward expansion also discovered.
//   - Joins the forward tree path start→meeting with the backward tree chain
//     meeting→goal (the meeting point appears once).
//   - Returns both visitation orders for an external presentation layer.
//
// Neighbor orders
//
//	Both directions default to gridgraph.DefaultOrder (up, down, left, right).
//	WithForwardOrder and WithBackwardOrder change them independently; the two
//	orders need not match. Orders only decide ties between equal-length routes,
//	so they change the returned path and visitation orders but never the cost.
//
// Meeting point
//
//	Because both expansions run to exhaustion, the start cell itself is in the
//	backward tree whenever the goal is reachable, so the meeting point is start
//	and the path is the backward tree path read from start to goal.
//
// Complexity (N = free cells)
//
//   - Time:   O(N)
//   - Memory: O(N)
//
// Outcomes
//
//   - Found, Reason == search.Reached: path and cost len(path)-1; start==goal gives [start], cost 0.
//   - Reason == search.InvalidStart / search.InvalidGoal: endpoint out of bounds or blocked; no expansion runs.
//   - Reason == search.Unreachable: no shared cell; Cost() == search.NoCost.
//
// Errors
//
//   - search.ErrGridNil       if the grid pointer is nil.
//   - gridgraph.ErrBadOrder   if either neighbor order is not a permutation of the four moves.
//   - context errors          if the context passed via WithContext is done.
package bidirectional
