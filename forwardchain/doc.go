// Package forwardchain finds grid paths by forward-chaining reachability facts.
//
// The search is framed as inference: the axiom "start is reachable via [start]"
// seeds a knowledge base, and rules derive new facts "cell X is reachable via
// path P" from facts already proven. Facts are processed first-in first-out,
// so the engine is breadth-first search with the full path carried on every
// queue entry, and the first goal fact popped carries a shortest path.
//
// Rules
//
//	The default rule set is a single MoveRule: every free, in-bounds, not yet
//	known neighbor of a proven cell, proposed in the configured neighbor order
//	(default gridgraph.ChainingOrder: right, left, down, up), becomes a new fact.
//	WithRules replaces the rule set; a cell is asserted at most once no matter
//	how many rules derive it.
//
// Trace
//
//	Result.Trace lists every popped fact as a Step{Current, Path}. A
//	successful search ends with the goal step; a failed one lists every
//	reachable cell exactly once.
//
// Complexity (N = free cells, L = shortest path length)
//
//   - Time:   O(N·L) because each fact copies its parent's path
//   - Memory: O(N·L)
//
// Errors
//
//   - search.ErrGridNil       if the grid pointer is nil.
//   - gridgraph.ErrBadOrder   if the neighbor order is not a permutation of the four moves.
//   - context errors          if the context passed via WithContext is done.
package forwardchain
