// Package frontier implements the breadth-first frontier expansion shared by
// the grid search engines, plus parent-pointer path reconstruction.
//
// What
//
//   - Expander seeds a BFS tree at an origin cell and grows it one pop at a time (Step)
//     or until the reachable component is exhausted (Exhaust).
//   - State records, for each discovered cell, its parent Link, its depth and its
//     position in the visitation order.
//   - Candidates proposes the traversable neighbors of a cell in a fixed gridgraph.Order.
//   - Reconstruct and Chain walk parent links to produce cell paths.
//
// Determinism
//
//	Neighbors are proposed in the Order given to New, so repeated runs on the same
//	grid produce the same visitation order and the same parent links.
//
// Guarantees
//
//	Cells are discovered in non-decreasing depth. The first parent recorded for a
//	cell yields a minimum edge-count path from the origin; no cell is inserted twice.
//
// Complexity (N = free cells)
//
//   - Time:   O(N)   (each cell popped once, four proposals per pop)
//   - Memory: O(N)   (queue, parent map, depth map, order)
//
// Usage
//
//	exp, err := frontier.New(grid, start, gridgraph.DefaultOrder,
//	    frontier.WithContext(ctx),
//	    frontier.WithOnEnqueue(func(c gridgraph.Cell, d int) { /* ... */ }),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrOriginInvalid, gridgraph.ErrBadOrder or ErrOptionViolation
//	}
//	if err := exp.Exhaust(); err != nil {
//	    // context cancellation
//	}
//	path := exp.State().PathTo(goal)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOriginInvalid    if the origin is out of bounds or blocked.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. negative MaxDepth).
package frontier
