// Package gridgraph treats a 2D obstacle grid as an implicit graph for
// shortest-path search.
//
// What:
//
//   - Grid wraps a rectangular [][]int; 0 marks a free cell, anything else an obstacle.
//   - Cell is a comparable (Row, Col) value; Direction and Order fix neighbor proposal order.
//   - Path is a start→goal cell sequence with Cost and Validate.
//   - Identifies connected components of free cells.
//
// Why:
//
//   - Search engines share one read-only Grid; it can be used from many goroutines.
//   - A fixed Order makes visitation order and tie-breaking reproducible.
//
// Complexity:
//
//   - NewGrid, ParseGrid:  O(R×C) time and memory.
//   - InBounds, IsTraversable, Value: O(1).
//   - ConnectedComponents: O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrParse: grid text contains a non-integer token.
//   - ErrBadOrder: a neighbor order is not a permutation of up, down, left, right.
//   - ErrBrokenPath, ErrBlockedCell: Path.Validate failures.
package gridgraph
