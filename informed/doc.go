// Package informed implements A* search on a 4-connected obstacle grid.
//
// Each open entry is a Node{Cell, G, H, F} where G is the number of moves
// from start, H the heuristic estimate to the goal and F = G + H. The open set
// is a binary heap ordered by F, then H, then insertion order.
//
// Heuristics
//
//   - Manhattan (default): admissible and consistent, so the returned path is shortest.
//   - SquaredEuclidean: the classic Δrow²+Δcol² estimate; it overestimates and
//     can return a longer path while usually expanding fewer cells.
//   - Zero: uniform-cost search.
//
// Parents are recorded as frontier.Link entries and the path is rebuilt with
// frontier.Reconstruct.
//
// Complexity (N = free cells)
//
//   - Time:   O(N log N)
//   - Memory: O(N)
package informed
