// Package gridpath is a small toolkit for shortest paths on 4-connected
// obstacle grids, with three interchangeable engines that share one grid
// model, one result type and one set of telemetry.
//
// 🚀 What is in the box?
//
//	• gridgraph/     — immutable Grid, Cell, Direction, neighbor Order, Path validation, components
//	• frontier/      — breadth-first Expander (visitation order + parent tree) and path Reconstruct
//	• search/        — engine-independent Outcome, Reason and OpenTelemetry spans & metrics
//	• bidirectional/ — two full BFS expansions joined at a meeting point
//	• forwardchain/  — BFS framed as forward chaining of "cell X is reachable via P" facts
//	• informed/      — A* with Manhattan, squared Euclidean or zero heuristics
//	• scenario/      — YAML scenarios, env overrides and a single Run entry point
//	• cmd/gridpath   — CLI: search, batch and demo
//
// ✨ Guarantees
//
//   - Grids are read-only after construction and safe to share across goroutines.
//   - Neighbor orders are explicit, so visitation orders and tie-broken paths are reproducible.
//   - "No path" is an outcome, not an error: Found == false, Cost() == -1, rendered as "N/A".
//
// Quick ASCII example (0 = free, 1 = obstacle):
//
//	S 1 0 0 0 0
//	0 0 0 0 0 0
//	0 1 0 1 0 0
//	0 1 0 0 1 0
//	0 0 0 0 1 G
//
// Every engine finds a 9-step route from S to G.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
