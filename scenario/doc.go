// Package scenario loads search scenarios from YAML and runs them through the
// engine each one names.
//
// Configuration is resolved as defaults, then the file, then environment
// overrides (GRIDPATH_ENGINE, GRIDPATH_LOG_LEVEL, GRIDPATH_HEURISTIC), then
// Validate. A file may hold several scenarios as separate YAML documents:
//
//	name: reference
//	engine: forward-chaining
//	start: [0, 0]
//	goal: [4, 5]
//	order: [right, left, down, up]
//	grid_text: |
//	  0 1 0 0 0 0
//	  0 0 0 0 0 0
//	  0 1 0 1 0 0
//	  0 1 0 0 1 0
//	  0 0 0 0 1 0
//	---
//	name: walled
//	grid: [[0, 1, 0], [0, 1, 0]]
//	start: [0, 0]
//	goal: [1, 2]
package scenario
