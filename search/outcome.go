// Package search holds the result types and telemetry shared by the grid
// search engines (bidirectional, forwardchain, informed).
//
// An absent path is a normal outcome, not an error: engines return an
// Outcome with Found == false and a Reason explaining why. Errors are
// reserved for misuse (nil grid, invalid options) and cancellation.
package search

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// NoCost is the cost reported when no path exists.
const NoCost = -1

// ErrGridNil is returned by engines when a nil grid is passed.
var ErrGridNil = errors.New("search: grid is nil")

// Reason classifies an Outcome.
type Reason int

const (
	// Reached means a path from start to goal was found.
	Reached Reason = iota
	// Unreachable means both endpoints are valid but lie in different regions.
	Unreachable
	// InvalidStart means the start cell is out of bounds or blocked.
	InvalidStart
	// InvalidGoal means the goal cell is out of bounds or blocked.
	InvalidGoal
)

// String returns a short lowercase label.
func (r Reason) String() string {
	switch r {
	case Reached:
		return "reached"
	case Unreachable:
		return "unreachable"
	case InvalidStart:
		return "invalid-start"
	case InvalidGoal:
		return "invalid-goal"
	}
	return "unknown"
}

// Outcome is the engine-independent part of a search result.
type Outcome struct {
	Start, Goal gridgraph.Cell
	// Path runs start→goal inclusive; empty unless Found.
	Path   gridgraph.Path
	Found  bool
	Reason Reason
	// Expanded counts cells popped from the engine's queue(s).
	Expanded int
}

// Cost returns len(Path)-1, or NoCost when no path was found.
// A found start==goal path has cost 0, which is distinct from NoCost.
func (o Outcome) Cost() int {
	if !o.Found {
		return NoCost
	}
	return len(o.Path) - 1
}

// CostString renders Cost, using "N/A" for a missing path.
func (o Outcome) CostString() string {
	if !o.Found {
		return "N/A"
	}
	return strconv.Itoa(o.Cost())
}

// NotFound builds an Outcome for a search that ended without a path.
func NotFound(start, goal gridgraph.Cell, reason Reason, expanded int) Outcome {
	return Outcome{Start: start, Goal: goal, Path: gridgraph.Path{}, Reason: reason, Expanded: expanded}
}

// FoundPath builds an Outcome for a discovered path.
func FoundPath(start, goal gridgraph.Cell, path gridgraph.Path, expanded int) Outcome {
	return Outcome{Start: start, Goal: goal, Path: path, Found: true, Reason: Reached, Expanded: expanded}
}

// CheckEndpoints validates start and goal before a search begins.
// It returns Reached when both are traversable; otherwise InvalidStart or InvalidGoal.
func CheckEndpoints(g *gridgraph.Grid, start, goal gridgraph.Cell) Reason {
	if !g.IsTraversable(start) {
		return InvalidStart
	}
	if !g.IsTraversable(goal) {
		return InvalidGoal
	}
	return Reached
}
