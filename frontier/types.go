// Package frontier provides tunable options and error definitions
// for breadth-first frontier expansion over a gridgraph.Grid.
package frontier

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for frontier expansion.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("frontier: grid is nil")

	// ErrOriginInvalid is returned when the origin is out of bounds or blocked.
	ErrOriginInvalid = errors.New("frontier: origin is not a traversable cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")
)

// Option configures expansion behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize expansion.
type Options struct {
	// Ctx allows cancellation and deadlines in Exhaust.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered, after its parent is recorded.
	// Receives the cell and its depth from the origin.
	OnEnqueue func(c gridgraph.Cell, depth int)

	// OnDequeue is called when a cell is popped, before its neighbors are proposed.
	OnDequeue func(c gridgraph.Cell, depth int)

	// MaxDepth, if > 0, stops discovering cells beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Cell, int) {},
		OnDequeue: func(gridgraph.Cell, int) {},
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a cell is discovered.
func WithOnEnqueue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is popped.
func WithOnDequeue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops discovery beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Link is a parent pointer in the BFS tree. Root marks the origin, which has no parent.
type Link struct {
	Parent gridgraph.Cell
	Root   bool
}

// ParentMap maps each discovered cell to its Link.
type ParentMap map[gridgraph.Cell]Link

// State is the BFS tree built so far:
//   - Parents: every discovered cell and the cell it was reached from.
//   - Order: discovery sequence (insertion order), origin first.
//   - Depth: edge distance from the origin.
//
// A cell appears in Parents, Order and Depth at most once.
type State struct {
	Origin  gridgraph.Cell
	Parents ParentMap
	Order   []gridgraph.Cell
	Depth   map[gridgraph.Cell]int
}

// Has reports whether c has been discovered.
func (s *State) Has(c gridgraph.Cell) bool {
	_, ok := s.Parents[c]
	return ok
}

// PathTo reconstructs the path from the origin to dest.
// Returns an empty path if dest was not reached.
func (s *State) PathTo(dest gridgraph.Cell) gridgraph.Path {
	return Reconstruct(s.Parents, dest)
}
