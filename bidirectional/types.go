// Package bidirectional provides options and result types for
// bidirectional breadth-first search over a gridgraph.Grid.
package bidirectional

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// EngineName labels spans, metrics and logs produced by this package.
const EngineName = "bidirectional"

// Option configures a bidirectional search via functional arguments.
type Option func(*Options)

// Options holds the neighbor orders and ambient collaborators of a search.
type Options struct {
	// Ctx allows cancellation of either expansion.
	Ctx context.Context

	// Logger receives Debug-level progress records.
	Logger *slog.Logger

	// ForwardOrder is the neighbor order of the expansion seeded at start.
	ForwardOrder gridgraph.Order

	// BackwardOrder is the neighbor order of the expansion seeded at goal.
	BackwardOrder gridgraph.Order
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - gridgraph.DefaultOrder (up, down, left, right) for both directions
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        slog.New(slog.DiscardHandler),
		ForwardOrder:  gridgraph.DefaultOrder,
		BackwardOrder: gridgraph.DefaultOrder,
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

// WithLogger sets the logger used for Debug progress records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithForwardOrder overrides the neighbor order of the start-side expansion.
func WithForwardOrder(order gridgraph.Order) Option {
	return func(o *Options) { o.ForwardOrder = order }
}

// WithBackwardOrder overrides the neighbor order of the goal-side expansion.
func WithBackwardOrder(order gridgraph.Order) Option {
	return func(o *Options) { o.BackwardOrder = order }
}

// Result holds the outcome of a bidirectional search:
//   - Outcome: path, found flag, reason, cost.
//   - Forward: visitation order of the expansion seeded at start.
//   - Backward: visitation order of the expansion seeded at goal.
//   - Meeting: the first Forward cell also visited by the backward expansion; valid if HasMeeting.
type Result struct {
	search.Outcome
	Forward    []gridgraph.Cell
	Backward   []gridgraph.Cell
	Meeting    gridgraph.Cell
	HasMeeting bool
}
