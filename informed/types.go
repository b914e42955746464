package informed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// EngineName labels spans, metrics and logs produced by this package.
const EngineName = "astar"

// Sentinel errors for informed search.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("informed: invalid option supplied")
	// ErrUnknownHeuristic is returned by ParseHeuristic for an unrecognized name.
	ErrUnknownHeuristic = errors.New("informed: unknown heuristic")
)

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, goal gridgraph.Cell) int

// Manhattan is |Δrow| + |Δcol|. It is admissible and consistent on a
// 4-connected unit-cost grid, so A* with it returns shortest paths.
func Manhattan(from, goal gridgraph.Cell) int {
	return abs(from.Row-goal.Row) + abs(from.Col-goal.Col)
}

// SquaredEuclidean is Δrow² + Δcol². It overestimates the remaining distance
// whenever both deltas are non-zero or either exceeds one, so paths found with
// it are valid but not guaranteed shortest.
func SquaredEuclidean(from, goal gridgraph.Cell) int {
	dr, dc := from.Row-goal.Row, from.Col-goal.Col
	return dr*dr + dc*dc
}

// Zero always returns 0, which turns A* into uniform-cost search.
func Zero(gridgraph.Cell, gridgraph.Cell) int { return 0 }

// ParseHeuristic maps "manhattan", "squared-euclidean" or "zero" to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "manhattan", "":
		return Manhattan, nil
	case "squared-euclidean":
		return SquaredEuclidean, nil
	case "zero":
		return Zero, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Option configures an informed search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks of a search.
type Options struct {
	// Ctx allows cancellation; it is checked once per expanded node.
	Ctx context.Context

	// Logger receives a Debug summary of each search.
	Logger *slog.Logger

	// Order decides the order in which neighbors are generated.
	Order gridgraph.Order

	// Heuristic estimates the remaining cost; defaults to Manhattan.
	Heuristic Heuristic

	// OnExpand is called for each node moved to the closed set.
	OnExpand func(n Node)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - gridgraph.DefaultOrder
//   - the Manhattan heuristic
//   - a no-op OnExpand
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.DiscardHandler),
		Order:     gridgraph.DefaultOrder,
		Heuristic: Manhattan,
		OnExpand:  func(Node) {},
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

// WithLogger sets the logger used for Debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOrder overrides the neighbor generation order.
func WithOrder(order gridgraph.Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithHeuristic sets the heuristic. A nil heuristic is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a callback for each closed node.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of an informed search.
// Closed lists cells in the order they were expanded.
type Result struct {
	search.Outcome
	Closed []gridgraph.Cell
}
