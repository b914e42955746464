package forwardchain

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// EngineName labels spans, metrics and logs produced by this package.
const EngineName = "forward-chaining"

// Option configures a forward-chaining search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks of a search.
type Options struct {
	// Ctx allows cancellation; it is checked once per popped fact.
	Ctx context.Context

	// Logger receives Debug records for every derived fact.
	Logger *slog.Logger

	// Order is the neighbor order of the default MoveRule.
	Order gridgraph.Order

	// Rules replaces the default MoveRule when non-empty.
	Rules []Rule

	// OnInfer is called for each newly asserted fact with the rule and premise that produced it.
	OnInfer func(rule string, premise, derived Fact)
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - gridgraph.ChainingOrder (right, left, down, up)
//   - the single default MoveRule
//   - a no-op OnInfer
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  slog.New(slog.DiscardHandler),
		Order:   gridgraph.ChainingOrder,
		OnInfer: func(string, Fact, Fact) {},
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

// WithOrder overrides the neighbor order of the default MoveRule.
func WithOrder(order gridgraph.Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithRules replaces the default rule set. Rules are applied in the given order.
func WithRules(rules ...Rule) Option {
	return func(o *Options) { o.Rules = rules }
}

// WithOnInfer registers a hook for each newly asserted fact.
func WithOnInfer(fn func(rule string, premise, derived Fact)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInfer = fn
		}
	}
}

// Step is one entry of the trace: the fact popped from the queue.
type Step struct {
	Current gridgraph.Cell
	Path    gridgraph.Path
}

// Result holds the outcome of a forward-chaining search and its per-pop trace.
// The last Step of a successful search is the goal.
type Result struct {
	search.Outcome
	Trace []Step
}
