package scenario

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/bidirectional"
	"github.com/katalvlaran/gridpath/forwardchain"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/informed"
	"github.com/katalvlaran/gridpath/search"
)

// Report is the engine-independent view of a finished scenario.
// Engine-specific fields are empty for engines that do not produce them.
type Report struct {
	Name   string
	Engine string
	search.Outcome

	// bidirectional
	Forward    []gridgraph.Cell
	Backward   []gridgraph.Cell
	Meeting    gridgraph.Cell
	HasMeeting bool

	// forward-chaining
	Trace []forwardchain.Step

	// astar
	Closed []gridgraph.Cell
}

// RunOption adjusts a single Run.
type RunOption func(*runConfig)

type runConfig struct {
	onInfer func(rule string, premise, derived forwardchain.Fact)
}

// WithInferHook receives every fact the forward-chaining engine asserts.
// Other engines ignore it.
func WithInferHook(fn func(rule string, premise, derived forwardchain.Fact)) RunOption {
	return func(rc *runConfig) { rc.onInfer = fn }
}

// Run executes sc with the engine it names. A nil logger discards everything.
func Run(ctx context.Context, sc *Scenario, logger *slog.Logger, runOpts ...RunOption) (*Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var rc runConfig
	for _, opt := range runOpts {
		opt(&rc)
	}
	logger = logger.With("scenario", sc.Name, "engine", sc.Engine)
	rep := &Report{Name: sc.Name, Engine: sc.Engine}

	switch sc.Engine {
	case EngineBidirectional:
		opts := []bidirectional.Option{bidirectional.WithContext(ctx), bidirectional.WithLogger(logger)}
		if sc.ForwardOrder != nil {
			opts = append(opts, bidirectional.WithForwardOrder(sc.ForwardOrder))
		}
		if sc.BackwardOrder != nil {
			opts = append(opts, bidirectional.WithBackwardOrder(sc.BackwardOrder))
		}
		res, err := bidirectional.Search(sc.Grid, sc.Start, sc.Goal, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		rep.Outcome = res.Outcome
		rep.Forward, rep.Backward = res.Forward, res.Backward
		rep.Meeting, rep.HasMeeting = res.Meeting, res.HasMeeting

	case EngineForwardChaining:
		opts := []forwardchain.Option{forwardchain.WithContext(ctx), forwardchain.WithLogger(logger)}
		if sc.Order != nil {
			opts = append(opts, forwardchain.WithOrder(sc.Order))
		}
		if rc.onInfer != nil {
			opts = append(opts, forwardchain.WithOnInfer(rc.onInfer))
		}
		res, err := forwardchain.Search(sc.Grid, sc.Start, sc.Goal, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		rep.Outcome = res.Outcome
		rep.Trace = res.Trace

	case EngineAStar:
		opts := []informed.Option{
			informed.WithContext(ctx),
			informed.WithLogger(logger),
			informed.WithHeuristic(sc.Heuristic),
		}
		if sc.Order != nil {
			opts = append(opts, informed.WithOrder(sc.Order))
		}
		res, err := informed.Search(sc.Grid, sc.Start, sc.Goal, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		rep.Outcome = res.Outcome
		rep.Closed = res.Closed

	default:
		return nil, fmt.Errorf("%w: engine %q", ErrInvalidConfig, sc.Engine)
	}
	return rep, nil
}
