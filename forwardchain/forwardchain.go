package forwardchain

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// chainer encapsulates mutable forward-chaining state.
type chainer struct {
	opts  Options
	rules []Rule
	kb    *KnowledgeBase
	queue []Fact
	head  int
	res   *Result
}

// Search derives reachability facts breadth-first from start until the goal
// fact is popped or no new facts can be derived.
//
// It is behaviorally identical to BFS that carries the full path on each queue
// entry: the returned path is the path of the first goal fact popped, and the
// trace lists every popped fact in order.
//
// An invalid endpoint or an unreachable goal is reported through Result.Found
// and Result.Reason with a nil error. Errors are returned for a nil grid, an
// invalid neighbor order, or context cancellation.
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, search.ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Order.Validate(); err != nil {
		return nil, fmt.Errorf("forwardchain: %w", err)
	}
	rules := o.Rules
	if len(rules) == 0 {
		rules = []Rule{MoveRule{Grid: g, Order: o.Order}}
	}

	ctx, span := search.StartSpan(o.Ctx, EngineName, start, goal)
	began := time.Now()

	if reason := search.CheckEndpoints(g, start, goal); reason != search.Reached {
		o.Logger.Debug("endpoint rejected before search", "reason", reason.String())
		res := &Result{Outcome: search.NotFound(start, goal, reason, 0), Trace: []Step{}}
		search.RecordMetrics(ctx, EngineName, time.Since(began), res.Outcome)
		search.EndSpan(span, res.Outcome, nil)
		return res, nil
	}

	n := g.FreeCount()
	ch := &chainer{
		opts:  o,
		rules: rules,
		kb:    NewKnowledgeBase(n),
		queue: make([]Fact, 0, n),
		res:   &Result{Trace: make([]Step, 0, n)},
	}
	err := ch.run(start, goal)
	search.EndSpan(span, ch.res.Outcome, err)
	if err != nil {
		return nil, err
	}
	search.RecordMetrics(ctx, EngineName, time.Since(began), ch.res.Outcome)

	if ch.res.Found {
		o.Logger.Debug("goal derived", "goal", goal.String(), "steps", ch.res.Cost(), "facts", ch.kb.Len())
	} else {
		o.Logger.Debug("no path found", "goal", goal.String(), "facts", ch.kb.Len())
	}
	return ch.res, nil
}

// run seeds the axiom and processes the queue until the goal is popped,
// the queue is empty, or the context is done.
func (ch *chainer) run(start, goal gridgraph.Cell) error {
	ch.assert(Axiom(start))
	for ch.head < len(ch.queue) {
		select {
		case <-ch.opts.Ctx.Done():
			ch.res.Outcome = search.NotFound(start, goal, search.Unreachable, len(ch.res.Trace))
			return ch.opts.Ctx.Err()
		default:
		}

		premise := ch.queue[ch.head]
		ch.head++
		ch.res.Trace = append(ch.res.Trace, Step{Current: premise.Cell, Path: premise.Path})

		if premise.Cell == goal {
			ch.res.Outcome = search.FoundPath(start, goal, premise.Path.Clone(), len(ch.res.Trace))
			return nil
		}
		ch.infer(premise)
	}
	ch.res.Outcome = search.NotFound(start, goal, search.Unreachable, len(ch.res.Trace))
	return nil
}

// infer applies every rule to premise and asserts the facts not yet known.
func (ch *chainer) infer(premise Fact) {
	for _, rule := range ch.rules {
		for _, derived := range rule.Infer(ch.kb, premise) {
			if !ch.assert(derived) {
				continue
			}
			ch.opts.OnInfer(rule.Name(), premise, derived)
			ch.opts.Logger.Debug("rule applied",
				"rule", rule.Name(),
				"from", premise.Cell.String(),
				"to", derived.Cell.String(),
				"depth", len(derived.Path)-1,
			)
		}
	}
}

// assert records f in the knowledge base and enqueues it. It returns false for a known cell.
func (ch *chainer) assert(f Fact) bool {
	if !ch.kb.Assert(f) {
		return false
	}
	ch.queue = append(ch.queue, f)
	return true
}
