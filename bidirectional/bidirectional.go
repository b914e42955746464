package bidirectional

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Search finds a shortest path from start to goal on g.
//
// Both expansions run to exhaustion of their reachable component, forward
// first. The meeting point is the first cell of the forward visitation order
// that the backward expansion also discovered. The path is the forward tree
// path start→meeting followed by the backward tree chain from the meeting
// point's backward parent to goal.
//
// An invalid endpoint or disconnected endpoints are reported through
// Result.Found and Result.Reason with a nil error. Errors are returned for a
// nil grid, an invalid neighbor order, or context cancellation.
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, search.ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.ForwardOrder.Validate(); err != nil {
		return nil, fmt.Errorf("bidirectional: forward order: %w", err)
	}
	if err := o.BackwardOrder.Validate(); err != nil {
		return nil, fmt.Errorf("bidirectional: backward order: %w", err)
	}

	ctx, span := search.StartSpan(o.Ctx, EngineName, start, goal)
	began := time.Now()
	res, err := run(g, start, goal, o)
	if res != nil {
		search.RecordMetrics(ctx, EngineName, time.Since(began), res.Outcome)
		search.EndSpan(span, res.Outcome, err)
	} else {
		search.EndSpan(span, search.NotFound(start, goal, search.Unreachable, 0), err)
	}
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("bidirectional search finished",
		"start", start.String(),
		"goal", goal.String(),
		"found", res.Found,
		"reason", res.Reason.String(),
		"cost", res.Cost(),
		"forward_visited", len(res.Forward),
		"backward_visited", len(res.Backward),
	)
	return res, nil
}

// run performs the two expansions, picks the meeting point and joins the trees.
func run(g *gridgraph.Grid, start, goal gridgraph.Cell, o Options) (*Result, error) {
	if reason := search.CheckEndpoints(g, start, goal); reason != search.Reached {
		o.Logger.Debug("endpoint rejected before search", "reason", reason.String())
		return &Result{
			Outcome:  search.NotFound(start, goal, reason, 0),
			Forward:  []gridgraph.Cell{},
			Backward: []gridgraph.Cell{},
		}, nil
	}

	fwd, err := expand(g, start, o.ForwardOrder, o)
	if err != nil {
		return nil, err
	}
	bwd, err := expand(g, goal, o.BackwardOrder, o)
	if err != nil {
		return nil, err
	}
	expanded := len(fwd.Order) + len(bwd.Order)

	res := &Result{Forward: fwd.Order, Backward: bwd.Order}
	meeting, ok := MeetingPoint(fwd.Order, bwd.Parents)
	if !ok {
		res.Outcome = search.NotFound(start, goal, search.Unreachable, expanded)
		return res, nil
	}
	o.Logger.Debug("frontiers meet", "cell", meeting.String())

	res.Meeting, res.HasMeeting = meeting, true
	res.Outcome = search.FoundPath(start, goal, Join(fwd.Parents, bwd.Parents, meeting), expanded)
	return res, nil
}

// expand exhausts one direction and returns its BFS tree.
func expand(g *gridgraph.Grid, origin gridgraph.Cell, order gridgraph.Order, o Options) (*frontier.State, error) {
	exp, err := frontier.New(g, origin, order, frontier.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("bidirectional: seed %v: %w", origin, err)
	}
	if err := exp.Exhaust(); err != nil {
		return nil, err
	}
	return exp.State(), nil
}

// MeetingPoint scans forwardOrder in order and returns the first cell present in backward.
func MeetingPoint(forwardOrder []gridgraph.Cell, backward frontier.ParentMap) (gridgraph.Cell, bool) {
	for _, c := range forwardOrder {
		if _, ok := backward[c]; ok {
			return c, true
		}
	}
	return gridgraph.Cell{}, false
}

// Join concatenates the forward tree path start→meeting with the backward
// chain that starts at the meeting point's backward parent and ends at goal.
// It returns an empty path if meeting is missing from either tree.
func Join(forward, backward frontier.ParentMap, meeting gridgraph.Cell) gridgraph.Path {
	head := frontier.Reconstruct(forward, meeting)
	tail := frontier.Chain(backward, meeting)
	if len(head) == 0 || len(tail) == 0 {
		return gridgraph.Path{}
	}
	// tail[0] is the meeting point itself
	return append(head, tail[1:]...)
}
