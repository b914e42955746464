package informed

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Search runs A* from start to goal on g and returns the path of the first
// goal node taken from the open set.
//
// Neighbors are generated in Options.Order; the open set is ordered by Less
// with first-in first-out tie-breaking. Closed cells are never reopened, so
// with a consistent heuristic such as Manhattan the path is shortest.
//
// An invalid endpoint or an unreachable goal is reported through Result.Found
// and Result.Reason with a nil error.
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, search.ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := o.Order.Validate(); err != nil {
		return nil, fmt.Errorf("informed: %w", err)
	}

	ctx, span := search.StartSpan(o.Ctx, EngineName, start, goal)
	began := time.Now()

	if reason := search.CheckEndpoints(g, start, goal); reason != search.Reached {
		o.Logger.Debug("endpoint rejected before search", "reason", reason.String())
		res := &Result{Outcome: search.NotFound(start, goal, reason, 0), Closed: []gridgraph.Cell{}}
		search.RecordMetrics(ctx, EngineName, time.Since(began), res.Outcome)
		search.EndSpan(span, res.Outcome, nil)
		return res, nil
	}

	r := newRunner(g, goal, o)
	err := r.run(start)
	search.EndSpan(span, r.res.Outcome, err)
	if err != nil {
		return nil, err
	}
	search.RecordMetrics(ctx, EngineName, time.Since(began), r.res.Outcome)

	o.Logger.Debug("astar search finished",
		"start", start.String(),
		"goal", goal.String(),
		"found", r.res.Found,
		"cost", r.res.Cost(),
		"closed", len(r.res.Closed),
		"pushed", r.seq,
	)
	return r.res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *gridgraph.Grid
	goal    gridgraph.Cell
	opts    Options
	gScore  map[gridgraph.Cell]int
	parents frontier.ParentMap
	closed  map[gridgraph.Cell]bool
	pq      nodePQ
	seq     int
	res     *Result
}

func newRunner(g *gridgraph.Grid, goal gridgraph.Cell, o Options) *runner {
	n := g.FreeCount()
	return &runner{
		g:       g,
		goal:    goal,
		opts:    o,
		gScore:  make(map[gridgraph.Cell]int, n),
		parents: make(frontier.ParentMap, n),
		closed:  make(map[gridgraph.Cell]bool, n),
		res:     &Result{Closed: make([]gridgraph.Cell, 0, n)},
	}
}

func (r *runner) push(c gridgraph.Cell, gScore int) {
	heap.Push(&r.pq, &nodeItem{Node: NewNode(c, gScore, r.opts.Heuristic(c, r.goal)), seq: r.seq})
	r.seq++
}

// run pops the best open node until the goal is closed or the open set is empty.
func (r *runner) run(start gridgraph.Cell) error {
	heap.Init(&r.pq)
	r.gScore[start] = 0
	r.parents[start] = frontier.Link{Root: true}
	r.push(start, 0)

	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			r.res.Outcome = search.NotFound(start, r.goal, search.Unreachable, len(r.res.Closed))
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		cur := item.Node
		// stale entry: a cheaper copy was already closed
		if r.closed[cur.Cell] {
			continue
		}
		r.closed[cur.Cell] = true
		r.res.Closed = append(r.res.Closed, cur.Cell)
		r.opts.OnExpand(cur)

		if cur.Cell == r.goal {
			path := frontier.Reconstruct(r.parents, r.goal)
			r.res.Outcome = search.FoundPath(start, r.goal, path, len(r.res.Closed))
			return nil
		}
		r.relax(cur)
	}
	r.res.Outcome = search.NotFound(start, r.goal, search.Unreachable, len(r.res.Closed))
	return nil
}

// relax pushes every open neighbor of cur whose cost strictly improves.
func (r *runner) relax(cur Node) {
	next := cur.G + 1
	for _, v := range frontier.Candidates(r.g, cur.Cell, r.opts.Order) {
		if r.closed[v] {
			continue
		}
		if old, seen := r.gScore[v]; seen && next >= old {
			continue
		}
		r.gScore[v] = next
		r.parents[v] = frontier.Link{Parent: cur.Cell}
		r.push(v, next)
	}
}
