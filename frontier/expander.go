package frontier

import (
	"context"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// Expander encapsulates mutable BFS state for one search direction.
// It performs one unit of work per Step and never re-expands a cell.
type Expander struct {
	grid  *gridgraph.Grid
	order gridgraph.Order
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	state *State
}

// New seeds an Expander at origin. The origin is recorded as a root link at depth 0
// and is the first entry of the visitation order.
// Returns ErrGridNil, ErrOriginInvalid, gridgraph.ErrBadOrder or ErrOptionViolation for invalid input.
func New(grid *gridgraph.Grid, origin gridgraph.Cell, order gridgraph.Order, opts ...Option) (*Expander, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if !grid.IsTraversable(origin) {
		return nil, ErrOriginInvalid
	}

	n := grid.FreeCount()
	e := &Expander{
		grid:  grid,
		order: order,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		state: &State{
			Origin:  origin,
			Parents: make(ParentMap, n),
			Order:   make([]gridgraph.Cell, 0, n),
			Depth:   make(map[gridgraph.Cell]int, n),
		},
	}
	e.enqueue(origin, 0, Link{Root: true})

	return e, nil
}

// enqueue records link and depth for c, appends it to the visitation order,
// calls OnEnqueue and adds it to the queue.
func (e *Expander) enqueue(c gridgraph.Cell, d int, link Link) {
	e.state.Parents[c] = link
	e.state.Depth[c] = d
	e.state.Order = append(e.state.Order, c)
	e.opts.OnEnqueue(c, d)
	e.queue = append(e.queue, queueItem{cell: c, depth: d})
}

// Step pops the next pending cell and discovers its traversable, unvisited
// neighbors in the expander's fixed order. It returns the popped cell, or
// false when the queue is already empty.
func (e *Expander) Step() (gridgraph.Cell, bool) {
	if e.head >= len(e.queue) {
		return gridgraph.Cell{}, false
	}
	item := e.queue[e.head]
	e.head++
	e.opts.OnDequeue(item.cell, item.depth)

	next := item.depth + 1
	if e.opts.MaxDepth > 0 && next > e.opts.MaxDepth {
		return item.cell, true
	}
	for _, nb := range Candidates(e.grid, item.cell, e.order) {
		if e.state.Has(nb) {
			continue
		}
		e.enqueue(nb, next, Link{Parent: item.cell})
	}
	return item.cell, true
}

// Exhaust steps until the pending queue is empty, checking the context once per pop.
func (e *Expander) Exhaust() error {
	for e.Pending() > 0 {
		select {
		case <-e.ctx.Done():
			return e.ctx.Err()
		default:
		}
		e.Step()
	}
	return nil
}

// Pending returns the number of discovered cells not yet popped.
func (e *Expander) Pending() int { return len(e.queue) - e.head }

// Visited reports whether c has been discovered.
func (e *Expander) Visited(c gridgraph.Cell) bool { return e.state.Has(c) }

// State returns the BFS tree built so far. The returned value is live;
// callers must not modify it while the expander is in use.
func (e *Expander) State() *State { return e.state }

// Candidates returns the traversable neighbors of from, proposed in order.
// Visited filtering is left to the caller.
func Candidates(grid *gridgraph.Grid, from gridgraph.Cell, order gridgraph.Order) []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, len(order))
	for _, d := range order {
		c := from.Add(d)
		if grid.IsTraversable(c) {
			out = append(out, c)
		}
	}
	return out
}
