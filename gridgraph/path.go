package gridgraph

import "fmt"

// Path is an ordered sequence of cells from start to goal inclusive.
// An empty Path means no path exists.
type Path []Cell

// Cost returns the number of edges, len(p)-1, or -1 for an empty path.
func (p Path) Cost() int {
	if len(p) == 0 {
		return -1
	}
	return len(p) - 1
}

// Start returns the first cell; ok is false for an empty path.
func (p Path) Start() (c Cell, ok bool) {
	if len(p) == 0 {
		return Cell{}, false
	}
	return p[0], true
}

// End returns the last cell; ok is false for an empty path.
func (p Path) End() (c Cell, ok bool) {
	if len(p) == 0 {
		return Cell{}, false
	}
	return p[len(p)-1], true
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Validate checks that every cell of p is traversable in g and that each
// consecutive pair differs by exactly one axis-aligned unit step.
// Returns ErrBlockedCell or ErrBrokenPath wrapped with the offending position.
func (p Path) Validate(g *Grid) error {
	for i, c := range p {
		if !g.IsTraversable(c) {
			return fmt.Errorf("%w: %v at index %d", ErrBlockedCell, c, i)
		}
		if i == 0 {
			continue
		}
		if !Adjacent(p[i-1], c) {
			return fmt.Errorf("%w: %v -> %v at index %d", ErrBrokenPath, p[i-1], c, i)
		}
	}
	return nil
}

// Adjacent reports whether a and b differ by exactly one axis-aligned unit step.
func Adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}
