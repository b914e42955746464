// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrParse indicates a textual grid could not be parsed.
	ErrParse = errors.New("gridgraph: malformed grid text")
	// ErrBadOrder indicates a neighbor order that is not a permutation of the four axis directions.
	ErrBadOrder = errors.New("gridgraph: neighbor order must list up, down, left and right exactly once")
	// ErrBrokenPath indicates two consecutive path cells that are not one axis step apart.
	ErrBrokenPath = errors.New("gridgraph: consecutive path cells are not adjacent")
	// ErrBlockedCell indicates a path cell that is out of bounds or blocked.
	ErrBlockedCell = errors.New("gridgraph: path crosses a non-traversable cell")
)

// Cell is a (row, column) coordinate pair. It is a plain value type and can be used as a map key.
type Cell struct {
	Row, Col int
}

// C is shorthand for Cell{Row: row, Col: col}.
func C(row, col int) Cell { return Cell{Row: row, Col: col} }

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a unit offset between orthogonally adjacent cells.
type Direction struct {
	DRow, DCol int
}

// The four axis-aligned moves. Diagonals are never generated.
var (
	Up    = Direction{DRow: -1, DCol: 0}
	Down  = Direction{DRow: 1, DCol: 0}
	Left  = Direction{DRow: 0, DCol: -1}
	Right = Direction{DRow: 0, DCol: 1}
)

// String returns the lowercase name of d, or its raw offset if d is not one of the four moves.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// ParseDirection maps "up", "down", "left" or "right" (case-insensitive) to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Direction{}, fmt.Errorf("%w: unknown direction %q", ErrBadOrder, name)
}

// Order is the fixed sequence in which neighbors of a cell are proposed.
// It decides tie-breaking among equidistant cells, so it fixes visitation order and paths.
type Order []Direction

var (
	// DefaultOrder evaluates up, down, left, right.
	DefaultOrder = Order{Up, Down, Left, Right}
	// ChainingOrder evaluates right, left, down, up; it is the forward-chaining engine's default.
	ChainingOrder = Order{Right, Left, Down, Up}
)

// Validate reports ErrBadOrder unless o is a permutation of Up, Down, Left, Right.
func (o Order) Validate() error {
	if len(o) != 4 {
		return fmt.Errorf("%w: got %d directions", ErrBadOrder, len(o))
	}
	seen := make(map[Direction]bool, 4)
	for _, d := range o {
		switch d {
		case Up, Down, Left, Right:
		default:
			return fmt.Errorf("%w: %v is not an axis move", ErrBadOrder, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: %v repeated", ErrBadOrder, d)
		}
		seen[d] = true
	}
	return nil
}

// ParseOrder builds an Order from direction names and validates it.
func ParseOrder(names []string) (Order, error) {
	o := make(Order, 0, len(names))
	for _, n := range names {
		d, err := ParseDirection(n)
		if err != nil {
			return nil, err
		}
		o = append(o, d)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// String renders the order as "up,down,left,right".
func (o Order) String() string {
	parts := make([]string, len(o))
	for i, d := range o {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}

// Grid is an immutable rectangular traversability map.
// A stored value of 0 is free; any other value is blocked.
type Grid struct {
	rows, cols int
	cells      [][]int
}
