// Package gridgraph provides an immutable 2D obstacle grid that search
// engines treat as an implicit 4-connected graph. It supports:
//
//   - Bounds and traversability queries on Cells
//   - Parsing of whitespace-separated 0/1 grid text
//   - Identification of connected components of free cells
//   - Validation of cell paths against the grid
//
// Cells with value 0 are free; every nonzero value is an obstacle.
package gridgraph

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed [row][col].
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// MustGrid is like NewGrid but panics on error. Intended for literals in tests and examples.
func MustGrid(values [][]int) *Grid {
	g, err := NewGrid(values)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseGrid reads a grid written as one row per line of whitespace-separated integers.
// Blank lines and lines starting with '#' are skipped.
func ParseGrid(text string) (*Grid, error) {
	var values [][]int
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrParse, line, f)
			}
			row[i] = v
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return NewGrid(values)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Value returns the stored flag of c and whether c is in bounds.
func (g *Grid) Value(c Cell) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return g.cells[c.Row][c.Col], true
}

// IsTraversable reports whether c is in bounds and free.
// Complexity: O(1).
func (g *Grid) IsTraversable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == 0
}

// Values returns a copy of the underlying [row][col] values.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = append([]int(nil), g.cells[r]...)
	}
	return out
}

// FreeCount returns the number of traversable cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid in the format accepted by ParseGrid.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}
