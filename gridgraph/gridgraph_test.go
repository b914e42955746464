package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	values := [][]int{{0, 0}, {0, 0}}
	g, err := gridgraph.NewGrid(values)
	require.NoError(t, err)

	values[0][1] = 1
	assert.True(t, g.IsTraversable(gridgraph.C(0, 1)), "grid must not observe caller mutation")

	out := g.Values()
	out[1][1] = 1
	assert.True(t, g.IsTraversable(gridgraph.C(1, 1)), "Values must return a copy")
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())

	for _, c := range []gridgraph.Cell{gridgraph.C(0, 0), gridgraph.C(1, 2), gridgraph.C(1, 1)} {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	for _, c := range []gridgraph.Cell{gridgraph.C(-1, 0), gridgraph.C(2, 0), gridgraph.C(0, 3), gridgraph.C(1, -1)} {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestIsTraversable covers free, blocked and out-of-range cells.
func TestIsTraversable(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{0, 1},
		{2, 0},
	})
	assert.True(t, g.IsTraversable(gridgraph.C(0, 0)))
	assert.False(t, g.IsTraversable(gridgraph.C(0, 1)), "1 is blocked")
	assert.False(t, g.IsTraversable(gridgraph.C(1, 0)), "any nonzero value is blocked")
	assert.True(t, g.IsTraversable(gridgraph.C(1, 1)))
	assert.False(t, g.IsTraversable(gridgraph.C(2, 1)))

	v, ok := g.Value(gridgraph.C(1, 0))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = g.Value(gridgraph.C(-1, 0))
	assert.False(t, ok)
	assert.Equal(t, 2, g.FreeCount())
}

//----------------------------------------------------------------------------//
// ParseGrid Tests
//----------------------------------------------------------------------------//

func TestParseGrid(t *testing.T) {
	text := `
# reference maze
0 1 0
0 0 0
`
	g, err := gridgraph.ParseGrid(text)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, "0 1 0\n0 0 0", g.String())

	_, err = gridgraph.ParseGrid("0 x\n0 0")
	assert.ErrorIs(t, err, gridgraph.ErrParse)

	_, err = gridgraph.ParseGrid("0 0\n0")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = gridgraph.ParseGrid("\n\n")
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Direction and Order Tests
//----------------------------------------------------------------------------//

func TestOrder_Validate(t *testing.T) {
	cases := []struct {
		name  string
		order gridgraph.Order
		ok    bool
	}{
		{"Default", gridgraph.DefaultOrder, true},
		{"Chaining", gridgraph.ChainingOrder, true},
		{"Short", gridgraph.Order{gridgraph.Up, gridgraph.Down}, false},
		{"Repeated", gridgraph.Order{gridgraph.Up, gridgraph.Up, gridgraph.Left, gridgraph.Right}, false},
		{"Diagonal", gridgraph.Order{gridgraph.Up, gridgraph.Down, gridgraph.Left, {DRow: 1, DCol: 1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, gridgraph.ErrBadOrder)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	o, err := gridgraph.ParseOrder([]string{"Right", "left", "DOWN", "up"})
	require.NoError(t, err)
	assert.Equal(t, gridgraph.ChainingOrder, o)
	assert.Equal(t, "right,left,down,up", o.String())

	_, err = gridgraph.ParseOrder([]string{"up", "down", "left", "north"})
	assert.ErrorIs(t, err, gridgraph.ErrBadOrder)
}

func TestCell_Add(t *testing.T) {
	c := gridgraph.C(2, 3)
	assert.Equal(t, gridgraph.C(1, 3), c.Add(gridgraph.Up))
	assert.Equal(t, gridgraph.C(3, 3), c.Add(gridgraph.Down))
	assert.Equal(t, gridgraph.C(2, 2), c.Add(gridgraph.Left))
	assert.Equal(t, gridgraph.C(2, 4), c.Add(gridgraph.Right))
	assert.Equal(t, "(2,3)", c.String())
}
