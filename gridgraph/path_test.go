package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestPath_Cost(t *testing.T) {
	assert.Equal(t, -1, gridgraph.Path(nil).Cost())
	assert.Equal(t, 0, gridgraph.Path{gridgraph.C(0, 0)}.Cost())
	assert.Equal(t, 2, gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(0, 1), gridgraph.C(1, 1)}.Cost())
}

func TestPath_Validate(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{0, 0, 0},
		{1, 1, 0},
	})
	cases := []struct {
		name string
		path gridgraph.Path
		err  error
	}{
		{"Empty", nil, nil},
		{"Single", gridgraph.Path{gridgraph.C(0, 0)}, nil},
		{"Valid", gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(0, 1), gridgraph.C(0, 2), gridgraph.C(1, 2)}, nil},
		{"Jump", gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(0, 2)}, gridgraph.ErrBrokenPath},
		{"Diagonal", gridgraph.Path{gridgraph.C(0, 1), gridgraph.C(1, 2)}, gridgraph.ErrBrokenPath},
		{"Blocked", gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(1, 0)}, gridgraph.ErrBlockedCell},
		{"OutOfBounds", gridgraph.Path{gridgraph.C(0, 2), gridgraph.C(0, 3)}, gridgraph.ErrBlockedCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.path.Validate(g)
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestPath_EndsAndClone(t *testing.T) {
	p := gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(0, 1)}
	s, ok := p.Start()
	assert.True(t, ok)
	assert.Equal(t, gridgraph.C(0, 0), s)
	e, ok := p.End()
	assert.True(t, ok)
	assert.Equal(t, gridgraph.C(0, 1), e)

	cp := p.Clone()
	cp[0] = gridgraph.C(9, 9)
	assert.Equal(t, gridgraph.C(0, 0), p[0])

	_, ok = gridgraph.Path{}.End()
	assert.False(t, ok)
}
