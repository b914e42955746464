package bidirectional_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/bidirectional"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

var c = gridgraph.C

// BidirectionalSuite exercises the bidirectional engine under various scenarios.
type BidirectionalSuite struct {
	suite.Suite
	ref *gridgraph.Grid
}

func (s *BidirectionalSuite) SetupTest() {
	s.ref = gridgraph.MustGrid([][]int{
		{0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 1, 0, 1, 0, 0},
		{0, 1, 0, 0, 1, 0},
		{0, 0, 0, 0, 1, 0},
	})
}

// TestReferenceMaze pins path, cost, meeting point and both visitation orders.
func (s *BidirectionalSuite) TestReferenceMaze() {
	res, err := bidirectional.Search(s.ref, c(0, 0), c(4, 5))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), 9, res.Cost())

	wantPath := gridgraph.Path{c(0, 0), c(1, 0), c(1, 1), c(1, 2), c(1, 3), c(1, 4), c(1, 5), c(2, 5), c(3, 5), c(4, 5)}
	require.Equal(s.T(), wantPath, res.Path)
	require.True(s.T(), res.HasMeeting)
	require.Equal(s.T(), c(0, 0), res.Meeting)

	wantForward := []gridgraph.Cell{
		c(0, 0), c(1, 0), c(2, 0), c(1, 1), c(3, 0), c(1, 2), c(4, 0), c(0, 2),
		c(2, 2), c(1, 3), c(4, 1), c(0, 3), c(3, 2), c(1, 4), c(4, 2), c(0, 4),
		c(3, 3), c(2, 4), c(1, 5), c(4, 3), c(0, 5), c(2, 5), c(3, 5), c(4, 5),
	}
	wantBackward := []gridgraph.Cell{
		c(4, 5), c(3, 5), c(2, 5), c(1, 5), c(2, 4), c(0, 5), c(1, 4), c(0, 4),
		c(1, 3), c(0, 3), c(1, 2), c(0, 2), c(2, 2), c(1, 1), c(3, 2), c(1, 0),
		c(4, 2), c(3, 3), c(0, 0), c(2, 0), c(4, 1), c(4, 3), c(3, 0), c(4, 0),
	}
	require.Equal(s.T(), wantForward, res.Forward)
	require.Equal(s.T(), wantBackward, res.Backward)
	require.Equal(s.T(), len(wantForward)+len(wantBackward), res.Expanded)
}

// TestStartEqualsGoal expects the single-cell path with cost 0.
func (s *BidirectionalSuite) TestStartEqualsGoal() {
	res, err := bidirectional.Search(s.ref, c(2, 2), c(2, 2))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), gridgraph.Path{c(2, 2)}, res.Path)
	require.Equal(s.T(), 0, res.Cost())
	require.Equal(s.T(), c(2, 2), res.Meeting)
}

// TestInvalidEndpoints checks blocked and out-of-bounds endpoints before search.
func (s *BidirectionalSuite) TestInvalidEndpoints() {
	cases := []struct {
		name        string
		start, goal gridgraph.Cell
		reason      search.Reason
	}{
		{"BlockedStart", c(0, 1), c(4, 5), search.InvalidStart},
		{"BlockedGoal", c(0, 0), c(2, 1), search.InvalidGoal},
		{"OutOfBoundsStart", c(-1, 0), c(4, 5), search.InvalidStart},
		{"OutOfBoundsGoal", c(0, 0), c(5, 6), search.InvalidGoal},
		{"BlockedBothSame", c(0, 1), c(0, 1), search.InvalidStart},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res, err := bidirectional.Search(s.ref, tc.start, tc.goal)
			require.NoError(s.T(), err)
			require.False(s.T(), res.Found)
			require.Equal(s.T(), tc.reason, res.Reason)
			require.Equal(s.T(), search.NoCost, res.Cost())
			require.Empty(s.T(), res.Path)
			require.Empty(s.T(), res.Forward)
			require.Empty(s.T(), res.Backward)
		})
	}
}

// TestWall verifies that a full wall yields "no path found".
func (s *BidirectionalSuite) TestWall() {
	g := gridgraph.MustGrid([][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	})
	res, err := bidirectional.Search(g, c(0, 0), c(2, 4))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)
	require.False(s.T(), res.HasMeeting)
	require.Equal(s.T(), search.Unreachable, res.Reason)
	require.Equal(s.T(), "N/A", res.CostString())
	require.Len(s.T(), res.Forward, 6)
	require.Len(s.T(), res.Backward, 6)
}

// TestMeetingPointProperty checks the meeting point is in both orders and first in forward order.
func (s *BidirectionalSuite) TestMeetingPointProperty() {
	res, err := bidirectional.Search(s.ref, c(4, 0), c(0, 5),
		bidirectional.WithForwardOrder(gridgraph.ChainingOrder))
	require.NoError(s.T(), err)
	require.True(s.T(), res.HasMeeting)

	inBackward := make(map[gridgraph.Cell]bool, len(res.Backward))
	for _, cell := range res.Backward {
		inBackward[cell] = true
	}
	require.True(s.T(), inBackward[res.Meeting])
	for _, cell := range res.Forward {
		if inBackward[cell] {
			require.Equal(s.T(), res.Meeting, cell, "meeting point must be the first shared forward cell")
			break
		}
	}
}

// TestBackwardOrderAffectsTiesOnly shows a different backward order changes the route, not the cost.
func (s *BidirectionalSuite) TestBackwardOrderAffectsTiesOnly() {
	res, err := bidirectional.Search(s.ref, c(0, 0), c(4, 5),
		bidirectional.WithBackwardOrder(gridgraph.ChainingOrder))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9, res.Cost())
	require.NoError(s.T(), res.Path.Validate(s.ref))
}

// TestIdempotent runs the engine twice with identical inputs.
func (s *BidirectionalSuite) TestIdempotent() {
	a, err := bidirectional.Search(s.ref, c(4, 0), c(0, 2))
	require.NoError(s.T(), err)
	b, err := bidirectional.Search(s.ref, c(4, 0), c(0, 2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Path, b.Path)
	require.Equal(s.T(), a.Forward, b.Forward)
	require.Equal(s.T(), a.Backward, b.Backward)
}

// TestErrors covers nil grid, bad orders and cancellation.
func (s *BidirectionalSuite) TestErrors() {
	_, err := bidirectional.Search(nil, c(0, 0), c(0, 0))
	require.ErrorIs(s.T(), err, search.ErrGridNil)

	_, err = bidirectional.Search(s.ref, c(0, 0), c(4, 5),
		bidirectional.WithForwardOrder(gridgraph.Order{gridgraph.Up, gridgraph.Down}))
	require.ErrorIs(s.T(), err, gridgraph.ErrBadOrder)

	_, err = bidirectional.Search(s.ref, c(0, 0), c(4, 5),
		bidirectional.WithBackwardOrder(gridgraph.Order{}))
	require.ErrorIs(s.T(), err, gridgraph.ErrBadOrder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bidirectional.Search(s.ref, c(0, 0), c(4, 5), bidirectional.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestDebugLogging verifies progress records reach the supplied logger.
func (s *BidirectionalSuite) TestDebugLogging() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := bidirectional.Search(s.ref, c(0, 0), c(4, 5), bidirectional.WithLogger(logger))
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "frontiers meet")
	require.Contains(s.T(), buf.String(), "cost=9")
}

// TestRandomGridsMatchReference compares costs against an independent BFS on random grids.
func (s *BidirectionalSuite) TestRandomGridsMatchReference() {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		g := randomGrid(rng, 1+rng.Intn(8), 1+rng.Intn(8))
		start := c(rng.Intn(g.Rows()), rng.Intn(g.Cols()))
		goal := c(rng.Intn(g.Rows()), rng.Intn(g.Cols()))

		res, err := bidirectional.Search(g, start, goal)
		require.NoError(s.T(), err)

		want := referenceDistance(g, start, goal)
		if want < 0 {
			require.False(s.T(), res.Found, "grid %d:\n%v\n%v→%v", i, g, start, goal)
			continue
		}
		require.True(s.T(), res.Found, "grid %d:\n%v\n%v→%v", i, g, start, goal)
		require.Equal(s.T(), want, res.Cost(), "grid %d:\n%v\n%v→%v", i, g, start, goal)
		require.NoError(s.T(), res.Path.Validate(g))
		require.Equal(s.T(), start, res.Path[0])
		require.Equal(s.T(), goal, res.Path[len(res.Path)-1])
	}
}

func TestBidirectionalSuite(t *testing.T) {
	suite.Run(t, new(BidirectionalSuite))
}

// TestJoin_MissingMeeting guards Join against a meeting point absent from a tree.
func TestJoin_MissingMeeting(t *testing.T) {
	require.Empty(t, bidirectional.Join(nil, nil, c(0, 0)))
}
