package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/informed"
)

// Scenario is a validated Config resolved into engine inputs.
// Nil orders mean "engine default".
type Scenario struct {
	Name          string
	Grid          *gridgraph.Grid
	Start, Goal   gridgraph.Cell
	Engine        string
	ForwardOrder  gridgraph.Order
	BackwardOrder gridgraph.Order
	Order         gridgraph.Order
	HeuristicName string
	Heuristic     informed.Heuristic
}

// Build validates c and resolves its grid, endpoints, orders and heuristic.
func (c Config) Build() (*Scenario, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	g, err := c.grid()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, c.Name, err)
	}
	h, err := informed.ParseHeuristic(c.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	sc := &Scenario{
		Name:          c.Name,
		Grid:          g,
		Start:         gridgraph.C(c.Start[0], c.Start[1]),
		Goal:          gridgraph.C(c.Goal[0], c.Goal[1]),
		Engine:        c.Engine,
		HeuristicName: c.Heuristic,
		Heuristic:     h,
	}
	// Validate already parsed the orders once
	sc.ForwardOrder, _ = parseOptionalOrder(c.ForwardOrder)
	sc.BackwardOrder, _ = parseOptionalOrder(c.BackwardOrder)
	sc.Order, _ = parseOptionalOrder(c.Order)
	return sc, nil
}

func (c Config) grid() (*gridgraph.Grid, error) {
	if len(c.Grid) > 0 {
		return gridgraph.NewGrid(c.Grid)
	}
	return gridgraph.ParseGrid(c.GridText)
}

func parseOptionalOrder(names []string) (gridgraph.Order, error) {
	if len(names) == 0 {
		return nil, nil
	}
	return gridgraph.ParseOrder(names)
}

// Reference is the 5×6 maze from (0,0) to (4,5); every engine finds cost 9.
func Reference() Config {
	cfg := Default()
	cfg.Name = "reference"
	cfg.Grid = [][]int{
		{0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 1, 0, 1, 0, 0},
		{0, 1, 0, 0, 1, 0},
		{0, 0, 0, 0, 1, 0},
	}
	cfg.Start = []int{0, 0}
	cfg.Goal = []int{4, 5}
	return cfg
}

// Walled is a 3×5 grid split by a full column of obstacles; no path exists.
func Walled() Config {
	cfg := Default()
	cfg.Name = "walled"
	cfg.Grid = [][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	}
	cfg.Start = []int{0, 0}
	cfg.Goal = []int{2, 4}
	return cfg
}

// BuiltIns returns the named built-in scenarios.
func BuiltIns() map[string]Config {
	return map[string]Config{
		"reference": Reference(),
		"walled":    Walled(),
	}
}
