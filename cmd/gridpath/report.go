package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/scenario"
)

// cellJSON is a [row, col] pair.
type cellJSON [2]int

type stepJSON struct {
	Current cellJSON   `json:"current"`
	Path    []cellJSON `json:"path"`
}

type reportJSON struct {
	Name     string     `json:"name"`
	Engine   string     `json:"engine"`
	Found    bool       `json:"found"`
	Reason   string     `json:"reason"`
	Path     []cellJSON `json:"path"`
	Cost     *int       `json:"cost"`
	Expanded int        `json:"expanded"`
	Forward  []cellJSON `json:"forward,omitempty"`
	Backward []cellJSON `json:"backward,omitempty"`
	Meeting  *cellJSON  `json:"meeting,omitempty"`
	Trace    []stepJSON `json:"trace,omitempty"`
	Closed   []cellJSON `json:"closed,omitempty"`
}

func cells(cs []gridgraph.Cell) []cellJSON {
	if cs == nil {
		return nil
	}
	out := make([]cellJSON, len(cs))
	for i, c := range cs {
		out[i] = cellJSON{c.Row, c.Col}
	}
	return out
}

func toJSON(rep *scenario.Report, verbose bool) reportJSON {
	out := reportJSON{
		Name:     rep.Name,
		Engine:   rep.Engine,
		Found:    rep.Found,
		Reason:   rep.Reason.String(),
		Path:     cells(rep.Path),
		Expanded: rep.Expanded,
	}
	if out.Path == nil {
		out.Path = []cellJSON{}
	}
	if rep.Found {
		cost := rep.Cost()
		out.Cost = &cost
	}
	if rep.HasMeeting {
		m := cellJSON{rep.Meeting.Row, rep.Meeting.Col}
		out.Meeting = &m
	}
	if !verbose {
		return out
	}
	out.Forward = cells(rep.Forward)
	out.Backward = cells(rep.Backward)
	out.Closed = cells(rep.Closed)
	for _, st := range rep.Trace {
		out.Trace = append(out.Trace, stepJSON{
			Current: cellJSON{st.Current.Row, st.Current.Col},
			Path:    cells(st.Path),
		})
	}
	return out
}

// print writes rep as one JSON line or as a text block.
func (a *app) print(rep *scenario.Report) error {
	if a.jsonOut {
		return json.NewEncoder(a.stdout).Encode(toJSON(rep, a.verbose))
	}
	a.printText(rep)
	return nil
}

func (a *app) printText(rep *scenario.Report) {
	w := a.stdout
	fmt.Fprintf(w, "== %s (%s) ==\n", rep.Name, rep.Engine)
	if rep.Found {
		fmt.Fprintf(w, "Path found: %v\n", rep.Path)
	} else {
		fmt.Fprintf(w, "No path found (%s).\n", rep.Reason)
	}
	fmt.Fprintf(w, "Total cost of the path: %s\n", rep.CostString())

	if !a.verbose {
		return
	}
	fmt.Fprintf(w, "Cells expanded: %d\n", rep.Expanded)
	if rep.Forward != nil {
		fmt.Fprintf(w, "Forward visitation: %v\n", rep.Forward)
		fmt.Fprintf(w, "Backward visitation: %v\n", rep.Backward)
	}
	if rep.HasMeeting {
		fmt.Fprintf(w, "Meeting point: %v\n", rep.Meeting)
	}
	for i, st := range rep.Trace {
		fmt.Fprintf(w, "Step %d: at %v, path so far: %v\n", i, st.Current, st.Path)
	}
	if rep.Closed != nil {
		fmt.Fprintf(w, "Closed: %v\n", rep.Closed)
	}
}
