package forwardchain

import (
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Fact states that Cell is reachable from the start via Path (start first, Cell last).
// Facts are never mutated after they are derived.
type Fact struct {
	Cell gridgraph.Cell
	Path gridgraph.Path
}

// Axiom is the initial fact: the start cell is reachable via the one-cell path.
func Axiom(start gridgraph.Cell) Fact {
	return Fact{Cell: start, Path: gridgraph.Path{start}}
}

// Extend derives the fact for next from premise, with an independent copy of the path.
func (f Fact) Extend(next gridgraph.Cell) Fact {
	p := make(gridgraph.Path, len(f.Path), len(f.Path)+1)
	copy(p, f.Path)
	return Fact{Cell: next, Path: append(p, next)}
}

// KnowledgeBase holds the set of cells already proven reachable.
// Each cell is asserted at most once.
type KnowledgeBase struct {
	known map[gridgraph.Cell]bool
}

// NewKnowledgeBase returns an empty knowledge base sized for hint cells.
func NewKnowledgeBase(hint int) *KnowledgeBase {
	return &KnowledgeBase{known: make(map[gridgraph.Cell]bool, hint)}
}

// Known reports whether c has been asserted.
func (kb *KnowledgeBase) Known(c gridgraph.Cell) bool { return kb.known[c] }

// Assert records f.Cell as reachable. It returns false if the cell was already known.
func (kb *KnowledgeBase) Assert(f Fact) bool {
	if kb.known[f.Cell] {
		return false
	}
	kb.known[f.Cell] = true
	return true
}

// Len returns the number of asserted cells.
func (kb *KnowledgeBase) Len() int { return len(kb.known) }

// Rule derives new facts from a proven premise.
type Rule interface {
	// Name labels the rule in logs and hooks.
	Name() string
	// Infer returns the facts that follow from premise given what kb already knows.
	Infer(kb *KnowledgeBase, premise Fact) []Fact
}

// MoveRule encodes "a free, unknown neighbor of a reachable cell is reachable".
// Neighbors are proposed in Order; each proposal is validated against the grid
// and the knowledge base before a fact is derived.
type MoveRule struct {
	Grid  *gridgraph.Grid
	Order gridgraph.Order
}

// Name implements Rule.
func (MoveRule) Name() string { return "move" }

// Infer implements Rule.
func (r MoveRule) Infer(kb *KnowledgeBase, premise Fact) []Fact {
	var derived []Fact
	for _, next := range frontier.Candidates(r.Grid, premise.Cell, r.Order) {
		if kb.Known(next) {
			continue
		}
		derived = append(derived, premise.Extend(next))
	}
	return derived
}
