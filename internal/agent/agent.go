package agent

import (
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

/*
 * Agent plays Minesweeper by propositional inference. It owns three
 * monotonic cell classifications (moves made, proven safes, proven
 * mines) and a knowledge base of live constraints. It never reads
 * the board: everything it knows arrives through AddKnowledge.
 */
type Agent struct {
	height, width int

	movesMade cellSet
	safes     cellSet
	mines     cellSet

	knowledge []*Constraint

	r *rand.Rand
}

func New(height, width int, r *rand.Rand) *Agent {
	return &Agent{
		height:    height,
		width:     width,
		movesMade: make(cellSet),
		safes:     make(cellSet),
		mines:     make(cellSet),
		r:         r,
	}
}

// Mines returns the cells proven to contain mines, in row-major order.
func (a *Agent) Mines() []Cell {
	return a.mines.sorted()
}

// Safes returns the cells proven safe, in row-major order.
func (a *Agent) Safes() []Cell {
	return a.safes.sorted()
}

// MovesMade returns the cells already played, in row-major order.
func (a *Agent) MovesMade() []Cell {
	return a.movesMade.sorted()
}

/*
 * MarkMine records cell as a proven mine and removes it from every
 * live constraint. Any follow-up deduction this exposes is picked up
 * by the next fixpoint pass, not resolved here.
 */
func (a *Agent) MarkMine(cell Cell) {
	a.mines.add(cell)
	for _, c := range a.knowledge {
		c.MarkMine(cell)
	}
}

// MarkSafe records cell as proven safe and removes it from every live
// constraint. Same deferred-deduction note as MarkMine.
func (a *Agent) MarkSafe(cell Cell) {
	a.safes.add(cell)
	for _, c := range a.knowledge {
		c.MarkSafe(cell)
	}
}

/*
 * AddKnowledge ingests a freshly revealed safe cell together with the
 * board-reported count of mines among its neighbors, then deduces to
 * a fixpoint. The caller must only report cells the board confirmed
 * safe, with truthful counts; the engine does not defend against a
 * lying board.
 */
func (a *Agent) AddKnowledge(cell Cell, count int) {
	a.movesMade.add(cell)
	a.MarkSafe(cell)

	/*
	 * Build a constraint over the not-yet-classified neighbors.
	 * Known safes contribute nothing; each known mine is already
	 * accounted for and discounts the reported count.
	 */
	neighbors := make(cellSet)
	for _, n := range a.neighbors(cell) {
		if a.safes.has(n) {
			continue
		}
		if a.mines.has(n) {
			count--
			continue
		}
		neighbors.add(n)
	}
	a.insert(&Constraint{cells: neighbors, count: count})

	/*
	 * Main deductive loop. Each pass harvests cells that some
	 * constraint now settles, propagates them through the whole
	 * knowledge base, discards exhausted constraints and derives
	 * subset-difference constraints. Repeat until a full pass
	 * changes nothing.
	 */
	for {
		doneSomething := false

		mineCells := make(cellSet)
		safeCells := make(cellSet)
		for _, c := range a.knowledge {
			for _, m := range c.KnownMines() {
				mineCells.add(m)
			}
			for _, s := range c.KnownSafes() {
				safeCells.add(s)
			}
		}

		for _, m := range mineCells.sorted() {
			if !a.mines.has(m) {
				Log.WithField("cell", m).Debug("deduced mine")
				a.MarkMine(m)
				doneSomething = true
			}
		}
		for _, s := range safeCells.sorted() {
			if !a.safes.has(s) {
				Log.WithField("cell", s).Debug("deduced safe")
				a.MarkSafe(s)
				doneSomething = true
			}
		}

		/*
		 * Exhausted constraints carry no information. Drop them
		 * before pairing so they cannot spawn trivial subset
		 * relations.
		 */
		a.knowledge = slices.DeleteFunc(a.knowledge, (*Constraint).resolved)

		/*
		 * Subset-difference derivation: whenever one constraint's
		 * cells are contained in another's, the cells unique to the
		 * larger one hold exactly the difference of the two counts.
		 * Freshly derived constraints join the pairing on the next
		 * pass.
		 */
		for _, sub := range a.knowledge {
			for _, super := range a.knowledge {
				if sub == super || !sub.cells.subsetOf(super.cells) {
					continue
				}
				diff := &Constraint{
					cells: super.cells.clone(),
					count: super.count - sub.count,
				}
				for c := range sub.cells {
					diff.cells.del(c)
				}
				if a.insert(diff) {
					Log.WithField("constraint", diff).Debug("derived constraint")
					doneSomething = true
				}
			}
		}

		if !doneSomething {
			break
		}
	}

	Log.WithFields(logrus.Fields{
		"cell":      cell,
		"count":     count,
		"knowledge": len(a.knowledge),
		"safes":     len(a.safes),
		"mines":     len(a.mines),
	}).Debug("knowledge added")
}

/*
 * insert adds c to the knowledge base unless a structurally equal
 * constraint is already present. Reports whether the base changed.
 */
func (a *Agent) insert(c *Constraint) bool {
	for _, k := range a.knowledge {
		if k.Equal(c) {
			return false
		}
	}
	a.knowledge = append(a.knowledge, c)
	return true
}

// neighbors returns the in-bounds cells within one row and column of
// cell, excluding cell itself.
func (a *Agent) neighbors(cell Cell) []Cell {
	cells := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: cell.Row + dr, Col: cell.Col + dc}
			if n.Row >= 0 && n.Row < a.height && n.Col >= 0 && n.Col < a.width {
				cells = append(cells, n)
			}
		}
	}
	return cells
}

/*
 * SafeMove returns a cell proven safe that has not been played yet,
 * preferring the first such cell in row-major order. It never
 * mutates agent state: repeated calls without an intervening
 * AddKnowledge return the same cell.
 */
func (a *Agent) SafeMove() (Cell, bool) {
	var (
		best  Cell
		found bool
	)
	for s := range a.safes {
		if a.movesMade.has(s) {
			continue
		}
		if !found || s.Compare(best) < 0 {
			best, found = s, true
		}
	}
	return best, found
}

/*
 * RandomMove returns a cell drawn uniformly from the injected
 * generator among the squares that are neither played nor proven
 * mines. Reports false once the whole board is played or mined out.
 */
func (a *Agent) RandomMove() (Cell, bool) {
	var candidates []Cell
	for row := range a.height {
		for col := range a.width {
			cell := Cell{Row: row, Col: col}
			if !a.movesMade.has(cell) && !a.mines.has(cell) {
				candidates = append(candidates, cell)
			}
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[a.r.IntN(len(candidates))], true
}
