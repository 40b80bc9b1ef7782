package agent

import (
	"fmt"
	"strings"
)

/*
 * A constraint asserts that exactly `count' of the cells in `cells'
 * are mines. Constraints start out as the unresolved neighborhood of
 * a revealed square and shrink as individual cells get classified;
 * once the cell set is empty the constraint carries no information
 * and the engine discards it.
 */
type Constraint struct {
	cells cellSet
	count int
}

func NewConstraint(cells []Cell, count int) *Constraint {
	return &Constraint{cells: newCellSet(cells...), count: count}
}

func (c Constraint) String() string {
	parts := make([]string, 0, len(c.cells))
	for _, cell := range c.cells.sorted() {
		parts = append(parts, cell.String())
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, " "), c.count)
}

// Cells returns the unresolved cells in row-major order.
func (c *Constraint) Cells() []Cell {
	return c.cells.sorted()
}

// Count returns the number of mines among the unresolved cells.
func (c *Constraint) Count() int {
	return c.count
}

/*
 * KnownMines returns every cell of the constraint when all of them
 * must be mines, i.e. the mine count equals the number of remaining
 * cells. The count > 0 guard keeps an exhausted {} = 0 constraint
 * from reporting its empty cell set as "all mines".
 */
func (c *Constraint) KnownMines() []Cell {
	if c.count > 0 && c.count == len(c.cells) {
		return c.cells.sorted()
	}
	return nil
}

// KnownSafes returns every cell of the constraint when none of them
// can be a mine, i.e. the mine count is zero.
func (c *Constraint) KnownSafes() []Cell {
	if c.count == 0 {
		return c.cells.sorted()
	}
	return nil
}

// MarkMine resolves cell as a mine: it leaves the constraint and
// takes one of the counted mines with it. No-op if cell is not part
// of the constraint.
func (c *Constraint) MarkMine(cell Cell) {
	if c.cells.has(cell) {
		c.cells.del(cell)
		c.count--
	}
}

// MarkSafe resolves cell as safe: it leaves the constraint and the
// mine count stands. No-op if cell is not part of the constraint.
func (c *Constraint) MarkSafe(cell Cell) {
	if c.cells.has(cell) {
		c.cells.del(cell)
	}
}

// Equal reports structural equality: same cell set, same count.
func (c *Constraint) Equal(other *Constraint) bool {
	return c.count == other.count && c.cells.equal(other.cells)
}

func (c *Constraint) resolved() bool {
	return len(c.cells) == 0
}
