package agent

import (
	"cmp"
	"fmt"
)

// Cell identifies a board square by row and column. Cells are plain
// values: two cells name the same square iff their coordinates are
// equal. Bounds are the caller's concern.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// Compare orders cells row-major.
func (c Cell) Compare(other Cell) int {
	if r := cmp.Compare(c.Row, other.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, other.Col)
}
