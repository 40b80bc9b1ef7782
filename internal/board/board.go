package board

import (
	"math/rand/v2"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/agent"
)

/*
 * Board is the ground truth an agent plays against: a fixed grid of
 * hidden mines. The agent never inspects it directly; the game loop
 * reads neighbor counts from it and feeds them to the agent.
 */
type Board struct {
	height, width int
	grid          []bool /* real mine points */
}

// New places params.MineCount mines uniformly using the provided
// generator.
func New(params Params, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		height: params.Height,
		width:  params.Width,
		grid:   make([]bool, params.Height*params.Width),
	}
	placed := 0
	for placed < params.MineCount {
		if i := r.IntN(len(b.grid)); !b.grid[i] {
			b.grid[i] = true
			placed++
		}
	}
	return b, nil
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

func (b *Board) IsMine(cell agent.Cell) bool {
	return b.grid[cell.Row*b.width+cell.Col]
}

// NearbyMines returns the number of mines within one row and column
// of cell, not counting cell itself.
func (b *Board) NearbyMines(cell agent.Cell) (count int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			row, col := cell.Row+dr, cell.Col+dc
			if row >= 0 && row < b.height && col >= 0 && col < b.width &&
				b.grid[row*b.width+col] {
				count++
			}
		}
	}
	return count
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() (count int) {
	for _, mine := range b.grid {
		if mine {
			count++
		}
	}
	return count
}

// Mines returns every mined cell in row-major order.
func (b *Board) Mines() []agent.Cell {
	var mines []agent.Cell
	for row := range b.height {
		for col := range b.width {
			if b.grid[row*b.width+col] {
				mines = append(mines, agent.Cell{Row: row, Col: col})
			}
		}
	}
	return mines
}

// String renders the mine layout as text, one `X' per mine.
func (b *Board) String() string {
	var sb strings.Builder
	rule := strings.Repeat("--", b.width) + "-\n"
	for row := range b.height {
		sb.WriteString(rule)
		for col := range b.width {
			if b.grid[row*b.width+col] {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}
