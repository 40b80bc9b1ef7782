package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/agent"
)

func TestNewPlacesExactMineCount(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{
			name:   "8x8(8)",
			params: Params{Height: 8, Width: 8, MineCount: 8},
		},
		{
			name:   "16x16(40)",
			params: Params{Height: 16, Width: 16, MineCount: 40},
		},
		{
			name:   "no mines",
			params: Params{Height: 4, Width: 4, MineCount: 0},
		},
		{
			name:   "all mines",
			params: Params{Height: 2, Width: 2, MineCount: 4},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			b, err := New(test.params, r)
			require.NoError(t, err)
			assert.Equal(t, test.params.MineCount, b.MineCount())
			assert.Len(t, b.Mines(), test.params.MineCount)
		})
	}
}

func TestNewRejectsBadParams(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	_, err := New(Params{Height: 0, Width: 8, MineCount: 1}, r)
	assert.Error(t, err)

	_, err = New(Params{Height: 2, Width: 2, MineCount: 5}, r)
	assert.Error(t, err)
}

func TestNearbyMines(t *testing.T) {
	/*
	 * 3x3 layout:
	 *   X . .
	 *   . . X
	 *   . . .
	 */
	b := &Board{
		height: 3,
		width:  3,
		grid: []bool{
			true, false, false,
			false, false, true,
			false, false, false,
		},
	}

	tests := []struct {
		cell agent.Cell
		want int
	}{
		{agent.Cell{Row: 0, Col: 0}, 0}, // the cell itself never counts
		{agent.Cell{Row: 0, Col: 1}, 2},
		{agent.Cell{Row: 1, Col: 1}, 2},
		{agent.Cell{Row: 2, Col: 2}, 1},
		{agent.Cell{Row: 2, Col: 0}, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, b.NearbyMines(test.cell),
			"nearby mines of %v", test.cell)
	}
}

func TestIsMine(t *testing.T) {
	b := &Board{
		height: 2,
		width:  2,
		grid:   []bool{false, true, false, false},
	}
	assert.True(t, b.IsMine(agent.Cell{Row: 0, Col: 1}))
	assert.False(t, b.IsMine(agent.Cell{Row: 1, Col: 1}))
}

func TestBoardString(t *testing.T) {
	b := &Board{
		height: 2,
		width:  2,
		grid:   []bool{false, true, false, false},
	}
	want := "-----\n" +
		"| |X|\n" +
		"-----\n" +
		"| | |\n" +
		"-----\n"
	assert.Equal(t, want, b.String())
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr bool
	}{
		{
			name:  "valid",
			query: "height=8&width=8&mines=8",
			want:  Params{Height: 8, Width: 8, MineCount: 8},
		},
		{
			name:  "unknown keys ignored",
			query: "height=4&width=4&mines=2&unique=true",
			want:  Params{Height: 4, Width: 4, MineCount: 2},
		},
		{
			name:    "missing field",
			query:   "height=8&width=8",
			wantErr: true,
		},
		{
			name:    "too many mines",
			query:   "height=2&width=2&mines=9",
			wantErr: true,
		},
		{
			name:    "zero dimensions",
			query:   "height=0&width=8&mines=1",
			wantErr: true,
		},
		{
			name:    "not a query string",
			query:   "height=8;width=8",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := ParseParams(test.query)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, params)
		})
	}
}
