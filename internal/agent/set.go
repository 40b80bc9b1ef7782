package agent

import (
	"maps"
	"slices"
)

type cellSet map[Cell]struct{}

func newCellSet(cells ...Cell) cellSet {
	s := make(cellSet, len(cells))
	for _, c := range cells {
		s.add(c)
	}
	return s
}

func (s cellSet) add(c Cell)      { s[c] = struct{}{} }
func (s cellSet) del(c Cell)      { delete(s, c) }
func (s cellSet) has(c Cell) bool { _, ok := s[c]; return ok }

func (s cellSet) equal(other cellSet) bool {
	return maps.Equal(s, other)
}

func (s cellSet) subsetOf(other cellSet) bool {
	if len(s) > len(other) {
		return false
	}
	for c := range s {
		if !other.has(c) {
			return false
		}
	}
	return true
}

func (s cellSet) clone() cellSet {
	return maps.Clone(s)
}

// sorted returns the cells in row-major order.
func (s cellSet) sorted() []Cell {
	cells := slices.Collect(maps.Keys(s))
	slices.SortFunc(cells, Cell.Compare)
	return cells
}
