/*
Copyright © 2021 the geocontour authors.
This file is part of geocontour.

geocontour is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geocontour is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geocontour.  If not, see <http://www.gnu.org/licenses/>.
*/

package geocontour

import "github.com/ctessum/geom"

// Ternary corner states against a band [lower, upper).
const (
	cornerBelow uint8 = iota // value < lower
	cornerIn                 // lower <= value < upper
	cornerAbove              // value >= upper
)

func cornerState(v, lower, upper float64) uint8 {
	switch {
	case v >= upper:
		return cornerAbove
	case v >= lower:
		return cornerIn
	default:
		return cornerBelow
	}
}

// configCode packs the four ternary corner states into the cell
// configuration code, two bits per corner in the order top-left, top-right,
// bottom-right, bottom-left. Codes range over [0, 170]; 0 (all below) and
// 170 (all above) are empty cells.
func configCode(vtl, vtr, vbr, vbl, lower, upper float64) uint8 {
	return cornerState(vtl, lower, upper)<<6 |
		cornerState(vtr, lower, upper)<<4 |
		cornerState(vbr, lower, upper)<<2 |
		cornerState(vbl, lower, upper)
}

// emptyConfig reports whether code describes a cell the band does not touch.
func emptyConfig(code uint8) bool { return code == 0 || code == 170 }

// cell holds the not-yet-consumed directed edges of one grid cell for one
// band. Edges are kept in the builder's clockwise emission order in a flat
// list: there are at most eight, each start point has at most one outgoing
// edge, and the list keeps lookup and the choice of starting edge
// deterministic where a hash map would not.
type cell struct {
	edges []Edge
}

// cleared reports whether all edges of the cell have been consumed.
func (c *cell) cleared() bool { return len(c.edges) == 0 }

// takeStartingEdge removes and returns the first remaining edge in emission
// order, for use as the start of a new ring.
func (c *cell) takeStartingEdge() (Edge, bool) {
	if len(c.edges) == 0 {
		return Edge{}, false
	}
	e := c.edges[0]
	c.edges = c.edges[1:]
	return e, true
}

// takeChainFrom consumes and returns the chain of edges beginning at start:
// it repeatedly looks up the outgoing edge for the current point, removes
// it, and follows its end, stopping when the current point has no outgoing
// edge in this cell. The result may be empty. Point lookup is by
// bit-identical coordinates.
func (c *cell) takeChainFrom(start geom.Point) []Edge {
	var chain []Edge
	for {
		i := -1
		for j, e := range c.edges {
			if e.Start == start {
				i = j
				break
			}
		}
		if i < 0 {
			return chain
		}
		e := c.edges[i]
		c.edges = append(c.edges[:i], c.edges[i+1:]...)
		chain = append(chain, e)
		start = e.End
	}
}

// cellStore is the per-band store of cells, indexed by the (row, col) of
// each cell's top-left corner. Cells with an empty configuration are nil.
type cellStore struct {
	rows, cols int // cell dimensions: (grid rows - 1) x (grid cols - 1)
	cells      []*cell
}

func newCellStore(rows, cols int) *cellStore {
	return &cellStore{rows: rows, cols: cols, cells: make([]*cell, rows*cols)}
}

func (s *cellStore) put(row, col int, c *cell) {
	s.cells[row*s.cols+col] = c
}

// at returns the cell at (row, col), or nil when the position is outside
// the store or the cell is empty.
func (s *cellStore) at(row, col int) *cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return nil
	}
	return s.cells[row*s.cols+col]
}

// cleared reports whether the cell at (row, col) has no remaining edges.
// Absent cells are cleared by definition.
func (s *cellStore) cleared(row, col int) bool {
	c := s.at(row, col)
	return c == nil || c.cleared()
}
