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

// Side identifies one side of a grid cell.
type Side uint8

const (
	sideTop Side = iota
	sideRight
	sideBottom
	sideLeft
)

// Move tells the edge tracer which neighboring cell holds the continuation
// of a ring after an edge. moveStay means the continuation is within the
// same cell.
type Move uint8

const (
	moveStay Move = iota
	moveRight
	moveDown
	moveLeft
	moveUp
)

// delta returns the row and column offsets of the cell a Move points to,
// and reports whether the move crosses a cell boundary at all.
func (m Move) delta() (dr, dc int, cross bool) {
	switch m {
	case moveRight:
		return 0, 1, true
	case moveDown:
		return 1, 0, true
	case moveLeft:
		return 0, -1, true
	case moveUp:
		return -1, 0, true
	}
	return 0, 0, false
}

// Edge is a directed segment of a ring boundary within one cell. Start and
// End are materialized coordinates; Move directs the tracer to the cell
// holding the next edge of the same ring.
type Edge struct {
	Start, End geom.Point
	Move       Move
}

// cornerPoint is one slot of the eight-position buffer built around a cell.
// It is either actual, holding materialized coordinates, or deferred,
// describing a point on a side of the cell where the field crosses limit.
// Deferred points are materialized only after the buffer is compressed, so
// that two slots referring to the same in-band corner compare equal before
// any floating point interpolation happens.
type cornerPoint struct {
	pt     geom.Point // valid only when actual
	actual bool

	// deferred fields; zero when actual
	value float64 // corner value the slot refers to
	limit float64 // threshold the side crossing is interpolated to
	side  Side
}

func actualPoint(p geom.Point) cornerPoint {
	return cornerPoint{pt: p, actual: true}
}

func deferredPoint(value, limit float64, side Side) cornerPoint {
	return cornerPoint{value: value, limit: limit, side: side}
}

// equal compares all fields exactly. Comparison happens before
// materialization, so actual slots compare by bit-identical coordinates and
// deferred slots by (value, limit, side) identity.
func (c cornerPoint) equal(o cornerPoint) bool {
	return c == o
}
