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

// Saddle cells: configurations whose in-band region is ambiguous from the
// corners alone. The cell average decides between the split form, two
// separate regions in opposite corners, and the connected form spanning the
// cell. The double saddles (34 and 136) can leave two disjoint edge chains
// in one cell; the tracer keeps draining a cell until its edge list is
// empty, so both regions are picked up.

// Code 153 (states 2121).
func saddle153(b *cellBuilder) {
	avg := b.average()
	switch {
	case avg >= b.upper:
		p0 := b.interpSide(b.upper, sideRight)
		p1 := b.interpSide(b.upper, sideTop)
		if !b.top {
			b.edge(p0, p1, moveUp)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.top {
			b.edge(p1, b.tr, moveRight)
		}
		if b.right {
			b.edge(b.tr, p0, moveStay)
		}

		p3 := b.interpSide(b.upper, sideLeft)
		p4 := b.interpSide(b.upper, sideBottom)
		if !b.bottom {
			b.edge(p3, p4, moveDown)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.bottom {
			b.edge(p4, b.bl, moveLeft)
		}
		if b.left {
			b.edge(b.bl, p3, moveStay)
		}
	case avg >= b.lower:
		p0 := b.interpSide(b.upper, sideRight)
		p1 := b.interpSide(b.upper, sideBottom)
		p3 := b.interpSide(b.upper, sideLeft)
		p4 := b.interpSide(b.upper, sideTop)
		if !b.bottom {
			b.edge(p0, p1, moveDown)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.bottom {
			b.edge(p1, b.bl, moveLeft)
		}
		if b.left {
			b.edge(b.bl, p3, moveStay)
		}
		if !b.top {
			b.edge(p3, p4, moveUp)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.top {
			b.edge(p4, b.tr, moveRight)
		}
		if b.right {
			b.edge(b.tr, p0, moveStay)
		}
	}
}

// Code 102 (states 1212).
func saddle102(b *cellBuilder) {
	avg := b.average()
	switch {
	case avg >= b.upper:
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideLeft)
		if !b.left {
			b.edge(p0, p1, moveLeft)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.left {
			b.edge(p1, b.tl, moveUp)
		}
		if b.top {
			b.edge(b.tl, p0, moveStay)
		}

		p3 := b.interpSide(b.upper, sideBottom)
		p4 := b.interpSide(b.upper, sideRight)
		if !b.right {
			b.edge(p3, p4, moveRight)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.right {
			b.edge(p4, b.br, moveDown)
		}
		if b.bottom {
			b.edge(b.br, p3, moveStay)
		}
	case avg >= b.lower:
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideRight)
		p3 := b.interpSide(b.upper, sideBottom)
		p4 := b.interpSide(b.upper, sideLeft)
		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, b.br, moveDown)
		}
		if b.bottom {
			b.edge(b.br, p3, moveStay)
		}
		if !b.left {
			b.edge(p3, p4, moveLeft)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.left {
			b.edge(p4, b.tl, moveUp)
		}
		if b.top {
			b.edge(b.tl, p0, moveStay)
		}
	}
}

// Code 68 (states 1010).
func saddle68(b *cellBuilder) {
	avg := b.average()
	switch {
	case avg < b.lower:
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideLeft)
		if !b.left {
			b.edge(p0, p1, moveLeft)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.left {
			b.edge(p1, b.tl, moveUp)
		}
		if b.top {
			b.edge(b.tl, p0, moveStay)
		}

		p3 := b.interpSide(b.lower, sideBottom)
		p4 := b.interpSide(b.lower, sideRight)
		if !b.right {
			b.edge(p3, p4, moveRight)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.right {
			b.edge(p4, b.br, moveDown)
		}
		if b.bottom {
			b.edge(b.br, p3, moveStay)
		}
	case avg < b.upper:
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideRight)
		p3 := b.interpSide(b.lower, sideBottom)
		p4 := b.interpSide(b.lower, sideLeft)
		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, b.br, moveDown)
		}
		if b.bottom {
			b.edge(b.br, p3, moveStay)
		}
		if !b.left {
			b.edge(p3, p4, moveLeft)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.left {
			b.edge(p4, b.tl, moveUp)
		}
		if b.top {
			b.edge(b.tl, p0, moveStay)
		}
	}
}

// Code 17 (states 0101).
func saddle17(b *cellBuilder) {
	avg := b.average()
	switch {
	case avg < b.lower:
		p0 := b.interpSide(b.lower, sideRight)
		p1 := b.interpSide(b.lower, sideTop)
		if !b.top {
			b.edge(p0, p1, moveUp)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.top {
			b.edge(p1, b.tr, moveRight)
		}
		if b.right {
			b.edge(b.tr, p0, moveStay)
		}

		p3 := b.interpSide(b.lower, sideLeft)
		p4 := b.interpSide(b.lower, sideBottom)
		if !b.bottom {
			b.edge(p3, p4, moveDown)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.bottom {
			b.edge(p4, b.bl, moveLeft)
		}
		if b.left {
			b.edge(b.bl, p3, moveStay)
		}
	case avg < b.upper:
		p0 := b.interpSide(b.lower, sideRight)
		p1 := b.interpSide(b.lower, sideBottom)
		p3 := b.interpSide(b.lower, sideLeft)
		p4 := b.interpSide(b.lower, sideTop)
		if !b.bottom {
			b.edge(p0, p1, moveDown)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.bottom {
			b.edge(p1, b.bl, moveLeft)
		}
		if b.left {
			b.edge(b.bl, p3, moveStay)
		}
		if !b.top {
			b.edge(p3, p4, moveUp)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.top {
			b.edge(p4, b.tr, moveRight)
		}
		if b.right {
			b.edge(b.tr, p0, moveStay)
		}
	}
}

// Code 136 (states 2020), a double saddle: both thresholds cross every
// side. The split forms leave two disjoint chains in the cell.
func saddle136(b *cellBuilder) {
	avg := b.average()
	switch {
	case avg < b.lower:
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideLeft)
		p2 := b.interpSide(b.upper, sideLeft)
		p3 := b.interpSide(b.upper, sideTop)
		if !b.left {
			b.edge(p0, p1, moveLeft)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.left {
			b.edge(p1, p2, moveStay)
		}
		if !b.top {
			b.edge(p2, p3, moveUp)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.top {
			b.edge(p3, p0, moveStay)
		}

		p4 := b.interpSide(b.upper, sideRight)
		p5 := b.interpSide(b.upper, sideBottom)
		p6 := b.interpSide(b.lower, sideBottom)
		p7 := b.interpSide(b.lower, sideRight)
		if !b.bottom {
			b.edge(p4, p5, moveDown)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.bottom {
			b.edge(p5, p6, moveStay)
		}
		if !b.right {
			b.edge(p6, p7, moveRight)
		} else {
			b.edge(p6, p7, moveStay)
		}
		if b.right {
			b.edge(p7, p4, moveStay)
		}
	case avg >= b.upper:
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideRight)
		p2 := b.interpSide(b.upper, sideRight)
		p3 := b.interpSide(b.upper, sideTop)
		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.top {
			b.edge(p2, p3, moveUp)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.top {
			b.edge(p3, p0, moveStay)
		}

		p4 := b.interpSide(b.lower, sideBottom)
		p5 := b.interpSide(b.lower, sideLeft)
		p6 := b.interpSide(b.upper, sideLeft)
		p7 := b.interpSide(b.upper, sideBottom)
		if !b.left {
			b.edge(p4, p5, moveLeft)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.left {
			b.edge(p5, p6, moveStay)
		}
		if !b.bottom {
			b.edge(p6, p7, moveDown)
		} else {
			b.edge(p6, p7, moveStay)
		}
		if b.bottom {
			b.edge(p7, p4, moveStay)
		}
	default:
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideRight)
		p2 := b.interpSide(b.upper, sideRight)
		p3 := b.interpSide(b.upper, sideBottom)
		p4 := b.interpSide(b.lower, sideBottom)
		p5 := b.interpSide(b.lower, sideLeft)
		p6 := b.interpSide(b.upper, sideLeft)
		p7 := b.interpSide(b.upper, sideTop)
		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.bottom {
			b.edge(p2, p3, moveDown)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.bottom {
			b.edge(p3, p4, moveStay)
		}
		if !b.left {
			b.edge(p4, p5, moveLeft)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.left {
			b.edge(p5, p6, moveStay)
		}
		if !b.top {
			b.edge(p6, p7, moveUp)
		} else {
			b.edge(p6, p7, moveStay)
		}
		if b.top {
			b.edge(p7, p0, moveStay)
		}
	}
}

// Code 34 (states 0202), the mirror double saddle of 136.
func saddle34(b *cellBuilder) {
	avg := b.average()
	switch {
	case avg >= b.upper:
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideLeft)
		p2 := b.interpSide(b.lower, sideLeft)
		p3 := b.interpSide(b.lower, sideTop)
		if !b.left {
			b.edge(p0, p1, moveLeft)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.left {
			b.edge(p1, p2, moveStay)
		}
		if !b.top {
			b.edge(p2, p3, moveUp)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.top {
			b.edge(p3, p0, moveStay)
		}

		p4 := b.interpSide(b.lower, sideRight)
		p5 := b.interpSide(b.lower, sideBottom)
		p6 := b.interpSide(b.upper, sideBottom)
		p7 := b.interpSide(b.upper, sideRight)
		if !b.bottom {
			b.edge(p4, p5, moveDown)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.bottom {
			b.edge(p5, p6, moveStay)
		}
		if !b.right {
			b.edge(p6, p7, moveRight)
		} else {
			b.edge(p6, p7, moveStay)
		}
		if b.right {
			b.edge(p7, p4, moveStay)
		}
	case avg < b.lower:
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideRight)
		p2 := b.interpSide(b.lower, sideRight)
		p3 := b.interpSide(b.lower, sideTop)
		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.top {
			b.edge(p2, p3, moveUp)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.top {
			b.edge(p3, p0, moveStay)
		}

		p4 := b.interpSide(b.upper, sideBottom)
		p5 := b.interpSide(b.upper, sideLeft)
		p6 := b.interpSide(b.lower, sideLeft)
		p7 := b.interpSide(b.lower, sideBottom)
		if !b.left {
			b.edge(p4, p5, moveLeft)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.left {
			b.edge(p5, p6, moveStay)
		}
		if !b.bottom {
			b.edge(p6, p7, moveDown)
		} else {
			b.edge(p6, p7, moveStay)
		}
		if b.bottom {
			b.edge(p7, p4, moveStay)
		}
	default:
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideRight)
		p2 := b.interpSide(b.lower, sideRight)
		p3 := b.interpSide(b.lower, sideBottom)
		p4 := b.interpSide(b.upper, sideBottom)
		p5 := b.interpSide(b.upper, sideLeft)
		p6 := b.interpSide(b.lower, sideLeft)
		p7 := b.interpSide(b.lower, sideTop)
		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.bottom {
			b.edge(p2, p3, moveDown)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.bottom {
			b.edge(p3, p4, moveStay)
		}
		if !b.left {
			b.edge(p4, p5, moveLeft)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.left {
			b.edge(p5, p6, moveStay)
		}
		if !b.top {
			b.edge(p6, p7, moveUp)
		} else {
			b.edge(p6, p7, moveStay)
		}
		if b.top {
			b.edge(p7, p0, moveStay)
		}
	}
}

// Code 152 (states 2120), a seven-point saddle.
func saddle152(b *cellBuilder) {
	avg := b.average()
	if avg < b.lower || avg >= b.upper {
		p0 := b.interpSide(b.upper, sideRight)
		p1 := b.interpSide(b.upper, sideTop)
		if !b.top {
			b.edge(p0, p1, moveUp)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.top {
			b.edge(p1, b.tr, moveRight)
		}
		if b.right {
			b.edge(b.tr, p0, moveStay)
		}

		p3 := b.interpSide(b.lower, sideBottom)
		p4 := b.interpSide(b.lower, sideLeft)
		p5 := b.interpSide(b.upper, sideLeft)
		p6 := b.interpSide(b.upper, sideBottom)
		if !b.left {
			b.edge(p3, p4, moveLeft)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.left {
			b.edge(p4, p5, moveStay)
		}
		if !b.bottom {
			b.edge(p5, p6, moveDown)
		} else {
			b.edge(p5, p6, moveStay)
		}
		if b.bottom {
			b.edge(p6, p3, moveStay)
		}
	} else {
		p0 := b.interpSide(b.upper, sideRight)
		p1 := b.interpSide(b.upper, sideBottom)
		p2 := b.interpSide(b.lower, sideBottom)
		p3 := b.interpSide(b.lower, sideLeft)
		p4 := b.interpSide(b.upper, sideLeft)
		p5 := b.interpSide(b.upper, sideTop)

		if !b.bottom {
			b.edge(p0, p1, moveDown)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.bottom {
			b.edge(p1, p2, moveStay)
		}
		if !b.left {
			b.edge(p2, p3, moveLeft)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.left {
			b.edge(p3, p4, moveStay)
		}
		if !b.top {
			b.edge(p4, p5, moveUp)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.top {
			b.edge(p5, b.tr, moveRight)
		}
		if b.right {
			b.edge(b.tr, p0, moveStay)
		}
	}
}

// Code 18 (states 0102), a seven-point saddle.
func saddle18(b *cellBuilder) {
	avg := b.average()
	if avg < b.lower || avg >= b.upper {
		p0 := b.interpSide(b.lower, sideRight)
		p1 := b.interpSide(b.lower, sideTop)
		if !b.top {
			b.edge(p0, p1, moveUp)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.top {
			b.edge(p1, b.tr, moveRight)
		}
		if b.right {
			b.edge(b.tr, p0, moveStay)
		}

		p3 := b.interpSide(b.upper, sideBottom)
		p4 := b.interpSide(b.upper, sideLeft)
		p5 := b.interpSide(b.lower, sideLeft)
		p6 := b.interpSide(b.lower, sideBottom)
		if !b.left {
			b.edge(p3, p4, moveLeft)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.left {
			b.edge(p4, p5, moveStay)
		}
		if !b.bottom {
			b.edge(p5, p6, moveDown)
		} else {
			b.edge(p5, p6, moveStay)
		}
		if b.bottom {
			b.edge(p6, p3, moveStay)
		}
	} else {
		p0 := b.interpSide(b.lower, sideRight)
		p1 := b.interpSide(b.lower, sideBottom)
		p2 := b.interpSide(b.upper, sideBottom)
		p3 := b.interpSide(b.upper, sideLeft)
		p4 := b.interpSide(b.lower, sideLeft)
		p5 := b.interpSide(b.lower, sideTop)

		if !b.bottom {
			b.edge(p0, p1, moveDown)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.bottom {
			b.edge(p1, p2, moveStay)
		}
		if !b.left {
			b.edge(p2, p3, moveLeft)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.left {
			b.edge(p3, p4, moveStay)
		}
		if !b.top {
			b.edge(p4, p5, moveUp)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.top {
			b.edge(p5, b.tr, moveRight)
		}
		if b.right {
			b.edge(b.tr, p0, moveStay)
		}
	}
}

// Code 137 (states 2021), a seven-point saddle.
func saddle137(b *cellBuilder) {
	avg := b.average()
	if avg < b.lower || avg >= b.upper {
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideRight)
		p2 := b.interpSide(b.upper, sideRight)
		p3 := b.interpSide(b.upper, sideTop)
		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.top {
			b.edge(p2, p3, moveUp)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.top {
			b.edge(p3, p0, moveStay)
		}

		p4 := b.interpSide(b.upper, sideLeft)
		p5 := b.interpSide(b.upper, sideBottom)
		if !b.bottom {
			b.edge(p4, p5, moveDown)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.bottom {
			b.edge(p5, b.bl, moveLeft)
		}
		if b.left {
			b.edge(b.bl, p4, moveStay)
		}
	} else {
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideRight)
		p2 := b.interpSide(b.upper, sideRight)
		p3 := b.interpSide(b.upper, sideBottom)
		p5 := b.interpSide(b.upper, sideLeft)
		p6 := b.interpSide(b.upper, sideTop)

		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.bottom {
			b.edge(p2, p3, moveDown)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.bottom {
			b.edge(p3, b.bl, moveLeft)
		}
		if b.left {
			b.edge(b.bl, p5, moveStay)
		}
		if !b.top {
			b.edge(p5, p6, moveUp)
		} else {
			b.edge(p5, p6, moveStay)
		}
		if b.top {
			b.edge(p6, p0, moveStay)
		}
	}
}

// Code 33 (states 0201), a seven-point saddle.
func saddle33(b *cellBuilder) {
	avg := b.average()
	if avg < b.lower || avg >= b.upper {
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideRight)
		p2 := b.interpSide(b.lower, sideRight)
		p3 := b.interpSide(b.lower, sideTop)
		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.top {
			b.edge(p2, p3, moveUp)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.top {
			b.edge(p3, p0, moveStay)
		}

		p4 := b.interpSide(b.lower, sideLeft)
		p5 := b.interpSide(b.lower, sideBottom)
		if !b.bottom {
			b.edge(p4, p5, moveDown)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.bottom {
			b.edge(p5, b.bl, moveLeft)
		}
		if b.left {
			b.edge(b.bl, p4, moveStay)
		}
	} else {
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideRight)
		p2 := b.interpSide(b.lower, sideRight)
		p3 := b.interpSide(b.lower, sideBottom)
		p5 := b.interpSide(b.lower, sideLeft)
		p6 := b.interpSide(b.lower, sideTop)

		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.bottom {
			b.edge(p2, p3, moveDown)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.bottom {
			b.edge(p3, b.bl, moveLeft)
		}
		if b.left {
			b.edge(b.bl, p5, moveStay)
		}
		if !b.top {
			b.edge(p5, p6, moveUp)
		} else {
			b.edge(p5, p6, moveStay)
		}
		if b.top {
			b.edge(p6, p0, moveStay)
		}
	}
}

// Code 98 (states 1202), a seven-point saddle.
func saddle98(b *cellBuilder) {
	avg := b.average()
	if avg < b.lower || avg >= b.upper {
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideLeft)
		if !b.left {
			b.edge(p0, p1, moveLeft)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.left {
			b.edge(p1, b.tl, moveUp)
		}
		if b.top {
			b.edge(b.tl, p0, moveStay)
		}

		p3 := b.interpSide(b.lower, sideRight)
		p4 := b.interpSide(b.lower, sideBottom)
		p5 := b.interpSide(b.upper, sideBottom)
		p6 := b.interpSide(b.upper, sideRight)
		if !b.bottom {
			b.edge(p3, p4, moveDown)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.bottom {
			b.edge(p4, p5, moveStay)
		}
		if !b.right {
			b.edge(p5, p6, moveRight)
		} else {
			b.edge(p5, p6, moveStay)
		}
		if b.right {
			b.edge(p6, p3, moveStay)
		}
	} else {
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideRight)
		p2 := b.interpSide(b.lower, sideRight)
		p3 := b.interpSide(b.lower, sideBottom)
		p4 := b.interpSide(b.upper, sideBottom)
		p5 := b.interpSide(b.upper, sideLeft)

		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.bottom {
			b.edge(p2, p3, moveDown)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.bottom {
			b.edge(p3, p4, moveStay)
		}
		if !b.left {
			b.edge(p4, p5, moveLeft)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.left {
			b.edge(p5, b.tl, moveUp)
		}
		if b.top {
			b.edge(b.tl, p0, moveStay)
		}
	}
}

// Code 72 (states 1020), a seven-point saddle.
func saddle72(b *cellBuilder) {
	avg := b.average()
	if avg < b.lower || avg >= b.upper {
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideLeft)
		if !b.left {
			b.edge(p0, p1, moveLeft)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.left {
			b.edge(p1, b.tl, moveUp)
		}
		if b.top {
			b.edge(b.tl, p0, moveStay)
		}

		p3 := b.interpSide(b.upper, sideRight)
		p4 := b.interpSide(b.upper, sideBottom)
		p5 := b.interpSide(b.lower, sideBottom)
		p6 := b.interpSide(b.lower, sideRight)
		if !b.bottom {
			b.edge(p3, p4, moveDown)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.bottom {
			b.edge(p4, p5, moveStay)
		}
		if !b.right {
			b.edge(p5, p6, moveRight)
		} else {
			b.edge(p5, p6, moveStay)
		}
		if b.right {
			b.edge(p6, p3, moveStay)
		}
	} else {
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideRight)
		p2 := b.interpSide(b.upper, sideRight)
		p3 := b.interpSide(b.upper, sideBottom)
		p4 := b.interpSide(b.lower, sideBottom)
		p5 := b.interpSide(b.lower, sideLeft)

		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, p2, moveStay)
		}
		if !b.bottom {
			b.edge(p2, p3, moveDown)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.bottom {
			b.edge(p3, p4, moveStay)
		}
		if !b.left {
			b.edge(p4, p5, moveLeft)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.left {
			b.edge(p5, b.tl, moveUp)
		}
		if b.top {
			b.edge(b.tl, p0, moveStay)
		}
	}
}

// Code 38 (states 0212), a seven-point saddle.
func saddle38(b *cellBuilder) {
	avg := b.average()
	if avg < b.lower || avg >= b.upper {
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideLeft)
		p2 := b.interpSide(b.lower, sideLeft)
		p3 := b.interpSide(b.lower, sideTop)
		if !b.left {
			b.edge(p0, p1, moveLeft)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.left {
			b.edge(p1, p2, moveStay)
		}
		if !b.top {
			b.edge(p2, p3, moveUp)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.top {
			b.edge(p3, p0, moveStay)
		}

		p4 := b.interpSide(b.upper, sideBottom)
		p5 := b.interpSide(b.upper, sideRight)
		if !b.right {
			b.edge(p4, p5, moveRight)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.right {
			b.edge(p5, b.br, moveDown)
		}
		if b.bottom {
			b.edge(b.br, p4, moveStay)
		}
	} else {
		p0 := b.interpSide(b.upper, sideTop)
		p1 := b.interpSide(b.upper, sideRight)
		p3 := b.interpSide(b.upper, sideBottom)
		p4 := b.interpSide(b.upper, sideLeft)
		p5 := b.interpSide(b.lower, sideLeft)
		p6 := b.interpSide(b.lower, sideTop)

		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, b.br, moveDown)
		}
		if b.bottom {
			b.edge(b.br, p3, moveStay)
		}
		if !b.left {
			b.edge(p3, p4, moveLeft)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.left {
			b.edge(p4, p5, moveStay)
		}
		if !b.top {
			b.edge(p5, p6, moveUp)
		} else {
			b.edge(p5, p6, moveStay)
		}
		if b.top {
			b.edge(p6, p0, moveStay)
		}
	}
}

// Code 132 (states 2010), a seven-point saddle.
func saddle132(b *cellBuilder) {
	avg := b.average()
	if avg < b.lower || avg >= b.upper {
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideLeft)
		p2 := b.interpSide(b.upper, sideLeft)
		p3 := b.interpSide(b.upper, sideTop)
		if !b.left {
			b.edge(p0, p1, moveLeft)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.left {
			b.edge(p1, p2, moveStay)
		}
		if !b.top {
			b.edge(p2, p3, moveUp)
		} else {
			b.edge(p2, p3, moveStay)
		}
		if b.top {
			b.edge(p3, p0, moveStay)
		}

		p4 := b.interpSide(b.lower, sideBottom)
		p5 := b.interpSide(b.lower, sideRight)
		if !b.right {
			b.edge(p4, p5, moveRight)
		} else {
			b.edge(p4, p5, moveStay)
		}
		if b.right {
			b.edge(p5, b.br, moveDown)
		}
		if b.bottom {
			b.edge(b.br, p4, moveStay)
		}
	} else {
		p0 := b.interpSide(b.lower, sideTop)
		p1 := b.interpSide(b.lower, sideRight)
		p3 := b.interpSide(b.lower, sideBottom)
		p4 := b.interpSide(b.lower, sideLeft)
		p5 := b.interpSide(b.upper, sideLeft)
		p6 := b.interpSide(b.upper, sideTop)

		if !b.right {
			b.edge(p0, p1, moveRight)
		} else {
			b.edge(p0, p1, moveStay)
		}
		if b.right {
			b.edge(p1, b.br, moveDown)
		}
		if b.bottom {
			b.edge(b.br, p3, moveStay)
		}
		if !b.left {
			b.edge(p3, p4, moveLeft)
		} else {
			b.edge(p3, p4, moveStay)
		}
		if b.left {
			b.edge(p4, p5, moveStay)
		}
		if !b.top {
			b.edge(p5, p6, moveUp)
		} else {
			b.edge(p5, p6, moveStay)
		}
		if b.top {
			b.edge(p6, p0, moveStay)
		}
	}
}
