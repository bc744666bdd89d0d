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

// Triangle cells: a single corner separated from the other three. The
// contour segment crossing the cell is always emitted; the two segments
// lying on cell sides exist only where the grid boundary closes the region.

// Codes 169 | 1: bottom-left triangle.
func triangleBL(b *cellBuilder) {
	p := b.points()
	if len(p) < 3 {
		return
	}
	if b.bottom {
		b.edge(p[0], p[1], moveLeft)
	}
	if b.left {
		b.edge(p[1], p[2], moveStay)
	}
	b.edge(p[2], p[0], moveDown)
}

// Codes 166 | 4: bottom-right triangle.
func triangleBR(b *cellBuilder) {
	p := b.points()
	if len(p) < 3 {
		return
	}
	if b.right {
		b.edge(p[0], p[1], moveDown)
	}
	if b.bottom {
		b.edge(p[1], p[2], moveStay)
	}
	b.edge(p[2], p[0], moveRight)
}

// Codes 154 | 16: top-right triangle.
func triangleTR(b *cellBuilder) {
	p := b.points()
	if len(p) < 3 {
		return
	}
	if b.right {
		b.edge(p[0], p[1], moveStay)
	}
	b.edge(p[1], p[2], moveUp)
	if b.top {
		b.edge(p[2], p[0], moveRight)
	}
}

// Codes 106 | 64: top-left triangle.
func triangleTL(b *cellBuilder) {
	p := b.points()
	if len(p) < 3 {
		return
	}
	b.edge(p[0], p[1], moveLeft)
	if b.left {
		b.edge(p[1], p[2], moveUp)
	}
	if b.top {
		b.edge(p[2], p[0], moveStay)
	}
}
