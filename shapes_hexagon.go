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

// Hexagon cells: six-point configurations crossing all four sides.

// Codes 37 | 133.
func hexagon37(b *cellBuilder) {
	p := b.points()
	if len(p) < 6 {
		return
	}
	if !b.right {
		b.edge(p[0], p[1], moveRight)
	} else {
		b.edge(p[0], p[1], moveStay)
	}
	if b.right {
		b.edge(p[1], p[2], moveDown)
	}
	if b.bottom {
		b.edge(p[2], p[3], moveLeft)
	}
	if b.left {
		b.edge(p[3], p[4], moveStay)
	}
	if !b.top {
		b.edge(p[4], p[5], moveUp)
	} else {
		b.edge(p[4], p[5], moveStay)
	}
	if b.top {
		b.edge(p[5], p[0], moveStay)
	}
}

// Codes 148 | 22.
func hexagon148(b *cellBuilder) {
	p := b.points()
	if len(p) < 6 {
		return
	}
	if b.right {
		b.edge(p[0], p[1], moveDown)
	}
	if b.bottom {
		b.edge(p[1], p[2], moveStay)
	}
	if !b.left {
		b.edge(p[2], p[3], moveLeft)
	} else {
		b.edge(p[2], p[3], moveStay)
	}
	if b.left {
		b.edge(p[3], p[4], moveStay)
	}
	if !b.top {
		b.edge(p[4], p[5], moveUp)
	} else {
		b.edge(p[4], p[5], moveStay)
	}
	if b.top {
		b.edge(p[5], p[0], moveRight)
	}
}

// Codes 82 | 88.
func hexagon82(b *cellBuilder) {
	p := b.points()
	if len(p) < 6 {
		return
	}
	if b.right {
		b.edge(p[0], p[1], moveStay)
	}
	if !b.bottom {
		b.edge(p[1], p[2], moveDown)
	} else {
		b.edge(p[1], p[2], moveStay)
	}
	if b.bottom {
		b.edge(p[2], p[3], moveStay)
	}
	if !b.left {
		b.edge(p[3], p[4], moveLeft)
	} else {
		b.edge(p[3], p[4], moveStay)
	}
	if b.left {
		b.edge(p[4], p[5], moveUp)
	}
	if b.top {
		b.edge(p[5], p[0], moveRight)
	}
}

// Codes 73 | 97.
func hexagon73(b *cellBuilder) {
	p := b.points()
	if len(p) < 6 {
		return
	}
	if !b.right {
		b.edge(p[0], p[1], moveRight)
	} else {
		b.edge(p[0], p[1], moveStay)
	}
	if b.right {
		b.edge(p[1], p[2], moveStay)
	}
	if !b.bottom {
		b.edge(p[2], p[3], moveDown)
	} else {
		b.edge(p[2], p[3], moveStay)
	}
	if b.bottom {
		b.edge(p[3], p[4], moveLeft)
	}
	if b.left {
		b.edge(p[4], p[5], moveUp)
	}
	if b.top {
		b.edge(p[5], p[0], moveStay)
	}
}

// Codes 145 | 25.
func hexagon145(b *cellBuilder) {
	p := b.points()
	if len(p) < 6 {
		return
	}
	if b.right {
		b.edge(p[0], p[1], moveStay)
	}
	if !b.bottom {
		b.edge(p[1], p[2], moveDown)
	} else {
		b.edge(p[1], p[2], moveStay)
	}
	if b.bottom {
		b.edge(p[2], p[3], moveLeft)
	}
	if b.left {
		b.edge(p[3], p[4], moveStay)
	}
	if !b.top {
		b.edge(p[4], p[5], moveUp)
	} else {
		b.edge(p[4], p[5], moveStay)
	}
	if b.top {
		b.edge(p[5], p[0], moveRight)
	}
}

// Codes 70 | 100.
func hexagon70(b *cellBuilder) {
	p := b.points()
	if len(p) < 6 {
		return
	}
	if !b.right {
		b.edge(p[0], p[1], moveRight)
	} else {
		b.edge(p[0], p[1], moveStay)
	}
	if b.right {
		b.edge(p[1], p[2], moveDown)
	}
	if b.bottom {
		b.edge(p[2], p[3], moveStay)
	}
	if !b.left {
		b.edge(p[3], p[4], moveLeft)
	} else {
		b.edge(p[3], p[4], moveStay)
	}
	if b.left {
		b.edge(p[4], p[5], moveUp)
	}
	if b.top {
		b.edge(p[5], p[0], moveStay)
	}
}
