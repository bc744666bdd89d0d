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

// Trapezoid cells: one corner on one side of the band, the opposite three
// on the other, with both thresholds crossing two adjacent cell sides.

// Codes 168 | 2.
func trapezoid168(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
		return
	}
	if b.bottom {
		b.edge(p[0], p[1], moveStay)
	}
	if !b.left {
		b.edge(p[1], p[2], moveLeft)
	} else {
		b.edge(p[1], p[2], moveStay)
	}
	if b.left {
		b.edge(p[2], p[3], moveStay)
	}
	if !b.bottom {
		b.edge(p[3], p[0], moveDown)
	} else {
		b.edge(p[3], p[0], moveStay)
	}
}

// Codes 162 | 8.
func trapezoid162(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
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
	if !b.right {
		b.edge(p[3], p[0], moveRight)
	} else {
		b.edge(p[3], p[0], moveStay)
	}
}

// Codes 138 | 32.
func trapezoid138(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
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
	if !b.top {
		b.edge(p[2], p[3], moveUp)
	} else {
		b.edge(p[2], p[3], moveStay)
	}
	if b.top {
		b.edge(p[3], p[0], moveStay)
	}
}

// Codes 42 | 128.
func trapezoid42(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
		return
	}
	if !b.left {
		b.edge(p[0], p[1], moveLeft)
	} else {
		b.edge(p[0], p[1], moveStay)
	}
	if b.left {
		b.edge(p[1], p[2], moveStay)
	}
	if !b.top {
		b.edge(p[2], p[3], moveUp)
	} else {
		b.edge(p[2], p[3], moveStay)
	}
	if b.top {
		b.edge(p[3], p[0], moveStay)
	}
}
