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

// Rectangle cells: two adjacent corners in one state, the other two in
// another, with the band crossing two opposite cell sides.

// Codes 5 | 165.
func rectangle5(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
		return
	}
	if b.right {
		b.edge(p[0], p[1], moveDown)
	}
	if b.bottom {
		b.edge(p[1], p[2], moveLeft)
	}
	if b.left {
		b.edge(p[2], p[3], moveStay)
	}
	if !b.right {
		b.edge(p[3], p[0], moveRight)
	} else {
		b.edge(p[3], p[0], moveStay)
	}
}

// Codes 20 | 150.
func rectangle20(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
		return
	}
	if b.right {
		b.edge(p[0], p[1], moveDown)
	}
	if b.bottom {
		b.edge(p[1], p[2], moveStay)
	}
	if !b.top {
		b.edge(p[2], p[3], moveUp)
	} else {
		b.edge(p[2], p[3], moveStay)
	}
	if b.top {
		b.edge(p[3], p[0], moveRight)
	}
}

// Codes 80 | 90.
func rectangle80(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
		return
	}
	if b.right {
		b.edge(p[0], p[1], moveStay)
	}
	if !b.left {
		b.edge(p[1], p[2], moveLeft)
	} else {
		b.edge(p[1], p[2], moveStay)
	}
	if b.left {
		b.edge(p[2], p[3], moveUp)
	}
	if b.top {
		b.edge(p[3], p[0], moveRight)
	}
}

// Codes 65 | 105.
func rectangle65(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
		return
	}
	if !b.bottom {
		b.edge(p[0], p[1], moveDown)
	} else {
		b.edge(p[0], p[1], moveStay)
	}
	if b.bottom {
		b.edge(p[1], p[2], moveLeft)
	}
	if b.left {
		b.edge(p[2], p[3], moveUp)
	}
	if b.top {
		b.edge(p[3], p[0], moveStay)
	}
}

// Codes 160 | 10.
func rectangle160(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
		return
	}
	if b.right {
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
	if !b.right {
		b.edge(p[3], p[0], moveRight)
	} else {
		b.edge(p[3], p[0], moveStay)
	}
}

// Codes 130 | 40.
func rectangle130(b *cellBuilder) {
	p := b.points()
	if len(p) < 4 {
		return
	}
	if !b.bottom {
		b.edge(p[0], p[1], moveDown)
	} else {
		b.edge(p[0], p[1], moveStay)
	}
	if b.bottom {
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
