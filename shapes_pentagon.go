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

// Pentagon cells: five-point asymmetric configurations.

// Codes 101 | 69.
func pentagon101(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
		b.edge(p[3], p[4], moveUp)
	}
	if b.top {
		b.edge(p[4], p[0], moveStay)
	}
}

// Codes 149 | 21.
func pentagon149(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
	if !b.top {
		b.edge(p[3], p[4], moveUp)
	} else {
		b.edge(p[3], p[4], moveStay)
	}
	if b.top {
		b.edge(p[4], p[0], moveRight)
	}
}

// Codes 86 | 84.
func pentagon86(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
		b.edge(p[3], p[4], moveUp)
	}
	if b.top {
		b.edge(p[4], p[0], moveRight)
	}
}

// Codes 89 | 81.
func pentagon89(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
		b.edge(p[3], p[4], moveUp)
	}
	if b.top {
		b.edge(p[4], p[0], moveRight)
	}
}

// Codes 96 | 74.
func pentagon96(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
	if !b.left {
		b.edge(p[2], p[3], moveLeft)
	} else {
		b.edge(p[2], p[3], moveStay)
	}
	if b.left {
		b.edge(p[3], p[4], moveUp)
	}
	if b.top {
		b.edge(p[4], p[0], moveStay)
	}
}

// Codes 24 | 146.
func pentagon24(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
	if !b.top {
		b.edge(p[3], p[4], moveUp)
	} else {
		b.edge(p[3], p[4], moveStay)
	}
	if b.top {
		b.edge(p[4], p[0], moveRight)
	}
}

// Codes 6 | 164.
func pentagon6(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
	if !b.right {
		b.edge(p[4], p[0], moveRight)
	} else {
		b.edge(p[4], p[0], moveStay)
	}
}

// Codes 129 | 41.
func pentagon129(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
		b.edge(p[2], p[3], moveStay)
	}
	if !b.top {
		b.edge(p[3], p[4], moveUp)
	} else {
		b.edge(p[3], p[4], moveStay)
	}
	if b.top {
		b.edge(p[4], p[0], moveStay)
	}
}

// Codes 66 | 104.
func pentagon66(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
	if !b.left {
		b.edge(p[2], p[3], moveLeft)
	} else {
		b.edge(p[2], p[3], moveStay)
	}
	if b.left {
		b.edge(p[3], p[4], moveUp)
	}
	if b.top {
		b.edge(p[4], p[0], moveStay)
	}
}

// Codes 144 | 26.
func pentagon144(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
	if !b.top {
		b.edge(p[3], p[4], moveUp)
	} else {
		b.edge(p[3], p[4], moveStay)
	}
	if b.top {
		b.edge(p[4], p[0], moveRight)
	}
}

// Codes 36 | 134.
func pentagon36(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
	if !b.top {
		b.edge(p[3], p[4], moveUp)
	} else {
		b.edge(p[3], p[4], moveStay)
	}
	if b.top {
		b.edge(p[4], p[0], moveStay)
	}
}

// Codes 9 | 161.
func pentagon9(b *cellBuilder) {
	p := b.points()
	if len(p) < 5 {
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
	if !b.right {
		b.edge(p[4], p[0], moveRight)
	} else {
		b.edge(p[4], p[0], moveStay)
	}
}
