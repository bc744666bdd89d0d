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

// Code 85: all four corners in band. The cell is fully covered, so its
// boundary uses the actual corners directly; no side carries a threshold
// crossing (a plateau cell has no gradient to interpolate against). Edges
// exist only along grid boundaries, where the band region must be closed
// off; in the interior the region continues into the neighboring cells.
func square85(b *cellBuilder) {
	if b.right {
		b.edge(b.tr, b.br, moveDown)
	}
	if b.bottom {
		b.edge(b.br, b.bl, moveLeft)
	}
	if b.left {
		b.edge(b.bl, b.tl, moveUp)
	}
	if b.top {
		b.edge(b.tl, b.tr, moveRight)
	}
}
