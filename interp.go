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

import (
	"math"

	"github.com/ctessum/geom"
)

// smoothingFactor biases interpolated points toward the side midpoint.
// It guarantees that an interpolated point never coincides bit-exactly with
// a cell corner, which keeps corner points and interpolated points
// distinguishable by equality. It must not be changed.
const smoothingFactor = 0.999

// interpolate locates the point on the segment p0-p1 where the field
// crosses level, using cosine interpolation with center bias. v0 and v1 are
// the field values at p0 and p1; the blank-side rule guarantees v0 != v1
// whenever this is reachable.
func interpolate(level, v0, v1 float64, p0, p1 geom.Point) geom.Point {
	mu := (level - v0) / (v1 - v0)
	mu2 := (1 - math.Cos(mu*math.Pi)) / 2
	newMu := 0.5 + (mu2-0.5)*smoothingFactor
	return geom.Point{
		X: (1-newMu)*p0.X + newMu*p1.X,
		Y: (1-newMu)*p0.Y + newMu*p1.Y,
	}
}

// interpSide interpolates the crossing of level on one side of the cell.
// The corner pair orientation is fixed per side: Top (tl,tr), Right (tr,br),
// Bottom (bl,br), Left (tl,bl). Both cells sharing a side use the same
// orientation and therefore produce bit-identical points, which the tracer
// depends on.
func (b *cellBuilder) interpSide(level float64, side Side) geom.Point {
	switch side {
	case sideTop:
		return interpolate(level, b.vtl, b.vtr, b.tl, b.tr)
	case sideRight:
		return interpolate(level, b.vtr, b.vbr, b.tr, b.br)
	case sideBottom:
		return interpolate(level, b.vbl, b.vbr, b.bl, b.br)
	default:
		return interpolate(level, b.vtl, b.vbl, b.tl, b.bl)
	}
}
