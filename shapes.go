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

// cellBuilder carries everything a shape function needs to emit the edges
// of one cell: corner coordinates and values, the band, and the four
// grid-boundary flags of the cell.
type cellBuilder struct {
	tl, tr, br, bl     geom.Point
	vtl, vtr, vbr, vbl float64
	lower, upper       float64

	top, right, bottom, left bool // cell touches the corresponding grid edge

	pts     []geom.Point // compressed eight-slot buffer, built on demand
	havePts bool
	edges   []Edge
}

func (b *cellBuilder) edge(start, end geom.Point, m Move) {
	b.edges = append(b.edges, Edge{Start: start, End: end, Move: m})
}

// A side is blank iff both of its corners lie strictly on the same side of
// the band; no crossing occurs on a blank side.
func (b *cellBuilder) blank(v0, v1 float64) bool {
	return (v0 >= b.upper && v1 >= b.upper) || (v0 < b.lower && v1 < b.lower)
}

func (b *cellBuilder) topBlank() bool    { return b.blank(b.vtl, b.vtr) }
func (b *cellBuilder) rightBlank() bool  { return b.blank(b.vtr, b.vbr) }
func (b *cellBuilder) bottomBlank() bool { return b.blank(b.vbl, b.vbr) }
func (b *cellBuilder) leftBlank() bool   { return b.blank(b.vtl, b.vbl) }

// slot produces one entry of the eight-position buffer: absent on a blank
// side, the actual corner when the referenced corner is in band, and
// otherwise a deferred crossing of the nearer threshold on that side.
func (b *cellBuilder) slot(blank bool, v float64, corner geom.Point, side Side) (cornerPoint, bool) {
	if blank {
		return cornerPoint{}, false
	}
	switch {
	case v >= b.upper:
		return deferredPoint(v, b.upper, side), true
	case v < b.lower:
		return deferredPoint(v, b.lower, side), true
	default:
		return actualPoint(corner), true
	}
}

// points builds the compressed, materialized point list for the cell:
// the eight slots clockwise from the top-right, with absent slots and later
// duplicates removed, and deferred slots interpolated afterwards. Comparing
// before materializing is what lets the two slots flanking an in-band
// corner collapse to one point; interpolating first would produce two
// nearly-equal coordinates and spurious microscopic edges.
func (b *cellBuilder) points() []geom.Point {
	if b.havePts {
		return b.pts
	}
	b.havePts = true

	topBlank, rightBlank := b.topBlank(), b.rightBlank()
	bottomBlank, leftBlank := b.bottomBlank(), b.leftBlank()

	buf := make([]cornerPoint, 0, 8)
	add := func(p cornerPoint, ok bool) {
		if !ok {
			return
		}
		for _, q := range buf {
			if q.equal(p) {
				return
			}
		}
		buf = append(buf, p)
	}
	add(b.slot(topBlank, b.vtr, b.tr, sideTop))
	add(b.slot(rightBlank, b.vtr, b.tr, sideRight))
	add(b.slot(rightBlank, b.vbr, b.br, sideRight))
	add(b.slot(bottomBlank, b.vbr, b.br, sideBottom))
	add(b.slot(bottomBlank, b.vbl, b.bl, sideBottom))
	add(b.slot(leftBlank, b.vbl, b.bl, sideLeft))
	add(b.slot(leftBlank, b.vtl, b.tl, sideLeft))
	add(b.slot(topBlank, b.vtl, b.tl, sideTop))

	b.pts = make([]geom.Point, len(buf))
	for i, p := range buf {
		if p.actual {
			b.pts[i] = p.pt
		} else {
			b.pts[i] = b.interpSide(p.limit, p.side)
		}
	}
	return b.pts
}

// average of the four corner values, used to disambiguate saddle cells.
func (b *cellBuilder) average() float64 {
	return (b.vtl + b.vtr + b.vbr + b.vbl) / 4
}

// shapeFuncs dispatches a configuration code to its shape family. It is
// sparse: empty and unreachable codes are nil.
var shapeFuncs [171]func(*cellBuilder)

func registerShape(fn func(*cellBuilder), codes ...uint8) {
	for _, code := range codes {
		shapeFuncs[code] = fn
	}
}

func init() {
	// Triangles: one corner in band, the other three all below or all above.
	registerShape(triangleBL, 169, 1)
	registerShape(triangleBR, 166, 4)
	registerShape(triangleTR, 154, 16)
	registerShape(triangleTL, 106, 64)

	// Pentagons.
	registerShape(pentagon101, 101, 69)
	registerShape(pentagon149, 149, 21)
	registerShape(pentagon86, 86, 84)
	registerShape(pentagon89, 89, 81)
	registerShape(pentagon96, 96, 74)
	registerShape(pentagon24, 24, 146)
	registerShape(pentagon6, 6, 164)
	registerShape(pentagon129, 129, 41)
	registerShape(pentagon66, 66, 104)
	registerShape(pentagon144, 144, 26)
	registerShape(pentagon36, 36, 134)
	registerShape(pentagon9, 9, 161)

	// Rectangles: two adjacent corners in one state, two in the other.
	registerShape(rectangle5, 5, 165)
	registerShape(rectangle20, 20, 150)
	registerShape(rectangle80, 80, 90)
	registerShape(rectangle65, 65, 105)
	registerShape(rectangle160, 160, 10)
	registerShape(rectangle130, 130, 40)

	// Trapezoids: one corner below, three above (or mirrored).
	registerShape(trapezoid168, 168, 2)
	registerShape(trapezoid162, 162, 8)
	registerShape(trapezoid138, 138, 32)
	registerShape(trapezoid42, 42, 128)

	// Hexagons: the band crosses all four sides.
	registerShape(hexagon37, 37, 133)
	registerShape(hexagon148, 148, 22)
	registerShape(hexagon82, 82, 88)
	registerShape(hexagon73, 73, 97)
	registerShape(hexagon145, 145, 25)
	registerShape(hexagon70, 70, 100)

	// Saddles: ambiguous diagonal configurations, resolved by the cell
	// average. Each code keeps its own function because the threshold
	// choices differ per code.
	registerShape(saddle153, 153)
	registerShape(saddle102, 102)
	registerShape(saddle68, 68)
	registerShape(saddle17, 17)
	registerShape(saddle136, 136)
	registerShape(saddle34, 34)
	registerShape(saddle152, 152)
	registerShape(saddle18, 18)
	registerShape(saddle137, 137)
	registerShape(saddle33, 33)
	registerShape(saddle98, 98)
	registerShape(saddle72, 72)
	registerShape(saddle38, 38)
	registerShape(saddle132, 132)

	// Square: all four corners in band.
	registerShape(square85, 85)
}

// buildCell classifies one cell against the band and produces its edge set,
// or nil when the cell contributes nothing.
func buildCell(tl, tr, br, bl GridPoint, lower, upper float64,
	top, right, bottom, left bool) *cell {

	code := configCode(tl.Value, tr.Value, br.Value, bl.Value, lower, upper)
	if emptyConfig(code) {
		return nil
	}
	fn := shapeFuncs[code]
	if fn == nil {
		return nil
	}
	b := &cellBuilder{
		tl: geom.Point{X: tl.Lon, Y: tl.Lat},
		tr: geom.Point{X: tr.Lon, Y: tr.Lat},
		br: geom.Point{X: br.Lon, Y: br.Lat},
		bl: geom.Point{X: bl.Lon, Y: bl.Lat},
		vtl: tl.Value, vtr: tr.Value, vbr: br.Value, vbl: bl.Value,
		lower: lower, upper: upper,
		top: top, right: right, bottom: bottom, left: left,
	}
	fn(b)
	if len(b.edges) == 0 {
		return nil
	}
	return &cell{edges: b.edges}
}
