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
	"testing"

	"github.com/ctessum/geom"
)

func squareRing(x0, y0, x1, y1 float64) []geom.Point {
	return []geom.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}
}

func TestPointInRing(t *testing.T) {
	square := squareRing(0, 0, 1, 1)
	if !pointInRing(geom.Point{X: 0.5, Y: 0.5}, square) {
		t.Error("center should be inside")
	}
	if pointInRing(geom.Point{X: 1.5, Y: 0.5}, square) {
		t.Error("right of square should be outside")
	}
	if pointInRing(geom.Point{X: -0.5, Y: 0.5}, square) {
		t.Error("left of square should be outside")
	}

	triangle := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 0}}
	if !pointInRing(geom.Point{X: 1, Y: 0.5}, triangle) {
		t.Error("inside triangle")
	}
	if pointInRing(geom.Point{X: 0, Y: 1.5}, triangle) || pointInRing(geom.Point{X: 2, Y: 1.5}, triangle) {
		t.Error("outside triangle")
	}
}

func TestRingInRing(t *testing.T) {
	outer := squareRing(0, 0, 4, 4)
	inner := squareRing(1, 1, 2, 2)
	if !ringInRing(inner, outer) {
		t.Error("inner should be inside outer")
	}
	if ringInRing(outer, inner) {
		t.Error("outer should not be inside inner")
	}
}

func TestNestSeparate(t *testing.T) {
	polys := nestRings([][]geom.Point{
		squareRing(0, 0, 4, 4),
		squareRing(10, 10, 14, 14),
	})
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	for _, p := range polys {
		if len(p) != 1 {
			t.Errorf("polygon has %d rings, want 1", len(p))
		}
	}
}

func TestNestHole(t *testing.T) {
	polys := nestRings([][]geom.Point{
		squareRing(0, 0, 10, 10),
		squareRing(2, 2, 8, 8),
	})
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if len(polys[0]) != 2 {
		t.Fatalf("polygon has %d rings, want outer + 1 hole", len(polys[0]))
	}
}

func TestNestIslandInHole(t *testing.T) {
	// Outer, a hole in it, and an island inside the hole: the island must
	// come out as a separate top-level polygon.
	polys := nestRings([][]geom.Point{
		squareRing(0, 0, 20, 20),
		squareRing(5, 5, 15, 15),
		squareRing(8, 8, 12, 12),
	})
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	var withHole, withoutHole int
	for _, p := range polys {
		if len(p) == 2 {
			withHole++
		} else if len(p) == 1 {
			withoutHole++
		}
	}
	if withHole != 1 || withoutHole != 1 {
		t.Errorf("want one polygon with a hole and one without, got %d/%d", withHole, withoutHole)
	}
}

func TestNestReclassifiesSwallowedPolygons(t *testing.T) {
	// The container arrives last: both small rings are already placed as
	// top-level polygons and must be re-queued as holes.
	polys := nestRings([][]geom.Point{
		squareRing(1, 1, 2, 2),
		squareRing(5, 5, 6, 6),
		squareRing(0, 0, 10, 10),
	})
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if len(polys[0]) != 3 {
		t.Errorf("polygon has %d rings, want outer + 2 holes", len(polys[0]))
	}
}

func TestNestHoleBeforeOuter(t *testing.T) {
	// The hole arrives first and is provisionally placed as an outer; the
	// real outer must displace it.
	polys := nestRings([][]geom.Point{
		squareRing(5, 5, 15, 15),
		squareRing(0, 0, 20, 20),
	})
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if len(polys[0]) != 2 {
		t.Errorf("polygon has %d rings, want outer + 1 hole", len(polys[0]))
	}
}
