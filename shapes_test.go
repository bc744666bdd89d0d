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
	"testing"

	"github.com/ctessum/geom"
)

func gp(lon, lat, value float64) GridPoint {
	return GridPoint{Lon: lon, Lat: lat, Value: value}
}

func TestShapeTableCovers79Cases(t *testing.T) {
	// Every code the ternary encoding can produce, except the two empty
	// ones, must dispatch somewhere.
	count := 0
	for tl := 0; tl < 3; tl++ {
		for tr := 0; tr < 3; tr++ {
			for br := 0; br < 3; br++ {
				for bl := 0; bl < 3; bl++ {
					code := uint8(tl<<6 | tr<<4 | br<<2 | bl)
					if emptyConfig(code) {
						continue
					}
					count++
					if shapeFuncs[code] == nil {
						t.Errorf("code %d has no shape function", code)
					}
				}
			}
		}
	}
	if count != 79 {
		t.Errorf("expected 79 non-empty codes, counted %d", count)
	}
}

func TestEmptyCells(t *testing.T) {
	tl, tr := gp(0, 1, 0), gp(1, 1, 0)
	br, bl := gp(1, 0, 0), gp(0, 0, 0)
	if c := buildCell(tl, tr, br, bl, 5, 10, true, true, true, true); c != nil {
		t.Error("all-below cell should be absent")
	}
	tl.Value, tr.Value, br.Value, bl.Value = 20, 20, 20, 20
	if c := buildCell(tl, tr, br, bl, 5, 10, true, true, true, true); c != nil {
		t.Error("all-above cell should be absent")
	}
}

// TestPointCompression checks that the two slots flanking an in-band corner
// collapse to a single actual corner point before any interpolation runs.
func TestPointCompression(t *testing.T) {
	b := &cellBuilder{
		tl: geom.Point{X: 0, Y: 1}, vtl: 0,
		tr: geom.Point{X: 1, Y: 1}, vtr: 0,
		br: geom.Point{X: 1, Y: 0}, vbr: 0,
		bl: geom.Point{X: 0, Y: 0}, vbl: 10,
		lower: 5, upper: 15,
	}
	// Configuration 1: only bl in band. Bottom and left sides carry a
	// lower crossing each, and bl itself appears once.
	p := b.points()
	if len(p) != 3 {
		t.Fatalf("points: got %d, want 3", len(p))
	}
	if p[1] != b.bl {
		t.Errorf("middle point should be the bl corner, got %+v", p[1])
	}
	if p[0].Y != 0 {
		t.Errorf("first point should lie on the bottom side, got %+v", p[0])
	}
	if p[2].X != 0 {
		t.Errorf("last point should lie on the left side, got %+v", p[2])
	}
}

// TestTrapezoidPoints pins the four-point strip of configuration 2 against
// hand-computed cosine crossings (bl above the band, the rest below).
func TestTrapezoidPoints(t *testing.T) {
	b := &cellBuilder{
		tl: geom.Point{X: -100, Y: 41}, vtl: 0,
		tr: geom.Point{X: -99, Y: 41}, vtr: 0,
		br: geom.Point{X: -99, Y: 40}, vbr: 0,
		bl: geom.Point{X: -100, Y: 40}, vbl: 20,
		lower: 5, upper: 15,
	}
	p := b.points()
	if len(p) != 4 {
		t.Fatalf("points: got %d, want 4", len(p))
	}

	// Lower crossing on the bottom side: mu = (5-20)/(0-20) = 0.75 through
	// the cosine formula, interpolating from bl toward br.
	mu := 0.75
	mu2 := (1 - math.Cos(mu*math.Pi)) / 2
	newMu := 0.5 + (mu2-0.5)*0.999
	wantX := (1-newMu)*-100 + newMu*-99
	wantY := (1-newMu)*40 + newMu*40
	if p[0].X != wantX || p[0].Y != wantY {
		t.Errorf("bottom lower crossing: got %+v, want (%g, %g)", p[0], wantX, wantY)
	}

	// Left crossing at the same offset from bl: interpolating from tl
	// toward bl, mu = (5-0)/(20-0) = 0.25.
	mu = 0.25
	mu2 = (1 - math.Cos(mu*math.Pi)) / 2
	newMu = 0.5 + (mu2-0.5)*0.999
	wantX = (1-newMu)*-100 + newMu*-100
	wantY = (1-newMu)*41 + newMu*40
	if p[3].X != wantX || p[3].Y != wantY {
		t.Errorf("left lower crossing: got %+v, want (%g, %g)", p[3], wantX, wantY)
	}

	// The above-band corner itself never appears.
	for _, pt := range p {
		if pt == b.bl {
			t.Error("bl corner must not appear in the point list")
		}
	}
}

func TestSaddleAverageDisambiguation(t *testing.T) {
	corners := func() (GridPoint, GridPoint, GridPoint, GridPoint) {
		return gp(-100, 41, 30), gp(-99, 41, 5), gp(-99, 40, 30), gp(-100, 40, 5)
	}

	// Average 17.5 lies inside [10, 20): the connected form, one chain of
	// eight edges around the cell.
	tl, tr, br, bl := corners()
	c := buildCell(tl, tr, br, bl, 10, 20, true, true, true, true)
	if c == nil {
		t.Fatal("saddle cell missing")
	}
	if len(c.edges) != 8 {
		t.Fatalf("connected saddle: got %d edges, want 8", len(c.edges))
	}
	start, _ := c.takeStartingEdge()
	chain := c.takeChainFrom(start.End)
	if len(chain) != 7 || chain[6].End != start.Start {
		t.Errorf("connected saddle should be one closed chain, got %d continuation edges", len(chain))
	}

	// Average 17.5 at or above upper=12: the split form, two disjoint
	// four-edge chains in opposite corners.
	tl, tr, br, bl = corners()
	c = buildCell(tl, tr, br, bl, 10, 12, true, true, true, true)
	if c == nil {
		t.Fatal("saddle cell missing")
	}
	if len(c.edges) != 8 {
		t.Fatalf("split saddle: got %d edges, want 8", len(c.edges))
	}
	start, _ = c.takeStartingEdge()
	chain = c.takeChainFrom(start.End)
	if len(chain) != 3 {
		t.Fatalf("split saddle first chain: got %d continuation edges, want 3", len(chain))
	}
	if chain[2].End != start.Start {
		t.Error("split saddle first chain does not close")
	}
	if c.cleared() {
		t.Fatal("second chain missing")
	}
	start, _ = c.takeStartingEdge()
	chain = c.takeChainFrom(start.End)
	if len(chain) != 3 || chain[2].End != start.Start {
		t.Error("split saddle second chain does not close")
	}
}

// TestSquarePlateau checks that a fully-in-band cell uses the actual
// corners; a flat field has no gradient to interpolate against.
func TestSquarePlateau(t *testing.T) {
	tl, tr := gp(-100, 41, 10), gp(-99, 41, 10)
	br, bl := gp(-99, 40, 10), gp(-100, 40, 10)
	c := buildCell(tl, tr, br, bl, 5, 15, true, true, true, true)
	if c == nil {
		t.Fatal("square cell missing")
	}
	if len(c.edges) != 4 {
		t.Fatalf("square: got %d edges, want 4", len(c.edges))
	}
	want := []geom.Point{
		{X: -99, Y: 41}, {X: -99, Y: 40}, {X: -100, Y: 40}, {X: -100, Y: 41},
	}
	for i, e := range c.edges {
		if e.Start != want[i] {
			t.Errorf("edge %d starts at %+v, want %+v", i, e.Start, want[i])
		}
	}

	// Interior square cells contribute no edges at all.
	if c := buildCell(tl, tr, br, bl, 5, 15, false, false, false, false); c != nil {
		t.Error("interior square cell should be absent")
	}
}
