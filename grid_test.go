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
	"errors"
	"math"
	"testing"

	"github.com/ctessum/sparse"
)

func testGridPoints() [][]GridPoint {
	return [][]GridPoint{
		{
			{Lon: -100, Lat: 41, Value: 10},
			{Lon: -99, Lat: 41, Value: 20},
			{Lon: -98, Lat: 41, Value: 30},
		},
		{
			{Lon: -100, Lat: 40, Value: 15},
			{Lon: -99, Lat: 40, Value: 25},
			{Lon: -98, Lat: 40, Value: 35},
		},
		{
			{Lon: -100, Lat: 39, Value: 12},
			{Lon: -99, Lat: 39, Value: 22},
			{Lon: -98, Lat: 39, Value: 32},
		},
	}
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(testGridPoints())
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Errorf("dimensions: got %dx%d, want 3x3", g.Rows(), g.Cols())
	}
	p := g.Point(2, 2)
	if p.Lon != -98 || p.Lat != 39 || p.Value != 32 {
		t.Errorf("point (2,2): got %+v", p)
	}
}

func TestNewGridErrors(t *testing.T) {
	tests := []struct {
		name   string
		points [][]GridPoint
		want   error
	}{
		{
			name:   "empty",
			points: nil,
			want:   ErrTooSmall,
		},
		{
			name:   "one row",
			points: [][]GridPoint{{{Lon: 0, Lat: 0, Value: 1}, {Lon: 1, Lat: 0, Value: 1}}},
			want:   ErrTooSmall,
		},
		{
			name: "one column",
			points: [][]GridPoint{
				{{Lon: 0, Lat: 1, Value: 1}},
				{{Lon: 0, Lat: 0, Value: 1}},
			},
			want: ErrTooSmall,
		},
		{
			name: "jagged",
			points: [][]GridPoint{
				{{Lon: 0, Lat: 1, Value: 1}, {Lon: 1, Lat: 1, Value: 1}},
				{{Lon: 0, Lat: 0, Value: 1}},
			},
			want: ErrNonRectangular,
		},
		{
			name: "nan",
			points: [][]GridPoint{
				{{Lon: 0, Lat: 1, Value: 1}, {Lon: 1, Lat: 1, Value: math.NaN()}},
				{{Lon: 0, Lat: 0, Value: 1}, {Lon: 1, Lat: 0, Value: 1}},
			},
			want: ErrNaN,
		},
		{
			name: "bad latitude",
			points: [][]GridPoint{
				{{Lon: 0, Lat: 91, Value: 1}, {Lon: 1, Lat: 91, Value: 1}},
				{{Lon: 0, Lat: 0, Value: 1}, {Lon: 1, Lat: 0, Value: 1}},
			},
			want: ErrCoordinates,
		},
	}
	for _, test := range tests {
		_, err := NewGrid(test.points)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}

func TestNewGridFromArrays(t *testing.T) {
	lon := sparse.ZerosDense(2, 2)
	lat := sparse.ZerosDense(2, 2)
	val := sparse.ZerosDense(2, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			lon.Set(-100+float64(j), i, j)
			lat.Set(41-float64(i), i, j)
			val.Set(float64(i*2+j), i, j)
		}
	}
	g, err := NewGridFromArrays(lon, lat, val)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 2x2", g.Rows(), g.Cols())
	}
	if p := g.Point(1, 1); p.Lon != -99 || p.Lat != 40 || p.Value != 3 {
		t.Errorf("point (1,1): got %+v", p)
	}

	bad := sparse.ZerosDense(3, 2)
	if _, err := NewGridFromArrays(lon, lat, bad); err == nil {
		t.Error("mismatched shapes: expected error")
	}
}

func TestGridBounds(t *testing.T) {
	g, err := NewGrid(testGridPoints())
	if err != nil {
		t.Fatal(err)
	}
	b := g.Bounds()
	if b.Min.X != -100 || b.Min.Y != 39 || b.Max.X != -98 || b.Max.Y != 41 {
		t.Errorf("bounds: got %+v", b)
	}
}

func TestGridValueRange(t *testing.T) {
	g, err := NewGrid(testGridPoints())
	if err != nil {
		t.Fatal(err)
	}
	min, max := g.ValueRange()
	if min != 10 || max != 35 {
		t.Errorf("value range: got (%g, %g), want (10, 35)", min, max)
	}
}
