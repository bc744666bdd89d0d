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
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// GridPoint is one corner of the input lattice: a WGS84 coordinate and the
// scalar value of the field there.
type GridPoint struct {
	Lon   float64 `json:"lon"`
	Lat   float64 `json:"lat"`
	Value float64 `json:"value"`
}

func (p GridPoint) valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Grid is a rectangular lattice of grid points in row-major order. It is
// immutable after construction and may be shared between goroutines.
type Grid struct {
	points     [][]GridPoint
	rows, cols int
	values     []float64 // flattened copy, row-major, for range scans

	// Log receives per-band progress messages at debug level. It defaults
	// to the logrus standard logger.
	Log logrus.FieldLogger
}

// NewGrid validates points and wraps them in a Grid. Every row must have
// the same length, the lattice must be at least 2x2, values must not be NaN,
// and coordinates must lie in the valid longitude/latitude range.
func NewGrid(points [][]GridPoint) (*Grid, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("geocontour: %d rows: %w", len(points), ErrTooSmall)
	}
	cols := len(points[0])
	if cols < 2 {
		return nil, fmt.Errorf("geocontour: %d columns: %w", cols, ErrTooSmall)
	}
	for i, row := range points {
		if len(row) != cols {
			return nil, fmt.Errorf("geocontour: row %d has %d points, expected %d: %w",
				i, len(row), cols, ErrNonRectangular)
		}
	}
	values := make([]float64, 0, len(points)*cols)
	for i, row := range points {
		for j, p := range row {
			if math.IsNaN(p.Value) {
				return nil, fmt.Errorf("geocontour: point (%d,%d): %w", i, j, ErrNaN)
			}
			if !p.valid() {
				return nil, fmt.Errorf("geocontour: point (%d,%d) = (%g,%g): %w",
					i, j, p.Lon, p.Lat, ErrCoordinates)
			}
			values = append(values, p.Value)
		}
	}
	return &Grid{
		points: points,
		rows:   len(points),
		cols:   cols,
		values: values,
		Log:    logrus.StandardLogger(),
	}, nil
}

// NewGridFromArrays builds a grid from dense 2-dimensional arrays of
// longitudes, latitudes and values, as produced by gridded-dataset readers.
// All three arrays must share the same [rows, cols] shape.
func NewGridFromArrays(lon, lat, val *sparse.DenseArray) (*Grid, error) {
	for _, a := range []*sparse.DenseArray{lon, lat, val} {
		if len(a.Shape) != 2 {
			return nil, fmt.Errorf("geocontour: array must be 2-dimensional, got shape %v", a.Shape)
		}
		if a.Shape[0] != lon.Shape[0] || a.Shape[1] != lon.Shape[1] {
			return nil, fmt.Errorf("geocontour: array shapes %v and %v do not match",
				lon.Shape, a.Shape)
		}
	}
	rows, cols := lon.Shape[0], lon.Shape[1]
	points := make([][]GridPoint, rows)
	for i := 0; i < rows; i++ {
		points[i] = make([]GridPoint, cols)
		for j := 0; j < cols; j++ {
			points[i][j] = GridPoint{
				Lon:   lon.Get(i, j),
				Lat:   lat.Get(i, j),
				Value: val.Get(i, j),
			}
		}
	}
	return NewGrid(points)
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// Point returns the grid point at (row, col).
func (g *Grid) Point(row, col int) GridPoint { return g.points[row][col] }

// Bounds returns the rectangular extent of the grid coordinates.
func (g *Grid) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, row := range g.points {
		for _, p := range row {
			b.Extend(geom.NewBoundsPoint(geom.Point{X: p.Lon, Y: p.Lat}))
		}
	}
	return b
}

// ValueRange returns the minimum and maximum field values in the grid.
func (g *Grid) ValueRange() (min, max float64) {
	return floats.Min(g.values), floats.Max(g.values)
}
