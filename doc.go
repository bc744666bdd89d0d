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

// Package geocontour generates isobands (filled contour polygons) and
// isolines (contour lines) from rectangular grids of geographic points.
//
// Each grid point carries a pre-transformed WGS84 coordinate and a scalar
// value. For a monotone sequence of threshold levels the package computes,
// per half-open band [lower, upper), a set of closed polygonal rings using
// a three-level marching squares classification, assembles the rings by
// tracing chained cell edges, and nests them into polygons with holes.
//
// Grids are read-only once constructed and bands are computed independently,
// so callers may process bands concurrently; see Grid.IsobandsParallel.
package geocontour
