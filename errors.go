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

import "errors"

// Input errors surfaced at the API boundary. When one of these is returned
// no partial results are produced.
var (
	// ErrTooSmall indicates a grid with fewer than two rows or columns.
	ErrTooSmall = errors.New("grid must be at least 2x2")

	// ErrNonRectangular indicates that grid rows have inconsistent lengths.
	ErrNonRectangular = errors.New("grid rows have inconsistent lengths")

	// ErrNaN indicates a grid value that is NaN.
	ErrNaN = errors.New("grid contains NaN values")

	// ErrCoordinates indicates a grid coordinate outside the valid
	// longitude/latitude range.
	ErrCoordinates = errors.New("coordinates outside valid lon/lat range")

	// ErrThresholds indicates missing or non-increasing threshold levels.
	ErrThresholds = errors.New("thresholds must be strictly increasing")
)
