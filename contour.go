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
	"sync"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// bandCells classifies every cell of the grid against [lower, upper) and
// builds its edges. Cells the band does not touch are absent. When
// skipSquare is set, fully-covered cells are treated as absent too; isoline
// extraction uses this to drop plateau rings.
func (g *Grid) bandCells(lower, upper float64, skipSquare bool) *cellStore {
	store := newCellStore(g.rows-1, g.cols-1)
	for r := 0; r < g.rows-1; r++ {
		for c := 0; c < g.cols-1; c++ {
			tl := g.points[r][c]
			tr := g.points[r][c+1]
			br := g.points[r+1][c+1]
			bl := g.points[r+1][c]
			if skipSquare &&
				configCode(tl.Value, tr.Value, br.Value, bl.Value, lower, upper) == 85 {
				continue
			}
			store.put(r, c, buildCell(tl, tr, br, bl, lower, upper,
				r == 0, c == g.cols-2, r == g.rows-2, c == 0))
		}
	}
	return store
}

// bandRings runs the classifier, shape builders and tracer for one band.
// Each band gets its own freshly built cell store; nothing is shared, so
// bands may run concurrently.
func (g *Grid) bandRings(lower, upper float64, skipSquare bool) [][]geom.Point {
	store := g.bandCells(lower, upper, skipSquare)
	rings := traceRings(store)
	if g.Log != nil {
		g.Log.WithFields(logrus.Fields{
			"lower": lower, "upper": upper, "rings": len(rings),
		}).Debug("geocontour: traced band")
	}
	return rings
}

func validateThresholds(thresholds []float64) error {
	if len(thresholds) < 2 {
		return fmt.Errorf("geocontour: %d thresholds: %w", len(thresholds), ErrThresholds)
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return fmt.Errorf("geocontour: thresholds %g, %g: %w",
				thresholds[i-1], thresholds[i], ErrThresholds)
		}
	}
	return nil
}

// Isobands computes one polygon set per adjacent pair of thresholds. The
// thresholds must be strictly increasing and at least two. Each returned
// MultiPolygon holds the outer rings and holes of the band
// [thresholds[i], thresholds[i+1]); a band the field never enters yields an
// empty MultiPolygon.
func (g *Grid) Isobands(thresholds []float64) ([]geom.MultiPolygon, error) {
	if err := validateThresholds(thresholds); err != nil {
		return nil, err
	}
	out := make([]geom.MultiPolygon, len(thresholds)-1)
	for i := 0; i < len(thresholds)-1; i++ {
		rings := g.bandRings(thresholds[i], thresholds[i+1], false)
		out[i] = geom.MultiPolygon(nestRings(rings))
	}
	return out, nil
}

// IsobandsParallel is Isobands with the bands fanned out over goroutines.
// Bands share no mutable state, and results are placed by band index, so
// the output is identical to the sequential version.
func (g *Grid) IsobandsParallel(thresholds []float64) ([]geom.MultiPolygon, error) {
	if err := validateThresholds(thresholds); err != nil {
		return nil, err
	}
	out := make([]geom.MultiPolygon, len(thresholds)-1)
	var wg sync.WaitGroup
	for i := 0; i < len(thresholds)-1; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rings := g.bandRings(thresholds[i], thresholds[i+1], false)
			out[i] = geom.MultiPolygon(nestRings(rings))
		}(i)
	}
	wg.Wait()
	return out, nil
}

// Isolines computes the closed contour rings at each level. A level is run
// as the degenerate band [level, nextafter(level)), which reuses the
// isoband tables; rings from fully-covered cells are excluded so that only
// the curves where the field crosses the level remain.
func (g *Grid) Isolines(levels []float64) ([][][]geom.Point, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("geocontour: no levels: %w", ErrThresholds)
	}
	out := make([][][]geom.Point, len(levels))
	for i, level := range levels {
		out[i] = g.bandRings(level, math.Nextafter(level, math.Inf(1)), true)
	}
	return out, nil
}
