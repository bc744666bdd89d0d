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

// pointInRing reports whether p lies inside the ring by crossing count.
// The strict inequalities break ties on edges consistently; geom's Within
// counts edge points as inside, which would misclassify rings that share
// band boundary points, so the test is done here.
func pointInRing(p geom.Point, ring []geom.Point) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ringInRing reports whether every vertex of a lies inside b.
func ringInRing(a, b []geom.Point) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for _, p := range a {
		if !pointInRing(p, b) {
			return false
		}
	}
	return true
}

// nestRings organizes the flat ring set of one band into a forest of outer
// rings with holes. Each candidate is tested against the polygons placed so
// far: a ring inside an outer but not inside any of its holes becomes a new
// hole; a ring inside a hole is pushed out and stays a top-level candidate.
// A candidate that swallows an already-placed polygon sends that polygon's
// rings back onto the queue for reclassification. O(n²) in the number of
// rings, which stays small per band in practice.
func nestRings(rings [][]geom.Point) []geom.Polygon {
	type polygon struct {
		outer []geom.Point
		holes [][]geom.Point
	}
	var placed []*polygon

	// Rings are classified in trace order, first in, first out. A hole may
	// be traced before its outer ring; it is then placed provisionally and
	// re-queued when the outer ring swallows it. Re-queued rings go to the
	// back so they are seen again only after their new container is placed.
	queue := make([][]geom.Point, len(rings))
	copy(queue, rings)

	for len(queue) > 0 {
		subject := queue[0]
		queue = queue[1:]

		attached := false
		for _, p := range placed {
			if !ringInRing(subject, p.outer) {
				continue
			}
			insideHole := false
			for _, h := range p.holes {
				if ringInRing(subject, h) {
					insideHole = true
					break
				}
			}
			if !insideHole {
				p.holes = append(p.holes, subject)
				attached = true
				break
			}
			// Inside a hole: pushed out; keep scanning the other placed
			// polygons, which may contain the subject themselves.
		}

		// Even when the subject became a hole, it may also contain
		// already-placed polygons; those must be re-queued so they nest
		// under the subject (or get pushed back out of it).
		for i := 0; i < len(placed); {
			p := placed[i]
			if ringInRing(p.outer, subject) {
				placed = append(placed[:i], placed[i+1:]...)
				queue = append(queue, p.outer)
				queue = append(queue, p.holes...)
			} else {
				i++
			}
		}

		if !attached {
			placed = append(placed, &polygon{outer: subject})
		}
	}

	out := make([]geom.Polygon, len(placed))
	for i, p := range placed {
		poly := make(geom.Polygon, 0, 1+len(p.holes))
		poly = append(poly, geom.Path(p.outer))
		for _, h := range p.holes {
			poly = append(poly, geom.Path(h))
		}
		out[i] = poly
	}
	return out
}
