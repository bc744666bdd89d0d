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

// traceRings assembles every ring of one band, consuming the store's edges.
// The (row, col) sweep and the in-order choice of starting edges make the
// emission order deterministic. A cell is revisited until it is cleared:
// double-saddle cells hold two disjoint chains and a single pass would miss
// the second region.
func traceRings(store *cellStore) [][]geom.Point {
	var rings [][]geom.Point
	for r := 0; r < store.rows; r++ {
		for c := 0; c < store.cols; c++ {
			for !store.cleared(r, c) {
				if ring := traceRing(store, r, c); ring != nil {
					rings = append(rings, ring)
				}
			}
		}
	}
	return rings
}

// traceRing starts a ring at cell (row, col) and follows chained edges from
// cell to cell until the ring closes on its starting point. Each edge is
// consumed as it is visited, so every edge participates in exactly one
// trace. Closure compares coordinates bit-identically; both cells sharing a
// side crossing interpolate it from identical inputs through the identical
// formula, so the shared point carries identical bits.
//
// A chain that runs off the grid, into an absent cell, or onto a point with
// no outgoing edge is a malformed open ring: it is discarded silently (its
// edges stay consumed). Such rings arise from degenerate bands at the grid
// boundary.
func traceRing(store *cellStore, row, col int) []geom.Point {
	c := store.at(row, col)
	if c == nil {
		return nil
	}
	last, ok := c.takeStartingEdge()
	if !ok {
		return nil
	}
	start := last.Start
	edges := []Edge{last}

	for last.End != start {
		// Drain the current cell first: the continuation of a ring stays
		// within the cell until the point at hand has no outgoing edge
		// here, and only then does the edge's move direct the hop.
		chain := c.takeChainFrom(last.End)
		if len(chain) == 0 {
			dr, dc, cross := last.Move.delta()
			if !cross {
				return nil // open ring
			}
			next := store.at(row+dr, col+dc)
			if next == nil {
				return nil // open ring: ran off the grid or into an empty cell
			}
			if chain = next.takeChainFrom(last.End); len(chain) == 0 {
				return nil // open ring
			}
			row, col, c = row+dr, col+dc, next
		}
		edges = append(edges, chain...)
		last = chain[len(chain)-1]
	}

	// Three distinct vertices plus closure is the smallest valid ring.
	if len(edges) < 3 {
		return nil
	}
	ring := make([]geom.Point, 0, len(edges)+1)
	ring = append(ring, start)
	for _, e := range edges {
		ring = append(ring, e.End)
	}
	return ring
}
