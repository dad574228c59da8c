// seehuhn.de/go/scanline - a scanline rasteriser
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanline

import "golang.org/x/image/math/fixed"

// activeEdges is the list of edges crossing the current sample line.
type activeEdges struct {
	edges []*edge
}

func (a *activeEdges) reset() {
	clear(a.edges)
	a.edges = a.edges[:0]
}

// add appends all edges of a bucket chain.
func (a *activeEdges) add(e *edge) {
	for ; e != nil; e = e.scanlineNext {
		a.edges = append(a.edges, e)
	}
}

// intersectSortAndPack prepares the list for the sample line at height y.
// Edges which end at or above y are removed, the remaining edges get their
// x intersection updated, and the list is sorted by x.
//
// Edges are active on the half-open interval [y0, y1).
func (a *activeEdges) intersectSortAndPack(y fixed.Int26_6) {
	j := 0
	for _, e := range a.edges {
		if e.y1 <= y {
			continue
		}
		e.x = e.xAt(y)
		a.edges[j] = e
		j++
	}
	clear(a.edges[j:])
	a.edges = a.edges[:j]

	// The order changes little from one row to the next, so insertion
	// sort is close to linear here.  Equal keys keep their order.
	for i := 1; i < len(a.edges); i++ {
		e := a.edges[i]
		k := i - 1
		for k >= 0 && a.edges[k].x > e.x {
			a.edges[k+1] = a.edges[k]
			k--
		}
		a.edges[k+1] = e
	}
}
