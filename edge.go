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

import (
	"slices"

	"golang.org/x/image/math/fixed"
)

// edgeRole tells which boundary an edge belongs to.
type edgeRole uint8

const (
	roleShape edgeRole = iota
	roleClip
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 fixed.Int26_6 // upper end point
	x1, y1 fixed.Int26_6 // lower end point, y1 > y0
	role   edgeRole

	// x is the intersection with the most recent sample line.
	x fixed.Int26_6

	poolNext     *edge // owned by edgePool
	scanlineNext *edge // owned by the bucket table
}

// init sets up e for the segment from (xa, ya) to (xb, yb).
// The caller guarantees ya != yb.
func (e *edge) init(xa, ya, xb, yb fixed.Int26_6, role edgeRole) {
	if ya > yb {
		xa, ya, xb, yb = xb, yb, xa, ya
	}
	e.x0, e.y0 = xa, ya
	e.x1, e.y1 = xb, yb
	e.role = role
	e.x = xa
	e.scanlineNext = nil
}

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y fixed.Int26_6) fixed.Int26_6 {
	return e.x0 + fixedMulDiv(y-e.y0, e.x1-e.x0, e.y1-e.y0)
}

// edgePool hands out edges and keeps them for the next pass.
//
// All edges ever allocated form a list through poolNext.  The nodes from
// head up to (but excluding) next are in use in the current pass.
type edgePool struct {
	head, tail *edge
	next       *edge
	size       int
}

// get returns an edge for the current pass.
func (p *edgePool) get() *edge {
	if e := p.next; e != nil {
		p.next = e.poolNext
		return e
	}
	e := &edge{}
	if p.tail == nil {
		p.head = e
	} else {
		p.tail.poolNext = e
	}
	p.tail = e
	p.size++
	return e
}

// reset marks all edges as unused, without releasing them.
func (p *edgePool) reset() {
	p.next = p.head
}

// inUse calls yield for every edge handed out since the last reset.
func (p *edgePool) inUse(yield func(*edge) bool) {
	for e := p.head; e != p.next; e = e.poolNext {
		if !yield(e) {
			return
		}
	}
}

// len returns the number of edges retained by the pool.
func (p *edgePool) len() int {
	return p.size
}

// bucketTable holds, for every row of a pass, the list of edges which
// become active on that row.
type bucketTable struct {
	rows []*edge
}

// reset empties all buckets, keeping the table's capacity.
func (b *bucketTable) reset() {
	clear(b.rows)
	b.rows = b.rows[:0]
}

// insert prepends e to the bucket with the given row index.
func (b *bucketTable) insert(idx int, e *edge) {
	if idx >= len(b.rows) {
		n := max(idx+1, 2*len(b.rows))
		b.rows = slices.Grow(b.rows, n-len(b.rows))[:n]
	}
	e.scanlineNext = b.rows[idx]
	b.rows[idx] = e
}

// get returns the bucket for the given row index.
// Rows past the end of the table are empty.
func (b *bucketTable) get(idx int) *edge {
	if idx < 0 || idx >= len(b.rows) {
		return nil
	}
	return b.rows[idx]
}
