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

// covNode is one entry of a coverageList.
type covNode struct {
	x     int
	delta int
	next  *covNode
}

// coverageList is a sparse, sorted map from pixel x positions to coverage
// deltas for one output row.
//
// The nodes form a single list.  The live entries run from head up to and
// including last, ordered by strictly increasing x.  Nodes after last are
// left over from earlier rows and get recycled by add.
//
// Insertion is fast when positions arrive in non-decreasing order: the
// search for the insertion point continues from the most recently touched
// node.  Call rewind before starting a new left-to-right sweep.
type coverageList struct {
	head *covNode
	last *covNode // nil if there are no live entries
	cur  *covNode // most recently touched live node, or nil
}

// add merges delta into the entry at position x, creating the entry if
// needed.
func (c *coverageList) add(x, delta int) {
	if c.last == nil {
		n := c.head
		if n == nil {
			n = &covNode{}
			c.head = n
		}
		n.x, n.delta = x, delta
		c.last = n
		c.cur = n
		return
	}

	prev := c.cur
	if prev == nil || prev.x > x {
		prev = nil
		if c.head.x <= x {
			prev = c.head
		}
	}

	if prev == nil {
		// new first entry
		n := c.detachSpare()
		n.x, n.delta = x, delta
		n.next = c.head
		c.head = n
		c.cur = n
		return
	}

	for prev != c.last && prev.next.x <= x {
		prev = prev.next
	}
	if prev.x == x {
		prev.delta += delta
		c.cur = prev
		return
	}

	if prev == c.last {
		// append; the first spare node is already in place
		n := c.last.next
		if n == nil {
			n = &covNode{}
			c.last.next = n
		}
		n.x, n.delta = x, delta
		c.last = n
		c.cur = n
		return
	}

	n := c.detachSpare()
	n.x, n.delta = x, delta
	n.next = prev.next
	prev.next = n
	c.cur = n
}

// detachSpare unlinks and returns a recyclable node.
// It must only be called while the list has live entries.
func (c *coverageList) detachSpare() *covNode {
	n := c.last.next
	if n == nil {
		return &covNode{}
	}
	c.last.next = n.next
	n.next = nil
	return n
}

// clear removes all entries.  The nodes are kept for reuse.
func (c *coverageList) clear() {
	c.last = nil
	c.cur = nil
}

// rewind makes the next add search from the start of the list.
func (c *coverageList) rewind() {
	c.cur = nil
}

// isEmpty reports whether the list has no live entries.
func (c *coverageList) isEmpty() bool {
	return c.last == nil
}

// all iterates over the live entries in order of increasing x.
func (c *coverageList) all(yield func(x, delta int) bool) {
	if c.last == nil {
		return
	}
	for n := c.head; ; n = n.next {
		if !yield(n.x, n.delta) || n == c.last {
			return
		}
	}
}
