package scanline

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestEdgeInit(t *testing.T) {
	var e edge
	e.init(fixed.I(5), fixed.I(10), fixed.I(1), fixed.I(2), roleClip)
	if e.y0 != fixed.I(2) || e.y1 != fixed.I(10) {
		t.Errorf("end points not ordered: y0=%d y1=%d", e.y0, e.y1)
	}
	if e.x0 != fixed.I(1) || e.x1 != fixed.I(5) {
		t.Errorf("x coordinates not swapped with y: x0=%d x1=%d", e.x0, e.x1)
	}
	if e.role != roleClip {
		t.Errorf("role = %d, want %d", e.role, roleClip)
	}
}

func TestEdgeXAt(t *testing.T) {
	var e edge
	e.init(0, 0, fixed.I(8), fixed.I(4), roleShape)
	cases := []struct {
		y, want fixed.Int26_6
	}{
		{0, 0},
		{fixed.I(1), fixed.I(2)},
		{fixed.I(2) + half, fixed.I(5)},
		{fixed.I(4), fixed.I(8)},
	}
	for _, c := range cases {
		if got := e.xAt(c.y); got != c.want {
			t.Errorf("xAt(%d) = %d, want %d", c.y, got, c.want)
		}
	}
}

func TestEdgePoolReuse(t *testing.T) {
	var p edgePool

	count := func() int {
		n := 0
		for range p.inUse {
			n++
		}
		return n
	}

	for range 5 {
		p.get()
	}
	if p.len() != 5 || count() != 5 {
		t.Fatalf("len=%d, in use=%d, want 5 and 5", p.len(), count())
	}

	p.reset()
	if count() != 0 {
		t.Errorf("%d edges in use after reset", count())
	}
	first := p.get()
	if first != p.head {
		t.Error("reset pool did not reuse its first edge")
	}
	for range 2 {
		p.get()
	}
	if p.len() != 5 || count() != 3 {
		t.Errorf("len=%d, in use=%d, want 5 and 3", p.len(), count())
	}

	p.reset()
	for range 7 {
		p.get()
	}
	if p.len() != 7 || count() != 7 {
		t.Errorf("len=%d, in use=%d, want 7 and 7", p.len(), count())
	}
}

func TestBucketTable(t *testing.T) {
	var b bucketTable
	var e1, e2, e3 edge

	b.insert(0, &e1)
	b.insert(9, &e2)
	b.insert(9, &e3)

	if b.get(0) != &e1 || e1.scanlineNext != nil {
		t.Error("bucket 0 is wrong")
	}
	n := 0
	for e := b.get(9); e != nil; e = e.scanlineNext {
		n++
	}
	if n != 2 {
		t.Errorf("bucket 9 has %d edges, want 2", n)
	}
	for _, idx := range []int{-1, 3, 10, 1000} {
		if b.get(idx) != nil {
			t.Errorf("bucket %d is not empty", idx)
		}
	}

	b.reset()
	for idx := range 20 {
		if b.get(idx) != nil {
			t.Errorf("bucket %d not empty after reset", idx)
		}
	}
}

func TestActiveEdges(t *testing.T) {
	mk := func(xTop, xBottom, yTop, yBottom int) *edge {
		e := &edge{}
		e.init(fixed.I(xTop), fixed.I(yTop), fixed.I(xBottom), fixed.I(yBottom), roleShape)
		return e
	}
	a := mk(10, 10, 0, 10) // vertical, x=10
	b := mk(0, 20, 0, 10)  // crosses a at y=5
	c := mk(30, 30, 0, 2)  // ends early

	var list activeEdges
	b.scanlineNext = c
	list.add(a)
	list.add(b)

	list.intersectSortAndPack(fixed.I(1))
	got := list.edges
	if len(got) != 3 || got[0] != b || got[1] != a || got[2] != c {
		t.Fatalf("wrong order at y=1")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].x > got[i].x {
			t.Errorf("not sorted at y=1")
		}
	}

	list.intersectSortAndPack(fixed.I(2))
	if len(list.edges) != 2 {
		t.Fatalf("got %d edges at y=2, want 2", len(list.edges))
	}

	list.intersectSortAndPack(fixed.I(8))
	got = list.edges
	if got[0] != a || got[1] != b {
		t.Errorf("crossing edges not reordered")
	}
	if b.x != fixed.I(16) {
		t.Errorf("b.x = %d, want %d", b.x, fixed.I(16))
	}

	list.intersectSortAndPack(fixed.I(10))
	if len(list.edges) != 0 {
		t.Errorf("%d edges left at y=10", len(list.edges))
	}
}
