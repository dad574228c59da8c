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
	"fmt"
	"math"
	"slices"

	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// MaxResolution is the largest supported value for Rasteriser.Resolution.
// At this resolution every sub-row is one fixed-point unit high.
const MaxResolution = fixedDigits

// Rasteriser converts polygonal outlines into scanline fill operations.
// The caller creates one instance and reuses it for multiple shapes.
// Internal buffers grow as needed but never shrink, so that rendering
// does not allocate in steady state.
//
// A Rasteriser is not safe for concurrent use.  Use a Pool to render
// disjoint row bands in parallel.
type Rasteriser struct {
	// CTM maps path coordinates to device coordinates.
	CTM matrix.Matrix

	// Bounds is the device region which may be written.
	// Coordinates must be integer-aligned, with LLy the top row, and
	// must lie within ±2^22 pixels of the origin.  Path coordinates
	// are not restricted.
	Bounds rect.Rect

	// Resolution selects aliased output (0) or anti-aliasing with
	// 2^Resolution sub-rows per pixel row (1 to MaxResolution).
	Resolution int

	pool    edgePool
	buckets bucketTable
	active  activeEdges
	cov     coverageList
	xCov    []int32 // horizontal coverage corrections, indexed by x - xBase

	// state of the current pass
	bboxFirst  bool
	minX, maxX fixed.Int26_6
	minY, maxY fixed.Int26_6
	step       fixed.Int26_6 // height of a sub-row
	halfStep   fixed.Int26_6
	alphaRes   int // alpha contribution of one fully covered sub-row
	xBase      int
	devX0      int // device bounds in pixels
	devX1      int
	devY0      int
	devY1      int
}

// NewRasteriser returns a Rasteriser which writes into the given device
// region, with an identity CTM and aliased output.
func NewRasteriser(bounds rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:    matrix.Identity,
		Bounds: bounds,
	}
}

// Reset restores the default settings with new device bounds,
// keeping the internal buffers for reuse.
func (r *Rasteriser) Reset(bounds rect.Rect) {
	r.CTM = matrix.Identity
	r.Bounds = bounds
	r.Resolution = 0
	r.clear()
}

// clear forgets everything from the previous pass.
func (r *Rasteriser) clear() {
	r.pool.reset()
	r.buckets.reset()
	r.active.reset()
	r.cov.clear()
	r.bboxFirst = true
}

// setResolution prepares the sub-row geometry for 2^k sub-rows per pixel.
func (r *Rasteriser) setResolution(k int) {
	k = min(max(k, 0), MaxResolution)
	r.step = one >> k
	r.halfStep = r.step / 2
	r.alphaRes = 256 >> k
}

// RenderShape fills the shape, using the even-odd rule, and sends the
// result to t.  If clip is not nil, only the part of the shape inside clip
// (again using the even-odd rule) is filled.
//
// Both paths must consist of MoveTo, LineTo and Close commands only;
// curves must be flattened by the caller.  Subpaths which are not closed
// explicitly are closed implicitly.  Segments with infinite or NaN
// coordinates are ignored.
func (r *Rasteriser) RenderShape(shape, clip path.Path, t Target) {
	r.clear()
	r.setResolution(r.Resolution)

	r.devX0 = int(r.Bounds.LLx)
	r.devX1 = int(r.Bounds.URx)
	r.devY0 = int(r.Bounds.LLy)
	r.devY1 = int(r.Bounds.URy)
	if r.devX0 >= r.devX1 || r.devY0 >= r.devY1 {
		return
	}

	r.addBoundary(shape, roleShape)
	haveClip := clip != nil
	if haveClip {
		r.addBoundary(clip, roleClip)
	}
	if r.bboxFirst {
		return // no vertices
	}

	// Only edges which reach into the visible rows are bucketed, so that
	// the bucket table never exceeds the height of Bounds.
	top := fixed.I(r.devY0)
	upper := fixed.Int26_6(fixedFloorDiv(max(r.minY, top), r.step)) * r.step
	yEnd := min(r.maxY, fixed.I(r.devY1)-1)
	for e := range r.pool.inUse {
		if e.y1 <= top {
			continue
		}
		// first row whose sample line reaches the top of the edge
		idx := max(fixedCeilDiv(e.y0-r.halfStep-upper, r.step), 0)
		if upper+fixed.Int26_6(idx)*r.step > yEnd {
			continue
		}
		r.buckets.insert(idx, e)
	}

	aa := r.step < one
	if aa {
		r.prepareCoverage()
	}

	for i := 0; ; i++ {
		y := upper + fixed.Int26_6(i)*r.step
		if y > yEnd {
			break
		}
		r.active.add(r.buckets.get(i))
		r.active.intersectSortAndPack(y + r.halfStep)

		py := y.Floor()
		if !aa {
			r.doScanline(py, haveClip, t)
			continue
		}

		r.cov.rewind()
		r.doScanlineCov(haveClip)
		if next := y + r.step; next > yEnd || next.Floor() != py {
			r.flush(py, t)
		}
	}
}

// addBoundary converts a path into edges with the given role.
func (r *Rasteriser) addBoundary(p path.Path, role edgeRole) {
	var cur, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addSegment(cur, start, role)
			}
			cur = r.toDevice(pts[0])
			start = cur
			open = true
		case path.CmdLineTo:
			next := r.toDevice(pts[0])
			r.addSegment(cur, next, role)
			cur = next
		case path.CmdClose:
			r.addSegment(cur, start, role)
			cur = start
			open = false
		default:
			panic(fmt.Sprintf("scanline: unsupported path command %d (curves must be flattened)", cmd))
		}
	}
	if open {
		r.addSegment(cur, start, role)
	}
}

// toDevice applies the CTM.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// clipMargin is the distance in pixels from Bounds beyond which segments
// are cut before conversion to fixed-point.
const clipMargin = 1 << 22

// addSegment adds the device space segment a-b.
//
// Segments which reach further than clipMargin from Bounds are cut first:
// the parts above or below the window are dropped, and the parts left or
// right of it are replaced by vertical edges on the window border.  These
// toggle the even-odd state for the same sample lines as the original
// parts.  Segments inside the window are used unchanged.
func (r *Rasteriser) addSegment(a, b vec.Vec2, role edgeRole) {
	if a.Y == b.Y || !isFinite(a) || !isFinite(b) {
		return
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	top := float64(r.devY0 - clipMargin)
	bottom := float64(r.devY1 + clipMargin)
	if b.Y <= top || a.Y >= bottom {
		return
	}
	if a.Y < top {
		a = vec.Vec2{X: a.X + (top-a.Y)*(b.X-a.X)/(b.Y-a.Y), Y: top}
	}
	if b.Y > bottom {
		b = vec.Vec2{X: a.X + (bottom-a.Y)*(b.X-a.X)/(b.Y-a.Y), Y: bottom}
	}

	left := float64(r.devX0 - clipMargin)
	right := float64(r.devX1 + clipMargin)

	// split where the segment crosses the margin lines
	var cuts [2]float64
	n := 0
	for _, xc := range [2]float64{left, right} {
		if (a.X < xc) != (b.X < xc) {
			cuts[n] = (xc - a.X) / (b.X - a.X)
			n++
		}
	}
	if n == 2 && cuts[0] > cuts[1] {
		cuts[0], cuts[1] = cuts[1], cuts[0]
	}

	prev := r.clampX(a, left, right)
	for _, t := range cuts[:n] {
		p := vec.Vec2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
		q := r.clampX(p, left, right)
		r.addEdge(prev, q, role)
		prev = q
	}
	r.addEdge(prev, r.clampX(b, left, right), role)
}

// clampX converts p to fixed-point, moving it horizontally into [left, right].
func (r *Rasteriser) clampX(p vec.Vec2, left, right float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: toFixed(min(max(p.X, left), right)),
		Y: toFixed(p.Y),
	}
}

func isFinite(p vec.Vec2) bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// addVertex extends the bounding box of the current pass.
func (r *Rasteriser) addVertex(p fixed.Point26_6) {
	if r.bboxFirst {
		r.minX, r.maxX = p.X, p.X
		r.minY, r.maxY = p.Y, p.Y
		r.bboxFirst = false
		return
	}
	r.minX = min(r.minX, p.X)
	r.maxX = max(r.maxX, p.X)
	r.minY = min(r.minY, p.Y)
	r.maxY = max(r.maxY, p.Y)
}

// addEdge records a line segment in fixed-point device coordinates.
// Horizontal segments never cross a sample line and are skipped.
func (r *Rasteriser) addEdge(a, b fixed.Point26_6, role edgeRole) {
	if a.Y == b.Y {
		return
	}
	r.addVertex(a)
	r.addVertex(b)
	r.pool.get().init(a.X, a.Y, b.X, b.Y, role)
}

// doScanline emits the spans of one pixel row in aliased mode.
func (r *Rasteriser) doScanline(py int, haveClip bool, t Target) {
	insideShape := false
	insideClip := !haveClip
	var prev fixed.Int26_6
	for _, e := range r.active.edges {
		if insideShape && insideClip {
			// pixels whose centres lie in [prev, e.x)
			x0 := max((prev - half).Ceil(), r.devX0)
			x1 := min((e.x - half).Ceil(), r.devX1)
			if x0 < x1 {
				t.FillScanline(x0, x1, py)
			}
		}
		switch e.role {
		case roleShape:
			insideShape = !insideShape
		case roleClip:
			insideClip = !insideClip
		}
		prev = e.x
	}
}

// prepareCoverage sizes the horizontal coverage buffer for the current pass.
func (r *Rasteriser) prepareCoverage() {
	r.xBase = max(r.minX.Floor(), r.devX0)
	hi := min(r.maxX.Floor(), r.devX1)
	n := max(hi-r.xBase+1, 0)
	r.xCov = slices.Grow(r.xCov[:0], n)[:n]
	clear(r.xCov)
}

// doScanlineCov accumulates the coverage of one sub-row.
//
// A run [xa, xb) contributes alphaRes to every pixel from floor(xa) to
// floor(xb)-1, minus the uncovered part of the first pixel, plus the
// covered part of the last pixel.  The constant part is stored as a
// difference in r.cov, the fractional parts (in units of 1/64 pixel)
// in r.xCov.
func (r *Rasteriser) doScanlineCov(haveClip bool) {
	left := fixed.I(r.devX0)
	right := fixed.I(r.devX1)

	insideShape := false
	insideClip := !haveClip
	var prev fixed.Int26_6
	for _, e := range r.active.edges {
		if insideShape && insideClip {
			xa := max(prev, left)
			xb := min(e.x, right)
			if xa < xb {
				pa := xa.Floor()
				pb := xb.Floor()
				r.cov.add(pa, r.alphaRes)
				r.cov.add(pb, -r.alphaRes)
				r.xCov[pa-r.xBase] -= int32(fixedFrac(xa))
				r.xCov[pb-r.xBase] += int32(fixedFrac(xb))
			}
		}
		switch e.role {
		case roleShape:
			insideShape = !insideShape
		case roleClip:
			insideClip = !insideClip
		}
		prev = e.x
	}
}

// flush converts the accumulated coverage of pixel row py into alpha
// values, sends them to t, and clears the accumulators.
func (r *Rasteriser) flush(py int, t Target) {
	running := 0
	prevX := 0
	started := false
	for x, delta := range r.cov.all {
		if started && running > 0 {
			alpha := clampAlpha(running)
			for px := prevX + 1; px < x; px++ {
				t.FillScanlineAA(px, px+1, py, alpha)
			}
		}

		running += delta
		idx := x - r.xBase
		v := running + int(r.xCov[idx])*r.alphaRes/int(one)
		r.xCov[idx] = 0
		if alpha := clampAlpha(v); alpha > 0 && x < r.devX1 {
			t.FillScanlineAA(x, x+1, py, alpha)
		}

		prevX = x
		started = true
	}
	r.cov.clear()
}

// clampAlpha limits a coverage value to the range of a byte.
// Full coverage of all sub-rows adds up to 256, which maps to 255.
func clampAlpha(v int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
