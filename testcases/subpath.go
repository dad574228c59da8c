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
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Shape:  twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "overlapping_rect",
		Shape:  Polygons(rectPoly(10, 10, 40, 40), rectPoly(24, 24, 54, 54)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_shape",
		Shape:  ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "multiple_rings",
		Shape:  multipleRings(64, 64),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "many_small_shapes",
		Shape:  manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return Polygons(
		[]vec.Vec2{pt(cx1, cy1-size), pt(cx1+size, cy1+size), pt(cx1-size, cy1+size)},
		[]vec.Vec2{pt(cx2, cy2-size), pt(cx2+size, cy2+size), pt(cx2-size, cy2+size)},
	)
}

// ringShape builds a ring (outer square with inner square cutout).
// Both squares run clockwise; the hole comes from the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	return Polygons(
		rectPoly(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize),
		rectPoly(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize),
	)
}

// multipleRings builds three square donuts.
func multipleRings(cx, cy float64) path.Path {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	var polys [][]vec.Vec2
	for _, ring := range rings {
		polys = append(polys,
			rectPoly(ring.cx-ring.outer, ring.cy-ring.outer, ring.cx+ring.outer, ring.cy+ring.outer),
			rectPoly(ring.cx-ring.inner, ring.cy-ring.inner, ring.cx+ring.inner, ring.cy+ring.inner))
	}
	return Polygons(polys...)
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) path.Path {
	const size = 5.0
	const spacing = 14.0

	var polys [][]vec.Vec2
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			polys = append(polys, []vec.Vec2{pt(cx, cy-size), pt(cx+size, cy+size), pt(cx-size, cy+size)})
		}
	}
	return Polygons(polys...)
}
