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

// largeCases contains test cases with many rows and long spans.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Shape:  Polygons(rectPoly(50, 50, 462, 462)),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_concentric",
		Shape:  Polygons(rectPoly(56, 56, 456, 456), rectPoly(156, 156, 356, 356)),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_diamond",
		Shape:  Polygons([]vec.Vec2{pt(256, 76), pt(436, 256), pt(256, 436), pt(76, 256)}),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_grid",
		Shape:  rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
	},
	{
		// extends past the left and right canvas edges
		Name:   "large_clipped",
		Shape:  Polygons(rectPoly(-100, 100, 612, 400)),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_polygon",
		Shape:  Polygons(regularPolygon(256, 256, 240, 360)),
		Width:  512,
		Height: 512,
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var polys [][]vec.Vec2
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			polys = append(polys, rectPoly(x1, y1, x2, y2))
		}
	}
	return Polygons(polys...)
}
