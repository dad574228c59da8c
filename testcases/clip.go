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

import "seehuhn.de/go/geom/vec"

var clipCases = []TestCase{
	{
		Name:   "rect_clip_triangle",
		Shape:  Polygons(rectPoly(8, 8, 56, 56)),
		Clip:   Polygons([]vec.Vec2{pt(32, 0), pt(64, 64), pt(0, 64)}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_clip_rect",
		Shape:  fivePointStar(32, 32, 28),
		Clip:   Polygons(rectPoly(16, 16, 48, 48)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "octagon_clip_ring",
		Shape:  Polygons(regularPolygon(32, 32, 28, 8)),
		Clip:   ringShape(32, 32, 20, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "disjoint_clip",
		Shape:  Polygons(rectPoly(4, 4, 20, 20)),
		Clip:   Polygons(rectPoly(40, 40, 60, 60)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "clip_outside_canvas",
		Shape:  Polygons(rectPoly(10, 10, 54, 54)),
		Clip:   Polygons(rectPoly(-20, 30, 100, 200)),
		Width:  64,
		Height: 64,
	},
}
