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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	// Uniform scaling
	{
		Name:   "scale_2x",
		Shape:  Polygons(rectPoly(0, 0, 20, 20)),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Shape:  Polygons(rectPoly(0, 0, 80, 80)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},

	// Rotation
	{
		Name:   "rotate_45deg",
		Shape:  Polygons(rectPoly(-10, -10, 10, 10)),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Shape:  Polygons(rectPoly(-20, -10, 20, 10)),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},

	// Non-uniform scaling
	{
		Name:   "polygon_to_ellipse",
		Shape:  Polygons(regularPolygon(0, 0, 15, 64)),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},

	// Shear
	{
		Name:   "shear_horizontal",
		Shape:  Polygons(rectPoly(-15, -15, 15, 15)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "shear_and_rotate",
		Shape:  Polygons(rectPoly(-12, -12, 12, 12)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
	},
}
