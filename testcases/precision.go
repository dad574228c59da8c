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

import "seehuhn.de/go/geom/path"

var precisionCases = []TestCase{
	// Subpixel positioning
	{
		Name:   "subpixel_offset_00",
		Shape:  offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_25",
		Shape:  offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_50",
		Shape:  offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_75",
		Shape:  offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_sliver",
		Shape:  Polygons(rectPoly(5, 10.25, 59, 10.75)),
		Width:  64,
		Height: 64,
	},

	// Large coordinates
	{
		Name:   "large_coord_centered",
		Shape:  largeOffsetRectangle(1000, 1000, 20),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "small_shape_large_offset",
		Shape:  largeOffsetRectangle(10000, 10000, 2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "float64_precision",
		Shape:  float64PrecisionShape(),
		Width:  64,
		Height: 64,
	},
}

// offsetRectangle builds a rectangle with a subpixel offset applied to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) path.Path {
	return Polygons(rectPoly(x1+offset, y1+offset, x1+w+offset, y1+h+offset))
}

// largeOffsetRectangle builds a square centred at large coordinates,
// and translates it back to the canvas centre (32, 32).
func largeOffsetRectangle(cx, cy, size float64) path.Path {
	translateX := 32 - cx
	translateY := 32 - cy

	x1 := cx - size/2 + translateX
	y1 := cy - size/2 + translateY
	x2 := cx + size/2 + translateX
	y2 := cy + size/2 + translateY
	return Polygons(rectPoly(x1, y1, x2, y2))
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() path.Path {
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2
	return Polygons(rectPoly(x1, y1, x2, y2))
}
