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

import "image"

// Target receives the output of a Rasteriser.
//
// Both methods describe the half-open pixel range [x0, x1) on row y.
// FillScanline is used for fully covered runs in aliased mode.
// FillScanlineAA is used in anti-aliased mode, once per pixel,
// with alpha giving the pixel coverage from 1 to 255.  The pixel x is
// reported as FillScanlineAA(x, x+1, y, alpha); adapters for an interface
// which passes a single pixel as (x, x, y) must subtract one from x1.
type Target interface {
	FillScanline(x0, x1, y int)
	FillScanlineAA(x0, x1, y int, alpha uint8)
}

// AlphaTarget writes coverage values into an alpha mask.
// Existing values are overwritten.
//
// Concurrent calls are safe as long as they write to different rows.
type AlphaTarget struct {
	Img *image.Alpha
}

// FillScanline implements the Target interface.
func (t AlphaTarget) FillScanline(x0, x1, y int) {
	t.fill(x0, x1, y, 255)
}

// FillScanlineAA implements the Target interface.
func (t AlphaTarget) FillScanlineAA(x0, x1, y int, alpha uint8) {
	t.fill(x0, x1, y, alpha)
}

func (t AlphaTarget) fill(x0, x1, y int, alpha uint8) {
	b := t.Img.Rect
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	x0 = max(x0, b.Min.X)
	x1 = min(x1, b.Max.X)
	if x0 >= x1 {
		return
	}
	row := t.Img.Pix[t.Img.PixOffset(x0, y):]
	for i := range x1 - x0 {
		row[i] = alpha
	}
}
