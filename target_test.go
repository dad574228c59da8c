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
	"image"
	"testing"
)

func TestAlphaTargetClipsToImage(t *testing.T) {
	img := image.NewAlpha(image.Rect(2, 3, 6, 5))
	tgt := AlphaTarget{Img: img}

	tgt.FillScanline(-10, 4, 3)
	tgt.FillScanlineAA(5, 100, 4, 77)
	tgt.FillScanline(0, 10, 2)     // above the image
	tgt.FillScanline(0, 10, 5)     // below the image
	tgt.FillScanlineAA(7, 9, 4, 1) // right of the image

	want := map[image.Point]uint8{
		{2, 3}: 255,
		{3, 3}: 255,
		{5, 4}: 77,
	}
	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			p := image.Pt(x, y)
			if got := img.AlphaAt(x, y).A; got != want[p] {
				t.Errorf("pixel %v: alpha %d, want %d", p, got, want[p])
			}
		}
	}
}
