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
	"math"

	"golang.org/x/image/math/fixed"
)

// Device coordinates are 26.6 fixed-point numbers.
const (
	fixedDigits = 6

	one     fixed.Int26_6 = 1 << fixedDigits
	half    fixed.Int26_6 = one / 2
	fracMax fixed.Int26_6 = one - 1
)

// toFixed converts a device coordinate to 26.6, rounding to the nearest
// representable value.
func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * float64(one)))
}

// fixedFrac returns the sub-pixel part of x, in the range [0, one).
func fixedFrac(x fixed.Int26_6) fixed.Int26_6 {
	return x & fracMax
}

// fixedMulDiv computes a*b/c with a 64-bit intermediate product,
// rounding to the nearest integer.  c must be positive.
func fixedMulDiv(a, b, c fixed.Int26_6) fixed.Int26_6 {
	num := int64(a) * int64(b)
	den := int64(c)
	if num >= 0 {
		return fixed.Int26_6((num + den/2) / den)
	}
	return fixed.Int26_6(-((-num + den/2) / den))
}

// fixedFloorDiv returns floor(a/b) for positive b.
func fixedFloorDiv(a, b fixed.Int26_6) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return int(q)
}

// fixedCeilDiv returns ceil(a/b) for positive b.
func fixedCeilDiv(a, b fixed.Int26_6) int {
	return -fixedFloorDiv(-a, b)
}
