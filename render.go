// Package scanline implements a scanline rasteriser for polygonal shapes.
//
// A Rasteriser fills a shape, optionally intersected with a clip shape,
// using the even-odd rule.  The output is delivered to a Target either as
// fully covered pixel spans (aliased mode) or as per-pixel coverage values
// (anti-aliased mode).  Curves must be flattened by the caller.
package scanline

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/scanline/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
// The resolution argument is used as Rasteriser.Resolution.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int, resolution int) {
	r := NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.Resolution = resolution
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	r.RenderShape(tc.Shape, tc.Clip, bufferTarget{buf: buf, stride: stride})
}

// bufferTarget writes coverage values into a row-major byte buffer.
type bufferTarget struct {
	buf    []byte
	stride int
}

func (t bufferTarget) FillScanline(x0, x1, y int) {
	row := t.buf[y*t.stride:]
	for x := x0; x < x1; x++ {
		row[x] = 255
	}
}

func (t bufferTarget) FillScanlineAA(x0, x1, y int, alpha uint8) {
	row := t.buf[y*t.stride:]
	for x := x0; x < x1; x++ {
		row[x] = alpha
	}
}
