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
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/scanline/testcases"
)

// BenchmarkRasteriserO benchmarks rendering an "O" shape, made of two
// circles approximated by polygons.
func BenchmarkRasteriserO(b *testing.B) {
	sizes := []int{20, 200, 2000}
	resolutions := []int{0, 2, 4}

	for _, size := range sizes {
		for _, k := range resolutions {
			b.Run(fmt.Sprintf("%dx%d/res%d", size, size, k), func(b *testing.B) {
				bounds := rect.Rect{URx: float64(size), URy: float64(size)}
				r := NewRasteriser(bounds)
				r.Resolution = k

				dst := AlphaTarget{Img: image.NewAlpha(image.Rect(0, 0, size, size))}
				oPath := makeOPath(size)

				b.ReportAllocs()
				for b.Loop() {
					r.RenderShape(oPath, nil, dst)
				}
			})
		}
	}
}

// BenchmarkPoolO benchmarks the "O" shape rendered in parallel bands.
func BenchmarkPoolO(b *testing.B) {
	const size = 2000
	bounds := rect.Rect{URx: size, URy: size}
	p := NewPool(0)
	p.Resolution = 4

	dst := AlphaTarget{Img: image.NewAlpha(image.Rect(0, 0, size, size))}
	oPath := makeOPath(size)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if err := p.RenderShape(ctx, bounds, oPath, nil, dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			outer, inner := oPolygons(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addPolygonToVector(r, outer)
				addPolygonToVector(r, inner)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkRasteriseAll renders every test case with one Rasteriser.
func BenchmarkRasteriseAll(b *testing.B) {
	cases := allCases()
	imgs := make([]*image.Alpha, len(cases))
	for i, tc := range cases {
		imgs[i] = image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	}
	r := NewRasteriser(rect.Rect{})
	r.Resolution = 4

	b.ReportAllocs()
	for b.Loop() {
		for i, tc := range cases {
			r.Bounds = rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
			r.CTM = matrix.Identity
			if tc.CTM != (matrix.Matrix{}) {
				r.CTM = tc.CTM
			}
			r.RenderShape(tc.Shape, tc.Clip, AlphaTarget{Img: imgs[i]})
		}
	}
}

// oPolygons returns the outer and inner outline of an "O" which fills a
// size×size canvas.  The number of corners grows with the size, so that
// the polygons stay visually round.
func oPolygons(size int) (outer, inner []vec.Vec2) {
	c := float64(size) / 2
	n := max(16, size/4)
	return circlePolygon(c, c, float64(size)*0.45, n, false),
		circlePolygon(c, c, float64(size)*0.30, n, true)
}

func makeOPath(size int) path.Path {
	return testcases.Polygons(oPolygons(size))
}

func circlePolygon(cx, cy, r float64, n int, clockwise bool) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		if clockwise {
			angle = -angle
		}
		pts[i] = vec.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

func addPolygonToVector(r *vector.Rasterizer, pts []vec.Vec2) {
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}
