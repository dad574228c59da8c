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
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Pool renders shapes with several Rasterisers in parallel.  The device
// region is split into horizontal bands, and each band is rendered by its
// own Rasteriser.
//
// The Target passed to RenderShape must allow concurrent writes to
// different rows.  A Pool itself must not be used concurrently.
type Pool struct {
	// CTM and Resolution are copied to every worker before rendering.
	CTM        matrix.Matrix
	Resolution int

	workers []*Rasteriser
}

// NewPool returns a Pool with n workers.
// If n <= 0, runtime.GOMAXPROCS(0) workers are used.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		CTM:     matrix.Identity,
		workers: make([]*Rasteriser, n),
	}
	for i := range p.workers {
		p.workers[i] = NewRasteriser(rect.Rect{})
	}
	return p
}

// RenderShape renders the shape, clipped to clip if non-nil, into the
// device region bounds.  See Rasteriser.RenderShape for details.
//
// Bands which have not started when ctx is cancelled are skipped, and the
// context's error is returned.
func (p *Pool) RenderShape(ctx context.Context, bounds rect.Rect, shape, clip path.Path, t Target) error {
	bands := splitRows(bounds, len(p.workers))

	g, ctx := errgroup.WithContext(ctx)
	for i, band := range bands {
		w := p.workers[i]
		w.Bounds = band
		w.CTM = p.CTM
		w.Resolution = p.Resolution
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w.RenderShape(shape, clip, t)
			return nil
		})
	}
	return g.Wait()
}

// splitRows divides bounds into at most n bands of whole pixel rows.
func splitRows(bounds rect.Rect, n int) []rect.Rect {
	y0 := int(bounds.LLy)
	y1 := int(bounds.URy)
	height := y1 - y0
	if height <= 0 || bounds.URx <= bounds.LLx {
		return nil
	}
	n = min(n, height)

	bands := make([]rect.Rect, 0, n)
	for i := range n {
		top := y0 + height*i/n
		bottom := y0 + height*(i+1)/n
		bands = append(bands, rect.Rect{
			LLx: bounds.LLx,
			LLy: float64(top),
			URx: bounds.URx,
			URy: float64(bottom),
		})
	}
	return bands
}
