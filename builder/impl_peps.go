// SPDX-License-Identifier: MIT
// Package: tensornet/builder
//
// impl_peps.go — 2-D grid (PEPS).
//
// Canonical model:
//   • Vertices (i,j), i ∈ [0,width), j ∈ [0,height), visited i-major.
//   • Each vertex connects to (i−1,j) and (i,j−1) when they exist.
//   • Every vertex carries one open leg (factor^1).
//
// Closed forms: V = width·height, E = (width−1)·height + (height−1)·width, O = V.
//
// Enumeration: width, height ∈ [2,size], V ≤ size.

package builder

import (
	"context"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/tensornet/core"
)

func (g *Generator) genPEPS(ctx context.Context) error {
	for w := 2; w <= g.size; w++ {
		for h := 2; h <= g.size; h++ {
			if w*h > g.size {
				continue
			}
			if err := g.buildPEPS(ctx, w, h); err != nil {
				return err
			}
			if err := g.flush(Params{{ParamWidth, w}, {ParamHeight, h}}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Generator) buildPEPS(ctx context.Context, w, h int) error {
	klog.V(1).Infof("[peps] width=%d height=%d", w, h)
	if err := g.begin(ctx); err != nil {
		return err
	}

	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			c := core.Coord{I: i, J: j}
			if i > 0 {
				if err := g.connect(c, core.Coord{I: i - 1, J: j}); err != nil {
					return err
				}
			}
			if j > 0 {
				if err := g.connect(c, core.Coord{I: i, J: j - 1}); err != nil {
					return err
				}
			}
			if err := g.open(c, 1); err != nil {
				return err
			}
		}
	}

	return g.expectShape(w*h, (w-1)*h+(h-1)*w, w*h)
}
