// SPDX-License-Identifier: MIT
// Package: tensornet/builder
//
// impl_ftps.go — chain-with-teeth (FTPS).
//
// Canonical model:
//   • Spine (i,0) for i ∈ [0,width), joined left to right.
//   • Each spine vertex roots a chain (i,1)…(i,height).
//   • Every vertex carries one open leg (factor^1).
//
// Closed forms: V = width·(height+1), E = V−1 (tree), O = V.
//
// Enumeration: width ∈ [2,size], height ∈ [1,size], V ≤ size.

package builder

import (
	"context"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/tensornet/core"
)

func ftpsSize(w, h int) int { return w * (h + 1) }

func (g *Generator) genFTPS(ctx context.Context) error {
	for w := 2; w <= g.size; w++ {
		for h := 1; h <= g.size; h++ {
			if ftpsSize(w, h) > g.size {
				continue
			}
			if err := g.buildFTPS(ctx, w, h); err != nil {
				return err
			}
			if err := g.flush(Params{{ParamWidth, w}, {ParamHeight, h}}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Generator) buildFTPS(ctx context.Context, w, h int) error {
	klog.V(1).Infof("[ftps] width=%d height=%d", w, h)
	if err := g.begin(ctx); err != nil {
		return err
	}

	for i := 0; i < w; i++ {
		// 1) Spine link to the left neighbour, then the spine open leg.
		if i > 0 {
			if err := g.connect(core.Coord{I: i, J: 0}, core.Coord{I: i - 1, J: 0}); err != nil {
				return err
			}
		}
		if err := g.open(core.Coord{I: i, J: 0}, 1); err != nil {
			return err
		}

		// 2) Tooth of height h hanging off (i,0).
		for j := 1; j <= h; j++ {
			if err := g.connect(core.Coord{I: i, J: j}, core.Coord{I: i, J: j - 1}); err != nil {
				return err
			}
			if err := g.open(core.Coord{I: i, J: j}, 1); err != nil {
				return err
			}
		}
	}

	n := ftpsSize(w, h)
	return g.expectShape(n, n-1, n)
}
