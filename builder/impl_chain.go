// SPDX-License-Identifier: MIT
// Package: tensornet/builder
//
// impl_chain.go — open chains (MPS, MPO).
//
// Canonical model:
//   • Sites (i,0), i ∈ [0,width), joined left to right.
//   • Every site carries its open legs folded into factor^legs
//     (1 for MPS, 2 for MPO).
//
// Closed forms: V = width, E = width − 1, O = width.

package builder

import (
	"context"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/tensornet/core"
)

func (g *Generator) genChain(ctx context.Context, legs int) error {
	for w := 2; w <= g.size; w++ {
		if err := g.buildChain(ctx, w, legs); err != nil {
			return err
		}
		if err := g.flush(Params{{ParamWidth, w}}); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) buildChain(ctx context.Context, w, legs int) error {
	klog.V(1).Infof("[%s] width=%d", g.family, w)
	if err := g.begin(ctx); err != nil {
		return err
	}

	for i := 0; i < w; i++ {
		c := core.Coord{I: i, J: 0}
		if i > 0 {
			if err := g.connect(c, core.Coord{I: i - 1, J: 0}); err != nil {
				return err
			}
		}
		if err := g.open(c, legs); err != nil {
			return err
		}
	}

	return g.expectShape(w, w-1, w)
}
