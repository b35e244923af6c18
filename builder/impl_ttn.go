// SPDX-License-Identifier: MIT
// Package: tensornet/builder
//
// impl_ttn.go — balanced binary tree tensor network (TTN).
//
// Canonical model:
//   • Layers i ∈ [0,height) of 2^i vertices (i,j).
//   • Every non-root vertex connects to its parent (i−1, j/2).
//   • Leaves (last layer) carry two open legs folded into factor^2.
//
// Closed forms: V = 2^height − 1, E = V − 1, O = 2^(height−1).

package builder

import (
	"context"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/tensornet/core"
)

func ttnSize(h int) int { return 1<<uint(h) - 1 }

func (g *Generator) genTTN(ctx context.Context) error {
	// ttnSize grows geometrically; stop at the first height that overshoots.
	for h := 2; h <= g.size && ttnSize(h) <= g.size; h++ {
		if err := g.buildTTN(ctx, h); err != nil {
			return err
		}
		if err := g.flush(Params{{ParamHeight, h}}); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) buildTTN(ctx context.Context, h int) error {
	klog.V(1).Infof("[ttn] height=%d", h)
	if err := g.begin(ctx); err != nil {
		return err
	}

	for i := 1; i < h; i++ {
		for j := 0; j < 1<<uint(i); j++ {
			c := core.Coord{I: i, J: j}
			if err := g.connect(c, core.Coord{I: i - 1, J: j / 2}); err != nil {
				return err
			}
			if i == h-1 {
				if err := g.open(c, 2); err != nil {
					return err
				}
			}
		}
	}

	n := ttnSize(h)
	return g.expectShape(n, n-1, 1<<uint(h-1))
}
