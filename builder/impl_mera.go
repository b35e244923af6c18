// SPDX-License-Identifier: MIT
// Package: tensornet/builder
//
// impl_mera.go — layered hierarchical network (MERA).
//
// Canonical model:
//   • Layers i ∈ [0,height) of 2^i vertices (i,j).
//   • Only border vertices (j = 0 or j = 2^i−1) of layers i ≥ 1 connect to
//     their parent (i−1, j/2). Border vertices of the last layer carry one
//     open leg.
//   • Intermediate vertices (height+i, j) for i ∈ [1,height), j ∈ [1,2^i)
//     connect up to (i,j−1) and (i,j). Below the last layer they also
//     connect down to (i+1,j) and (i+1,j+1); in the last layer they carry
//     two open legs instead.
//
// Closed forms, with L = 2^height − 1 layer vertices and
// X = Σ_{i=1}^{height−1} (2^i − 1) intermediate vertices:
//   V = L + X, E = V + X − 1, O = 2^(height−1) + 1.

package builder

import (
	"context"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/tensornet/core"
)

// meraSize returns the vertex count and the intermediate vertex count.
func meraSize(h int) (total, extra int) {
	layers := 1<<uint(h) - 1
	for i := 1; i < h; i++ {
		extra += 1<<uint(i) - 1
	}
	return layers + extra, extra
}

func (g *Generator) genMERA(ctx context.Context) error {
	for h := 2; h <= g.size; h++ {
		if n, _ := meraSize(h); n > g.size {
			break // monotone in h
		}
		if err := g.buildMERA(ctx, h); err != nil {
			return err
		}
		if err := g.flush(Params{{ParamHeight, h}}); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) buildMERA(ctx context.Context, h int) error {
	klog.V(1).Infof("[mera] height=%d", h)
	if err := g.begin(ctx); err != nil {
		return err
	}

	// 1) Binary layers: border vertices hang off their parent.
	for i := 1; i < h; i++ {
		last := 1<<uint(i) - 1
		for j := 0; j <= last; j++ {
			if j != 0 && j != last {
				continue
			}
			c := core.Coord{I: i, J: j}
			if err := g.connect(c, core.Coord{I: i - 1, J: j / 2}); err != nil {
				return err
			}
			if i == h-1 {
				if err := g.open(c, 1); err != nil {
					return err
				}
			}
		}
	}

	// 2) Intermediate vertices between layer i and layer i+1.
	for i := 1; i < h; i++ {
		for j := 1; j < 1<<uint(i); j++ {
			c := core.Coord{I: h + i, J: j}
			if err := g.connect(c, core.Coord{I: i, J: j - 1}); err != nil {
				return err
			}
			if err := g.connect(c, core.Coord{I: i, J: j}); err != nil {
				return err
			}
			if i != h-1 {
				if err := g.connect(c, core.Coord{I: i + 1, J: j}); err != nil {
					return err
				}
				if err := g.connect(c, core.Coord{I: i + 1, J: j + 1}); err != nil {
					return err
				}
				continue
			}
			if err := g.open(c, 2); err != nil {
				return err
			}
		}
	}

	n, extra := meraSize(h)
	return g.expectShape(n, n+extra-1, 1<<uint(h-1)+1)
}
