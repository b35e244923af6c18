// SPDX-License-Identifier: MIT
// Package: tensornet/builder
//
// generator.go — the Generator orchestrator.
//
// Design contract:
//   • One working *core.Network per Generator, Reset before every instance.
//   • Family dispatch is a single switch in Run (one impl_*.go per family).
//   • Every build is checked against the family's closed-form counts.
//   • The square cache lives for one Run: re-initialized at the start,
//     drained in ascending vertex count at the end.

package builder

import (
	"context"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/tensornet/core"
)

// minSize is the smallest maximum size any family can fill.
const minSize = 2

// Generator builds every admissible instance of one family up to a maximum
// vertex count.
type Generator struct {
	family Family
	size   int
	cfg    generatorConfig

	net   *core.Network // working network, Reset per instance
	cache *treemap.Map  // vertex count → Instance (square-preferred families)
	out   []Instance
}

// NewGenerator returns a Generator for family with maximum vertex count size.
//
// Errors:
//   - ErrUnknownFamily if family is not a declared Family.
//   - ErrTooSmall if size < 2.
func NewGenerator(family Family, size int, opts ...GeneratorOption) (*Generator, error) {
	if !family.valid() {
		return nil, errors.Wrapf(ErrUnknownFamily, "%d", int(family))
	}
	if size < minSize {
		return nil, errors.Wrapf(ErrTooSmall, "size %d < %d", size, minSize)
	}

	return &Generator{
		family: family,
		size:   size,
		cfg:    newGeneratorConfig(opts...),
		net:    core.NewNetwork(),
	}, nil
}

// Family returns the family this Generator builds.
func (g *Generator) Family() Family { return g.family }

// Run builds all instances and returns them in output order: build order for
// MERA, TTN, MPS and MPO; ascending vertex count for FTPS and PEPS.
// ctx is checked between instances only.
//
// Complexity: O(Σ instance size) time; the cache holds at most one instance
// per vertex count.
func (g *Generator) Run(ctx context.Context) ([]Instance, error) {
	g.cache = treemap.NewWithIntComparator()
	g.out = nil
	g.net.Reset()

	klog.V(1).Infof("Generate %s (size %d, factor %d, %s legs)", g.family, g.size, g.cfg.factor, g.cfg.legMode)

	var err error
	switch g.family {
	case FTPS:
		err = g.genFTPS(ctx)
	case MERA:
		err = g.genMERA(ctx)
	case TTN:
		err = g.genTTN(ctx)
	case PEPS:
		err = g.genPEPS(ctx)
	case MPS:
		err = g.genChain(ctx, 1)
	case MPO:
		err = g.genChain(ctx, 2)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", g.family)
	}
	g.flushAll()

	out := g.out
	g.out = nil

	return out, nil
}

// connect adds a closed leg between the tensors at c1 and c2 with a random
// dimension. c2 is resolved first so that spine vertices get lower ids.
func (g *Generator) connect(c1, c2 core.Coord) error {
	d := RandomLegDim(g.cfg.rng, g.cfg.factor)
	u := g.net.Vertex(c2)
	v := g.net.Vertex(c1)
	if err := g.net.AddEdge(u, v, d); err != nil {
		return errors.Wrapf(err, "connect %s-%s", c1, c2)
	}

	return nil
}

// open sets the open leg of the tensor at c to factor^count.
func (g *Generator) open(c core.Coord, count int) error {
	return g.net.SetOpenLeg(g.net.Vertex(c), OpenLegDim(g.cfg.factor, count))
}

// expect checks one closed-form count of the current build.
func (g *Generator) expect(what string, got, want int) error {
	if got != want {
		return errors.Wrapf(ErrShapeMismatch, "%s: got %d, want %d", what, got, want)
	}
	return nil
}

// expectShape checks vertex, edge and open-leg counts of the current build.
func (g *Generator) expectShape(vertices, edges, open int) error {
	s := g.net.Stats()
	if err := g.expect("vertices", s.Vertices, vertices); err != nil {
		return err
	}
	if err := g.expect("edges", s.Edges, edges); err != nil {
		return err
	}
	return g.expect("open legs", s.OpenLegs, open)
}

// flush registers the current build. Square-preferred families skip
// width > height and keep one instance per vertex count, the one with the
// largest width (later ties win). Others are emitted directly.
func (g *Generator) flush(params Params) error {
	n := g.net.VertexCount()
	if n > g.size {
		return errors.Wrapf(ErrShapeMismatch, "%d vertices exceed size %d", n, g.size)
	}

	if g.family.squarePreferred() {
		w, _ := params.Get(ParamWidth)
		h, _ := params.Get(ParamHeight)
		if w > h {
			return nil
		}
		if cur, ok := g.cache.Get(n); ok {
			if cw, _ := cur.(Instance).Params.Get(ParamWidth); w < cw {
				return nil
			}
		}
		g.cache.Put(n, g.snapshot(params))
		return nil
	}

	g.out = append(g.out, g.snapshot(params))
	return nil
}

// flushAll drains the square cache in ascending vertex count.
func (g *Generator) flushAll() {
	it := g.cache.Iterator()
	for it.Next() {
		g.out = append(g.out, it.Value().(Instance))
	}
	g.cache.Clear()
}

func (g *Generator) snapshot(params Params) Instance {
	return Instance{
		Family:  g.family,
		LegMode: g.cfg.legMode,
		Params:  params,
		Network: g.net.Clone(),
	}
}

// begin resets the working network and checks ctx before a build.
func (g *Generator) begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.net.Reset()
	return nil
}
