package spantree

import (
	"math/bits"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/tensornet/core"
	"github.com/katalvlaran/tensornet/unionfind"
)

// MinimumDegree finds a spanning tree of nw whose maximum vertex degree is
// as small as possible, by exhaustive search over all (n−1)-edge subsets.
//
// Error Conditions:
//   - ErrNilNetwork     : nw is nil.
//   - ErrDisconnected   : n == 0 or nw is not connected.
//   - ErrTooFewEdges    : m < n−1.
//   - ErrTooLarge       : n above the vertex limit or m > 63.
//   - ErrNoSpanningTree : no subset spans nw (unreachable for connected input).
//
// Steps:
//  1. Validate size and connectivity up front, so the exponential loop only
//     runs on inputs that have an answer.
//  2. Walk every mask with n−1 bits set, in increasing order.
//  3. Tally degrees edge by edge; drop the mask once a vertex reaches the
//     best maximum degree seen so far (it cannot be a strict improvement).
//  4. Union the endpoints of each edge in a fresh UnionFind; drop the mask on
//     the first cycle. n−1 acyclic edges over n vertices always span.
//  5. Record strict improvements; stop once the degree lower bound is met.
//
// Complexity: O(C(m, n−1) · n) time in the worst case, O(n + m) space.
func MinimumDegree(nw *core.Network, opts ...Option) (*Tree, error) {
	cfg := resolve(opts)

	// 1. Preconditions.
	trivial, err := precheck(nw)
	if err != nil {
		return nil, err
	}
	n := nw.VertexCount()
	if n > cfg.VertexLimit {
		return nil, errors.Wrapf(ErrTooLarge, "n=%d exceeds limit %d", n, cfg.VertexLimit)
	}
	if trivial {
		return newTree(MethodMinDegree, n, []core.Edge{}), nil
	}
	edges := nw.Edges()
	m := len(edges)
	if m > maxSearchEdges {
		return nil, errors.Wrapf(ErrTooLarge, "m=%d exceeds %d", m, maxSearchEdges)
	}
	if !connected(nw) {
		return nil, ErrDisconnected
	}

	k := n - 1
	lower := 2 // a path is optimal for n >= 3
	if n == 2 {
		lower = 1
	}

	var (
		best     = n // above any reachable degree
		bestMask uint64
		found    bool
		examined int64
		deg      = make([]int, n)
		limit    = uint64(1) << uint(m)
	)

	// 2. Enumerate subsets of size k.
	for mask := uint64(1)<<uint(k) - 1; mask < limit; mask = nextCombination(mask) {
		examined++

		// 3. Degree bound with early exit.
		maxDeg, ok := boundedDegree(mask, edges, deg, best)
		if !ok {
			continue
		}

		// 4. Spanning check.
		if !acyclic(mask, edges, n) {
			continue
		}

		// 5. Strict improvement (guaranteed by the bound above).
		best, bestMask, found = maxDeg, mask, true
		if best <= lower {
			break
		}
	}

	if !found {
		return nil, errors.Wrapf(ErrNoSpanningTree, "n=%d m=%d", n, m)
	}
	klog.V(2).Infof("mdst: n=%d m=%d examined %s subsets, max degree %d",
		n, m, humanize.Comma(examined), best)

	tree := make([]core.Edge, 0, k)
	for rest := bestMask; rest != 0; rest &= rest - 1 {
		tree = append(tree, edges[bits.TrailingZeros64(rest)])
	}

	return newTree(MethodMinDegree, n, tree), nil
}

// nextCombination returns the next larger integer with the same popcount
// (Gosper's hack).
func nextCombination(x uint64) uint64 {
	c := x & -x // lowest set bit
	r := x + c  // carry into the next block
	return (((r ^ x) >> 2) / c) | r
}

// boundedDegree tallies the degree of every vertex under mask into deg and
// returns the maximum. It gives up (ok == false) as soon as any degree
// reaches bound.
func boundedDegree(mask uint64, edges []core.Edge, deg []int, bound int) (maxDeg int, ok bool) {
	for i := range deg {
		deg[i] = 0
	}
	for rest := mask; rest != 0; rest &= rest - 1 {
		e := edges[bits.TrailingZeros64(rest)]
		deg[e.U]++
		deg[e.V]++
		if deg[e.U] >= bound || deg[e.V] >= bound {
			return 0, false
		}
		if deg[e.U] > maxDeg {
			maxDeg = deg[e.U]
		}
		if deg[e.V] > maxDeg {
			maxDeg = deg[e.V]
		}
	}

	return maxDeg, true
}

// acyclic reports whether the edges under mask form a forest.
func acyclic(mask uint64, edges []core.Edge, n int) bool {
	uf := unionfind.New(n)
	for rest := mask; rest != 0; rest &= rest - 1 {
		e := edges[bits.TrailingZeros64(rest)]
		if uf.Connected(e.U, e.V) {
			return false
		}
		if err := uf.Union(e.U, e.V); err != nil {
			return false
		}
	}

	return true
}

// connected reports whether nw forms a single component.
func connected(nw *core.Network) bool {
	g := simple.NewUndirectedGraph()
	for v := 0; v < nw.VertexCount(); v++ {
		g.AddNode(simple.Node(v))
	}
	for _, e := range nw.Edges() {
		g.SetEdge(g.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	return len(topo.ConnectedComponents(g)) == 1
}
