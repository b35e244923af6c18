package spantree

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tensornet/core"
	"github.com/katalvlaran/tensornet/unionfind"
)

// Minimum computes the minimum-weight spanning tree of nw.
//
// Error Conditions:
//   - ErrNilNetwork   : nw is nil.
//   - ErrDisconnected : n == 0, or the edges do not connect every vertex.
//   - ErrTooFewEdges  : m < n−1.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Minimum(nw *core.Network) (*Tree, error) {
	return kruskal(nw, MethodMinimum, func(a, b int64) bool { return a < b })
}

// Maximum computes the maximum-weight spanning tree of nw. It is the tree
// view handed to contraction-order optimizers: heavy legs stay inside the
// tree. Same error conditions and complexity as Minimum.
func Maximum(nw *core.Network) (*Tree, error) {
	return kruskal(nw, MethodMaximum, func(a, b int64) bool { return a > b })
}

// kruskal runs the sorted-edge greedy selection.
//
// Steps:
//  1. Validate preconditions; a single vertex yields an empty tree.
//  2. Stable-sort a copy of the edges with before (ties keep insertion order).
//  3. Keep every edge whose endpoints are still in different components.
//  4. Stop at n−1 edges; fewer after the scan means the network is disconnected.
func kruskal(nw *core.Network, method Method, before func(a, b int64) bool) (*Tree, error) {
	// 1. Preconditions.
	trivial, err := precheck(nw)
	if err != nil {
		return nil, err
	}
	n := nw.VertexCount()
	if trivial {
		return newTree(method, n, []core.Edge{}), nil
	}

	// 2. Edges() is already a copy, sorting it leaves nw untouched.
	edges := nw.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return before(edges[i].Weight, edges[j].Weight)
	})

	// 3. Greedy selection.
	uf := unionfind.New(n)
	tree := make([]core.Edge, 0, n-1)
	for _, e := range edges {
		if uf.Connected(e.U, e.V) {
			continue // would close a cycle
		}
		if err := uf.Union(e.U, e.V); err != nil {
			return nil, err
		}
		tree = append(tree, e)
		if len(tree) == n-1 {
			break
		}
	}

	// 4. Coverage check.
	if len(tree) < n-1 {
		return nil, errors.Wrapf(ErrDisconnected, "%s: %d components", method, uf.Sets())
	}

	return newTree(method, n, tree), nil
}
