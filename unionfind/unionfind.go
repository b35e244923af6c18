// Package unionfind provides a disjoint-set forest over the integers [0, n)
// with full path compression and union by size.
//
// It backs spanning-tree construction and cycle detection in spantree.
// Union on two elements of the same set is a caller error (ErrSameSet):
// check Connected (or compare Find results) first.
package unionfind

import "github.com/pkg/errors"

var (
	// ErrSameSet indicates Union was called on two elements already joined.
	ErrSameSet = errors.New("unionfind: elements already in the same set")

	// ErrElementRange indicates an element outside [0, n).
	ErrElementRange = errors.New("unionfind: element out of range")
)

// UnionFind is a disjoint-set forest. The zero value is an empty structure;
// use New to size it.
type UnionFind struct {
	parent []int // parent[x] == x for roots
	size   []int // size[r] is valid only for roots
	sets   int   // number of disjoint sets
}

// New returns n singleton sets {0}, {1}, ..., {n-1}.
// Complexity: O(n).
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Len reports the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets reports the number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the root of the set containing x. Every element on the path
// from x to the root is re-pointed directly at the root.
//
// Find panics on an out-of-range element, like a slice index would; callers
// inside this module only pass vertex ids that were validated upstream.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) int {
	root := x
	for root != uf.parent[root] {
		root = uf.parent[root]
	}
	// Second pass: full path compression.
	for x != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Size returns the size of the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

// Union merges the sets containing x and y. The root of the smaller set is
// attached under the root of the larger one; on equal sizes the root of x
// goes under the root of y.
//
// Errors:
//   - ErrElementRange: x or y outside [0, n).
//   - ErrSameSet:      x and y already share a root.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(x, y int) error {
	if x < 0 || x >= len(uf.parent) || y < 0 || y >= len(uf.parent) {
		return errors.Wrapf(ErrElementRange, "union(%d,%d) with n=%d", x, y, len(uf.parent))
	}
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return errors.Wrapf(ErrSameSet, "union(%d,%d)", x, y)
	}
	if uf.size[rx] > uf.size[ry] {
		uf.link(rx, ry)
	} else {
		uf.link(ry, rx)
	}
	uf.sets--

	return nil
}

// link hangs child under root.
func (uf *UnionFind) link(root, child int) {
	uf.parent[child] = root
	uf.size[root] += uf.size[child]
}
