// Package spantree defines the Tree result, method selection, options and
// sentinel errors for spanning-tree computation.
package spantree

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/tensornet/core"
)

var (
	// ErrNilNetwork indicates a nil *core.Network.
	ErrNilNetwork = errors.New("spantree: nil network")

	// ErrDisconnected indicates the network has no spanning tree because it
	// is empty or falls apart into several components.
	ErrDisconnected = errors.New("spantree: network is disconnected")

	// ErrTooFewEdges indicates m < n−1.
	ErrTooFewEdges = errors.New("spantree: fewer than n-1 edges")

	// ErrTooLarge indicates the network exceeds the exhaustive-search ceiling.
	ErrTooLarge = errors.New("spantree: network too large for exhaustive search")

	// ErrNoSpanningTree indicates the exhaustive search found no spanning subset.
	ErrNoSpanningTree = errors.New("spantree: no spanning tree found")

	// ErrUnknownMethod indicates an unrecognised Method value.
	ErrUnknownMethod = errors.New("spantree: unknown method")
)

// Method names a spanning-tree algorithm. The string values double as the
// file-name prefix of written trees ("mst-<file>").
type Method string

const (
	// MethodMinimum selects the minimum-weight spanning tree.
	MethodMinimum Method = "mst"
	// MethodMaximum selects the maximum-weight spanning tree.
	MethodMaximum Method = "maxst"
	// MethodMinDegree selects the minimum-degree spanning tree.
	MethodMinDegree Method = "mdst"
)

// ParseMethod maps a method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodMinimum, MethodMaximum, MethodMinDegree:
		return m, nil
	default:
		return "", errors.Wrapf(ErrUnknownMethod, "%q", s)
	}
}

// DefaultVertexLimit is the largest network MinimumDegree accepts by default.
const DefaultVertexLimit = 20

// maxSearchEdges bounds m for MinimumDegree: subsets are uint64 masks and
// 1<<m must not overflow.
const maxSearchEdges = 63

// Options configures spanning-tree computation.
type Options struct {
	// VertexLimit caps n for MinimumDegree.
	VertexLimit int
}

// Option mutates Options.
type Option func(*Options)

// WithVertexLimit overrides DefaultVertexLimit. Panics if n < 1.
func WithVertexLimit(n int) Option {
	if n < 1 {
		panic("spantree: WithVertexLimit(n<1)")
	}
	return func(o *Options) { o.VertexLimit = n }
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{VertexLimit: DefaultVertexLimit}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Tree is a spanning tree of a network.
type Tree struct {
	// Method that produced the tree.
	Method Method
	// Vertices is the vertex count of the source network.
	Vertices int
	// Edges are the selected closed legs with their original dimensions.
	Edges []core.Edge
	// Adjacency lists tree neighbours per vertex.
	Adjacency [][]int
	// Weight is the sum of edge dimensions.
	Weight int64
	// MaxDegree is the largest vertex degree within the tree.
	MaxDegree int
}

func newTree(method Method, n int, edges []core.Edge) *Tree {
	t := &Tree{
		Method:    method,
		Vertices:  n,
		Edges:     edges,
		Adjacency: make([][]int, n),
	}
	for _, e := range edges {
		t.Adjacency[e.U] = append(t.Adjacency[e.U], e.V)
		t.Adjacency[e.V] = append(t.Adjacency[e.V], e.U)
		t.Weight += e.Weight
	}
	for _, nb := range t.Adjacency {
		if len(nb) > t.MaxDegree {
			t.MaxDegree = len(nb)
		}
	}

	return t
}

// Network returns src restricted to the tree edges: same vertices and open
// legs, edges in tree order.
func (t *Tree) Network(src *core.Network) (*core.Network, error) {
	if src == nil {
		return nil, ErrNilNetwork
	}
	return src.WithEdges(t.Edges)
}

// Compute dispatches to the algorithm named by method.
//
//	– MethodMinimum:   Minimum(nw)
//	– MethodMaximum:   Maximum(nw)
//	– MethodMinDegree: MinimumDegree(nw, opts...)
func Compute(nw *core.Network, method Method, opts ...Option) (*Tree, error) {
	switch method {
	case MethodMinimum:
		return Minimum(nw)
	case MethodMaximum:
		return Maximum(nw)
	case MethodMinDegree:
		return MinimumDegree(nw, opts...)
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "%q", string(method))
	}
}

// precheck validates the shared preconditions and reports whether the
// network is the trivial single-vertex case.
func precheck(nw *core.Network) (trivial bool, err error) {
	if nw == nil {
		return false, ErrNilNetwork
	}
	n := nw.VertexCount()
	switch {
	case n == 0:
		return false, ErrDisconnected
	case n == 1:
		return true, nil
	case nw.EdgeCount() < n-1:
		return false, errors.Wrapf(ErrTooFewEdges, "n=%d m=%d", n, nw.EdgeCount())
	}

	return false, nil
}
