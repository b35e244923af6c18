// File: methods_openlegs.go
// Role: Open-leg bookkeeping. One folded open leg per vertex, last write wins.

package core

import "github.com/pkg/errors"

// SetOpenLeg records d as the open-leg dimension of vertex v, replacing any
// previous value. A vertex keeps its original position in OpenLegs() when
// overwritten.
func (nw *Network) SetOpenLeg(v int, d int64) error {
	if err := nw.checkVertex(v); err != nil {
		return err
	}
	if d < 1 {
		return errors.Wrapf(ErrBadDimension, "open leg of vertex %d: %d", v, d)
	}
	nw.open.Set(v, d)

	return nil
}

// OpenLeg returns the open-leg dimension of v, if any.
func (nw *Network) OpenLeg(v int) (int64, bool) {
	return nw.open.Get(v)
}

// OpenLegCount reports how many vertices carry an open leg.
func (nw *Network) OpenLegCount() int { return nw.open.Len() }

// OpenLegs returns the open legs in the order they were first set.
func (nw *Network) OpenLegs() []OpenLeg {
	out := make([]OpenLeg, 0, nw.open.Len())
	for p := nw.open.Oldest(); p != nil; p = p.Next() {
		out = append(out, OpenLeg{Vertex: p.Key, Dim: p.Value})
	}

	return out
}

// OpenDims returns one open-leg dimension per vertex, indexed by vertex id,
// with fill for vertices that carry none.
func (nw *Network) OpenDims(fill int64) []int64 {
	dims := make([]int64, nw.n)
	for i := range dims {
		dims[i] = fill
	}
	for p := nw.open.Oldest(); p != nil; p = p.Next() {
		dims[p.Key] = p.Value
	}

	return dims
}
