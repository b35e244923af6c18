// File: methods_clone.go
// Role: Cloning network instances.
// Determinism:
//   - Clone preserves vertex ids, coordinate order, edge order and open-leg order.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Clone returns a deep copy of the Network. Mutating the clone never affects
// the source, which lets a generator cache an instance and Reset() its
// working network for the next build.
//
// Complexity: O(V + E + O).
func (nw *Network) Clone() *Network {
	out := NewNetwork()
	out.n = nw.n
	for p := nw.coords.Oldest(); p != nil; p = p.Next() {
		out.coords.Set(p.Key, p.Value)
	}
	for p := nw.edges.Oldest(); p != nil; p = p.Next() {
		out.edges.Set(p.Key, p.Value)
	}
	for p := nw.open.Oldest(); p != nil; p = p.Next() {
		out.open.Set(p.Key, p.Value)
	}

	return out
}

// WithEdges returns a Network with the same vertices, coordinates and open
// legs as nw but with edges replaced by the given list, in the given order.
// It is used to re-serialize a spanning tree as a network.
func (nw *Network) WithEdges(edges []Edge) (*Network, error) {
	out := nw.Clone()
	out.edges = orderedmap.New[Pair, int64]()
	for _, e := range edges {
		if err := out.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}

	return out, nil
}
