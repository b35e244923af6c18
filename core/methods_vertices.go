// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertex ids are assigned in first-seen order and never reused until Reset().
//   - Coords() returns coordinates in the order their vertices were created.

package core

import "github.com/pkg/errors"

// Vertex returns the stable id of the tensor named by c, creating a new
// vertex on first use.
//
// Implementation:
//   - Stage 1: Look c up in the coordinate table.
//   - Stage 2: On a miss, hand out the next free id and remember it.
//
// Complexity: O(1) amortized.
func (nw *Network) Vertex(c Coord) int {
	if id, ok := nw.coords.Get(c); ok {
		return id
	}
	id := nw.n
	nw.n++
	nw.coords.Set(c, id)

	return id
}

// LookupVertex returns the id previously assigned to c without creating one.
func (nw *Network) LookupVertex(c Coord) (int, bool) {
	return nw.coords.Get(c)
}

// AddVertices appends k anonymous vertices and returns the id of the first.
// Parsers use it when vertex ids come from a file rather than coordinates.
// k <= 0 is a no-op that returns the current vertex count.
func (nw *Network) AddVertices(k int) int {
	first := nw.n
	if k > 0 {
		nw.n += k
	}

	return first
}

// VertexCount reports the number of vertices.
func (nw *Network) VertexCount() int { return nw.n }

// Coords returns the symbolic coordinates in vertex-creation order.
// Anonymous vertices have no coordinate and are absent from the result.
func (nw *Network) Coords() []Coord {
	out := make([]Coord, 0, nw.coords.Len())
	for p := nw.coords.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// checkVertex validates that v is a known vertex id.
func (nw *Network) checkVertex(v int) error {
	if v < 0 || v >= nw.n {
		return errors.Wrapf(ErrVertexRange, "vertex %d (n=%d)", v, nw.n)
	}

	return nil
}
