// Package core defines the central Network, Coord, Edge and OpenLeg types
// together with the sentinel errors returned by Network mutations.
//
// Errors:
//
//	ErrDuplicateEdge - a second edge on an already connected vertex pair.
//	ErrSelfLoop      - an edge whose endpoints coincide.
//	ErrVertexRange   - a vertex index outside [0, VertexCount()).
//	ErrBadDimension  - a leg dimension smaller than 1.
package core

import (
	"fmt"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core network operations.
var (
	// ErrDuplicateEdge indicates an edge was added between a pair that already has one.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrVertexRange indicates a vertex index that does not exist in the network.
	ErrVertexRange = errors.New("core: vertex out of range")

	// ErrBadDimension indicates a leg dimension smaller than 1.
	ErrBadDimension = errors.New("core: leg dimension must be >= 1")
)

// Coord is the symbolic coordinate a generator uses to name a tensor,
// e.g. a grid position (column, row) or a tree position (layer, index).
type Coord struct {
	I int
	J int
}

// String renders the coordinate as "(i,j)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.I, c.J) }

// Pair is an unordered vertex pair stored canonically with U < V.
type Pair struct {
	U int
	V int
}

// MakePair returns the canonical Pair for the endpoints u and v.
func MakePair(u, v int) Pair {
	if u > v {
		u, v = v, u
	}
	return Pair{U: u, V: v}
}

// Edge is a closed leg between two distinct tensors.
//
// U < V always holds; Weight is the bond dimension of the shared leg.
type Edge struct {
	U      int
	V      int
	Weight int64
}

// Pair returns the endpoints of e as a canonical Pair.
func (e Edge) Pair() Pair { return Pair{U: e.U, V: e.V} }

// Other returns the endpoint of e opposite to x.
func (e Edge) Other(x int) int {
	if e.U == x {
		return e.V
	}
	return e.U
}

// OpenLeg is the folded uncontracted index of one tensor.
type OpenLeg struct {
	Vertex int
	Dim    int64
}

// Stats is a read-only size summary of a Network.
type Stats struct {
	Vertices  int
	Edges     int
	OpenLegs  int
	MaxDegree int
}

// Network is the in-memory tensor-network graph.
//
// coords maps symbolic coordinates to vertex ids in first-seen order,
// edges and open keep insertion order for reproducible serialization.
type Network struct {
	n      int                                 // number of vertices, ids are [0, n)
	coords *orderedmap.OrderedMap[Coord, int]  // coordinate → vertex id
	edges  *orderedmap.OrderedMap[Pair, int64] // closed legs, insertion ordered
	open   *orderedmap.OrderedMap[int, int64]  // vertex → open-leg dimension
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{
		coords: orderedmap.New[Coord, int](),
		edges:  orderedmap.New[Pair, int64](),
		open:   orderedmap.New[int, int64](),
	}
}

// Reset clears vertices, edges and open legs so the Network can hold a new
// instance. Vertex ids restart at 0; previously returned ids are invalid.
// Complexity: O(1)
func (nw *Network) Reset() {
	nw.n = 0
	nw.coords = orderedmap.New[Coord, int]()
	nw.edges = orderedmap.New[Pair, int64]()
	nw.open = orderedmap.New[int, int64]()
}
