// Package core provides the shared in-memory model of a tensor network:
// a simple undirected graph whose vertices are tensors, whose weighted edges
// are contracted legs (weight = bond dimension) and whose "open legs" are
// the uncontracted, externally visible indices of a tensor.
//
// The Network N = (V, E, O) supports:
//
//   - Stable vertex identifiers 0..n-1 assigned in first-seen order, either
//     from a symbolic Coord (generators) or anonymously (parsers).
//   - At most one edge per unordered vertex pair; a second AddEdge on the same
//     pair fails with ErrDuplicateEdge. Parallel legs must be folded by the
//     caller (multiply dimensions) before insertion.
//   - At most one open leg per vertex; SetOpenLeg overwrites (last write wins).
//   - Deterministic iteration: Edges() and OpenLegs() return insertion order,
//     which is also the order the persisted file format is written in.
//
// Core Methods:
//
//	// Lifecycle
//	NewNetwork() *Network                       // O(1)
//	Reset()                                     // O(1), drops everything
//	Clone() *Network                            // O(V+E)
//
//	// Vertices
//	Vertex(c Coord) int                         // get-or-create, O(1)
//	AddVertices(k int) int                      // anonymous vertices, O(1)
//	VertexCount() int
//
//	// Edges (closed legs)
//	AddEdge(u, v int, w int64) error            // O(1)
//	EdgeWeight(u, v int) (int64, bool)          // O(1)
//	Edges() []Edge                              // O(E), insertion order
//
//	// Open legs
//	SetOpenLeg(v int, d int64) error            // O(1), overwrite
//	OpenLeg(v int) (int64, bool)                // O(1)
//	OpenLegs() []OpenLeg                        // O(O), insertion order
//
//	// Views
//	Degrees() []int, Adjacency() [][]int, Stats() Stats
//
// Concurrency:
//
//	A Network is owned by one generation or parse pass and is not safe for
//	concurrent mutation. Run independent passes on independent Networks.
//
// Errors:
//
//	ErrDuplicateEdge  - the unordered pair already carries an edge.
//	ErrSelfLoop       - both endpoints are the same vertex.
//	ErrVertexRange    - a vertex index outside [0, n).
//	ErrBadDimension   - a leg dimension below 1.
package core
