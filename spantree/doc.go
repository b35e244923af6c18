// Package spantree computes spanning trees of a tensor network (*core.Network)
// for use as structural preprocessing before contraction-order optimization.
//
// Algorithms Provided
//
//   - Minimum(nw) / Maximum(nw) (*Tree, error)
//
//   - Strategy: stable-sort all edges ascending (Minimum) or descending
//     (Maximum) by bond dimension, then scan them Kruskal-style with a
//     unionfind.UnionFind, keeping every edge that joins two components.
//
//   - Determinism: ties keep the network's edge insertion order, so the same
//     input always yields the same tree.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - MinimumDegree(nw, opts...) (*Tree, error)
//
//   - Strategy: exhaustive search over every (n−1)-edge subset, enumerated
//     in increasing-integer order with Gosper's next-same-popcount trick.
//     A subset is rejected as soon as a vertex reaches the best degree found
//     so far, or as soon as one of its edges closes a cycle. The search stops
//     at the first tree of maximum degree 2 (a Hamiltonian path), which no
//     spanning tree on three or more vertices can beat.
//
//   - Limits: exponential in E. The vertex count is capped (default 20, see
//     WithVertexLimit) and the edge count is capped at 63 because subsets are
//     uint64 masks. The search cannot be interrupted; a caller that gives up
//     simply discards it.
//
// Preconditions
//
//	The network must be connected with at least n−1 edges. Violations are
//	reported as ErrDisconnected / ErrTooFewEdges; nothing here repairs a
//	malformed network.
//
// Output
//
//	A *Tree carries the selected edges (with their original dimensions),
//	an adjacency list, the total weight and the maximum degree. Tree.Network
//	re-packages the tree as a *core.Network with the source open legs so it
//	can be written in the persisted format next to the full network.
package spantree
