// File: view.go
// Role: Non-mutating derived views of a Network (degrees, adjacency, stats).

package core

// Degrees returns the closed-leg degree of every vertex, indexed by id.
// Complexity: O(V + E).
func (nw *Network) Degrees() []int {
	deg := make([]int, nw.n)
	for p := nw.edges.Oldest(); p != nil; p = p.Next() {
		deg[p.Key.U]++
		deg[p.Key.V]++
	}

	return deg
}

// Adjacency returns, for every vertex, its neighbours in edge-insertion order.
// Complexity: O(V + E).
func (nw *Network) Adjacency() [][]int {
	adj := make([][]int, nw.n)
	for p := nw.edges.Oldest(); p != nil; p = p.Next() {
		adj[p.Key.U] = append(adj[p.Key.U], p.Key.V)
		adj[p.Key.V] = append(adj[p.Key.V], p.Key.U)
	}

	return adj
}

// Stats produces a size summary of the network.
func (nw *Network) Stats() Stats {
	st := Stats{
		Vertices: nw.n,
		Edges:    nw.edges.Len(),
		OpenLegs: nw.open.Len(),
	}
	for _, d := range nw.Degrees() {
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}

	return st
}
