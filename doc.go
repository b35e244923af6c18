// Package tensornet generates tensor-network topologies and prepares them
// for contraction-order optimizers.
//
// 🚀 What is tensornet?
//
//	A small toolkit that brings together:
//		• Network model: tensors as vertices, closed legs as weighted edges,
//		  open legs as per-vertex dimensions
//		• Generators: PEPS, fPEPS/FTPS, TTN, MERA, MPS and MPO families
//		• Spanning trees: minimum, maximum and minimum-degree
//		• Einsum conversion: equations, shapes, SSA and linear orders
//		• Persistence: plain-text network files and a badger-backed catalog
//
// Packages:
//
//	core/      — Network: vertices, closed legs, open legs, views
//	unionfind/ — disjoint sets for Kruskal and contraction replay
//	spantree/  — MST, MaxST and minimum-degree spanning trees
//	builder/   — family generators with seeded bond dimensions
//	einsum/    — network ⇄ einsum description, contraction orders
//	tnfile/    — .in network files and their naming scheme
//	catalog/   — instance store on badger
//	config/    — TOML run configuration
//	cmd/tnprep — command-line front end
//
// Quick ASCII example (2×2 PEPS, closed legs only):
//
//	    0───1
//	    │   │
//	    2───3
//
//	four tensors, four closed legs, one open leg per tensor in open mode.
//
//	go install github.com/katalvlaran/tensornet/cmd/tnprep@latest
package tensornet
