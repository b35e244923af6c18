// Package builder generates canonical tensor-network topologies as
// *core.Network instances, one instance per admissible shape parameter
// combination up to a maximum vertex count.
//
// The package offers the following key components:
//
//   - Families (tagged variant Family):
//     – FTPS: chain-with-teeth, a spine of width vertices each rooting a
//     vertical chain of height vertices; one open leg per vertex.
//     – MERA: layered hierarchical network of height binary layers plus
//     intermediate nodes between consecutive layers.
//     – TTN:  balanced binary tree of height layers; two open legs per leaf.
//     – PEPS: width×height grid with left/upper neighbours; one open leg per vertex.
//     – MPS / MPO: open chains of width vertices with one / two open legs.
//   - Generator: owns one working *core.Network that is Reset before every
//     instance, checks every build against closed-form counts and keeps the
//     most square configuration per vertex count for FTPS and PEPS.
//   - Leg-dimension policy: closed legs draw from three regimes keyed off the
//     factor f ([f,f²] 50%, [f²,f³] 35%, [f³,f⁴] 15%); an open leg that
//     folds count logical indices has dimension f^count.
//   - Functional options: WithSeed, WithRand, WithFactor, WithLegMode.
//
// Guarantees:
//
//   - Determinism: the same family, size and options yield identical
//     instances (vertex ids, edge order, dimensions).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Build errors are returned as sentinels (errors.Is), never panics.
//
// Concurrency:
//
//	A Generator is not safe for concurrent use. Generate several families in
//	parallel with one Generator each; they share nothing.
package builder
