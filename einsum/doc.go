// Package einsum converts between a *core.Network and an einsum-style
// contraction description, and between the two contraction-sequence
// conventions consumed and produced by contraction-order optimizers.
//
// Conversions Provided
//
//   - ToSpec(nw) (*Spec, error)
//
//   - One symbol per closed leg (edge index i → Symbol(i)) and one per open
//     leg (vertex v → Symbol(m+v)). Every tensor lists its incident edge
//     symbols in edge order, then its open-leg symbol. The output lists the
//     open-leg symbols in open-leg order.
//
//   - Spec.Equation renders "ab,bc->ac"; Spec.Shapes lists per-tensor dimensions.
//
//   - FromGraph(inputs, output, sizes) (*core.Network, error)
//
//   - An index in the output must occur in exactly one tensor and folds into
//     that tensor's open leg. Any other index must occur in exactly two
//     distinct tensors and folds into the edge between them. Repeated legs
//     multiply their dimensions. Tensors left without an open leg receive a
//     placeholder of dimension 1.
//
//   - SSAToLinear / LinearToSSA
//
//   - In SSA form the n inputs are 0..n−1 and step k creates id n+k; ids are
//     never reused. In linear form each step names positions in the current
//     operand list, both operands are removed and the result is appended.
//     The two are inverse for every valid sequence of n−1 pairwise steps.
//
// Optimizer Contract
//
//	PrepareInput packages a network for an Optimizer: edge list and costs,
//	the maximum spanning tree (heavy legs stay inside the tree) and one
//	open-leg cost per vertex. An Optimizer returns n−1 steps in SSA form;
//	ContractionOrder converts them to linear form on request. TreeOptimizer
//	is a built-in baseline that contracts along the tree, heaviest leg first.
package einsum
