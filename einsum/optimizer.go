package einsum

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/tensornet/core"
	"github.com/katalvlaran/tensornet/spantree"
	"github.com/katalvlaran/tensornet/unionfind"
)

// OptimizerInput is the tuple handed to a contraction-order optimizer.
// All tables are keyed by vertex id or edge index; costs are dimensions.
type OptimizerInput struct {
	Vertices      int
	Edges         [][2]int
	TreeEdges     [][2]int
	EdgeCosts     []float64
	TreeEdgeCosts []float64
	// OpenCosts holds one open-leg dimension per vertex, 1 where absent.
	OpenCosts []float64
}

// Optimizer chooses a contraction order. Order must return n−1 steps in
// SSA form.
type Optimizer interface {
	Order(in *OptimizerInput) ([]Step, error)
}

// PrepareInput packages nw for an Optimizer. The tree view is the maximum
// spanning tree, so nw must be connected (spantree errors pass through).
func PrepareInput(nw *core.Network) (*OptimizerInput, error) {
	if nw == nil {
		return nil, ErrNilNetwork
	}
	tree, err := spantree.Maximum(nw)
	if err != nil {
		return nil, err
	}

	in := &OptimizerInput{Vertices: nw.VertexCount()}
	in.Edges, in.EdgeCosts = split(nw.Edges())
	in.TreeEdges, in.TreeEdgeCosts = split(tree.Edges)
	for _, d := range nw.OpenDims(placeholderDim) {
		in.OpenCosts = append(in.OpenCosts, float64(d))
	}

	return in, nil
}

func split(edges []core.Edge) ([][2]int, []float64) {
	pairs := make([][2]int, len(edges))
	costs := make([]float64, len(edges))
	for i, e := range edges {
		pairs[i] = [2]int{e.U, e.V}
		costs[i] = float64(e.Weight)
	}
	return pairs, costs
}

// ContractionOrder folds the index description into a network, prepares the
// optimizer input and returns the optimizer's order, in SSA form when ssa
// is true and in linear form otherwise.
func ContractionOrder(opt Optimizer, inputs [][]string, output []string, sizes map[string]int64, ssa bool) ([]Step, error) {
	if opt == nil {
		return nil, ErrNilOptimizer
	}
	nw, err := FromGraph(inputs, output, sizes)
	if err != nil {
		return nil, err
	}
	in, err := PrepareInput(nw)
	if err != nil {
		return nil, err
	}

	order, err := opt.Order(in)
	if err != nil {
		return nil, errors.Wrap(err, "einsum: optimizer")
	}
	if len(order) != in.Vertices-1 {
		return nil, errors.Wrapf(ErrInvalidSequence, "%d steps for %d tensors", len(order), in.Vertices)
	}
	klog.V(1).Infof("einsum: %d tensors, %d legs, %d steps", in.Vertices, len(in.Edges), len(order))

	if ssa {
		// Round-trip once to validate the optimizer output.
		if _, err := SSAToLinear(order); err != nil {
			return nil, err
		}
		return order, nil
	}
	return SSAToLinear(order)
}

// TreeOptimizer contracts along the tree view, heaviest tree leg first: each
// step merges the two intermediates currently holding the leg's endpoints.
type TreeOptimizer struct{}

// Order implements Optimizer.
func (TreeOptimizer) Order(in *OptimizerInput) ([]Step, error) {
	n := in.Vertices
	if len(in.TreeEdges) != n-1 && n > 0 {
		return nil, errors.Wrapf(ErrInvalidSequence, "tree has %d edges for %d vertices", len(in.TreeEdges), n)
	}

	uf := unionfind.New(n)
	slot := make([]int, n) // root → current SSA id
	for i := range slot {
		slot[i] = i
	}

	order := make([]Step, 0, len(in.TreeEdges))
	for k, e := range in.TreeEdges {
		ru, rv := uf.Find(e[0]), uf.Find(e[1])
		order = append(order, Step{slot[ru], slot[rv]})
		if err := uf.Union(ru, rv); err != nil {
			return nil, err
		}
		slot[uf.Find(ru)] = n + k
	}

	return order, nil
}
