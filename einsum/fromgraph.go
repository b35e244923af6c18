package einsum

import (
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/tensornet/core"
)

// placeholderDim is the open-leg dimension given to tensors without one.
const placeholderDim int64 = 1

// FromGraph builds a network from per-tensor index lists, the output
// indices and the index size table. Tensor i becomes vertex i.
//
// Steps:
//  1. Group the tensors referencing each index, in first-seen order.
//  2. Output index: exactly one tensor → multiply into its open leg.
//  3. Other index: exactly two distinct tensors → multiply into their edge.
//  4. Emit edges and open legs in first-seen order; vertices still without
//     an open leg get placeholderDim.
//
// Errors: ErrUnknownIndex (no size), ErrMultiplicity (any other
// multiplicity, including an index repeated within one tensor or an output
// index no tensor carries), core.ErrBadDimension (size < 1).
//
// Complexity: O(Σ|inputs| + |output|).
func FromGraph(inputs [][]string, output []string, sizes map[string]int64) (*core.Network, error) {
	// 1. Group.
	owners := orderedmap.New[string, []int]()
	for v, in := range inputs {
		for _, idx := range in {
			ts, _ := owners.Get(idx)
			owners.Set(idx, append(ts, v))
		}
	}
	isOutput := make(map[string]bool, len(output))
	for _, idx := range output {
		if _, ok := owners.Get(idx); !ok {
			return nil, errors.Wrapf(ErrMultiplicity, "output index %q appears in no tensor", idx)
		}
		isOutput[idx] = true
	}

	// 2-3. Fold.
	edges := orderedmap.New[core.Pair, int64]()
	open := orderedmap.New[int, int64]()
	for p := owners.Oldest(); p != nil; p = p.Next() {
		idx, ts := p.Key, p.Value
		d, ok := sizes[idx]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownIndex, "%q", idx)
		}

		if isOutput[idx] {
			if len(ts) != 1 {
				return nil, errors.Wrapf(ErrMultiplicity, "output index %q in %d tensors", idx, len(ts))
			}
			cur, ok := open.Get(ts[0])
			if !ok {
				cur = 1
			}
			open.Set(ts[0], cur*d)
			continue
		}

		if len(ts) != 2 || ts[0] == ts[1] {
			return nil, errors.Wrapf(ErrMultiplicity, "index %q in tensors %v", idx, ts)
		}
		key := core.MakePair(ts[0], ts[1])
		cur, ok := edges.Get(key)
		if !ok {
			cur = 1
		}
		edges.Set(key, cur*d)
	}

	// 4. Materialize.
	nw := core.NewNetwork()
	nw.AddVertices(len(inputs))
	for p := edges.Oldest(); p != nil; p = p.Next() {
		if err := nw.AddEdge(p.Key.U, p.Key.V, p.Value); err != nil {
			return nil, err
		}
	}
	for p := open.Oldest(); p != nil; p = p.Next() {
		if err := nw.SetOpenLeg(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	for v := range inputs {
		if _, ok := nw.OpenLeg(v); !ok {
			if err := nw.SetOpenLeg(v, placeholderDim); err != nil {
				return nil, err
			}
		}
	}

	return nw, nil
}
