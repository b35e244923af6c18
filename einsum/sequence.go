package einsum

import "github.com/pkg/errors"

// Step is one pairwise contraction: the two operands it consumes.
type Step [2]int

// SSAToLinear converts n−1 steps over n inputs from SSA ids to positions in
// the shrinking operand list. Operand order within a step is preserved.
//
// Complexity: O(n²).
func SSAToLinear(ssa []Step) ([]Step, error) {
	n := len(ssa) + 1
	live := make([]int, n) // live[pos] = ssa id
	for i := range live {
		live[i] = i
	}

	out := make([]Step, len(ssa))
	for k, st := range ssa {
		if st[0] == st[1] {
			return nil, errors.Wrapf(ErrInvalidSequence, "step %d: operand %d twice", k, st[0])
		}
		var pos Step
		for j, id := range st {
			p := indexOf(live, id)
			if p < 0 {
				return nil, errors.Wrapf(ErrInvalidSequence, "step %d: id %d not available", k, id)
			}
			pos[j] = p
		}
		out[k] = pos
		live = remove(live, pos)
		live = append(live, n+k)
	}

	return out, nil
}

// LinearToSSA is the inverse of SSAToLinear.
//
// Complexity: O(n²).
func LinearToSSA(linear []Step) ([]Step, error) {
	n := len(linear) + 1
	live := make([]int, n)
	for i := range live {
		live[i] = i
	}

	out := make([]Step, len(linear))
	for k, st := range linear {
		if st[0] == st[1] {
			return nil, errors.Wrapf(ErrInvalidSequence, "step %d: position %d twice", k, st[0])
		}
		for j, p := range st {
			if p < 0 || p >= len(live) {
				return nil, errors.Wrapf(ErrInvalidSequence, "step %d: position %d of %d", k, p, len(live))
			}
			out[k][j] = live[p]
		}
		live = remove(live, st)
		live = append(live, n+k)
	}

	return out, nil
}

func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

// remove deletes the two distinct positions of st from xs, higher first.
func remove(xs []int, st Step) []int {
	hi, lo := st[0], st[1]
	if lo > hi {
		hi, lo = lo, hi
	}
	xs = append(xs[:hi], xs[hi+1:]...)
	return append(xs[:lo], xs[lo+1:]...)
}
