package einsum

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tensornet/core"
)

// Spec is an einsum-style contraction description.
type Spec struct {
	// Inputs lists the index symbols of each tensor, by vertex id.
	Inputs [][]string
	// Output lists the uncontracted index symbols.
	Output []string
	// Sizes maps every symbol to its dimension.
	Sizes map[string]int64
}

// ToSpec derives the contraction description of nw.
//
// Steps:
//  1. Walk the edges in insertion order; edge i gets Symbol(i) and is listed
//     on both endpoints.
//  2. Walk the open legs in insertion order; the leg of vertex v gets
//     Symbol(m+v), is listed on v and appended to the output.
//  3. Bind every symbol to its dimension. Symbols are fresh per leg, so a
//     second binding is rejected: ErrSizeMismatch when the dimensions
//     differ, ErrMultiplicity otherwise.
//
// Complexity: O(V + E + O).
func ToSpec(nw *core.Network) (*Spec, error) {
	if nw == nil {
		return nil, ErrNilNetwork
	}
	n, edges := nw.VertexCount(), nw.Edges()
	m := len(edges)

	s := &Spec{
		Inputs: make([][]string, n),
		Output: make([]string, 0, nw.OpenLegCount()),
		Sizes:  make(map[string]int64, m+nw.OpenLegCount()),
	}
	for i, e := range edges {
		sym := Symbol(i)
		if err := s.bind(sym, e.Weight); err != nil {
			return nil, err
		}
		s.Inputs[e.U] = append(s.Inputs[e.U], sym)
		s.Inputs[e.V] = append(s.Inputs[e.V], sym)
	}
	for _, ol := range nw.OpenLegs() {
		sym := Symbol(m + ol.Vertex)
		if err := s.bind(sym, ol.Dim); err != nil {
			return nil, err
		}
		s.Inputs[ol.Vertex] = append(s.Inputs[ol.Vertex], sym)
		s.Output = append(s.Output, sym)
	}
	for v := range s.Inputs {
		if s.Inputs[v] == nil {
			s.Inputs[v] = []string{}
		}
	}

	return s, nil
}

func (s *Spec) bind(sym string, d int64) error {
	if cur, ok := s.Sizes[sym]; ok {
		if cur != d {
			return errors.Wrapf(ErrSizeMismatch, "%q: %d vs %d", sym, cur, d)
		}
		return errors.Wrapf(ErrMultiplicity, "symbol %q bound twice", sym)
	}
	s.Sizes[sym] = d
	return nil
}

// Equation renders the spec as "ab,bc->ac".
func (s *Spec) Equation() string {
	var b strings.Builder
	for i, in := range s.Inputs {
		if i > 0 {
			b.WriteByte(',')
		}
		for _, sym := range in {
			b.WriteString(sym)
		}
	}
	b.WriteString("->")
	for _, sym := range s.Output {
		b.WriteString(sym)
	}

	return b.String()
}

// Shapes returns the dimension of every index of every tensor.
func (s *Spec) Shapes() [][]int64 {
	out := make([][]int64, len(s.Inputs))
	for i, in := range s.Inputs {
		out[i] = make([]int64, len(in))
		for j, sym := range in {
			out[i][j] = s.Sizes[sym]
		}
	}
	return out
}
