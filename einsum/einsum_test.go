package einsum_test

import (
	"errors"
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensornet/core"
	"github.com/katalvlaran/tensornet/einsum"
)

// triangle: edges (0,1,2), (1,2,3), (0,2,4); open legs 0→5, 2→7.
func triangle(t *testing.T) *core.Network {
	t.Helper()
	nw := core.NewNetwork()
	nw.AddVertices(3)
	require.NoError(t, nw.AddEdge(0, 1, 2))
	require.NoError(t, nw.AddEdge(1, 2, 3))
	require.NoError(t, nw.AddEdge(0, 2, 4))
	require.NoError(t, nw.SetOpenLeg(0, 5))
	require.NoError(t, nw.SetOpenLeg(2, 7))
	return nw
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "a"}, {25, "z"}, {26, "A"}, {51, "Z"},
		{52, string(rune(192))},
		{55155, string(rune(0xD7FF))},
		{55156, string(rune(0xE000))},
		{55296, string(rune(0xE08C))},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, einsum.Symbol(tc.i), "i=%d", tc.i)
	}
}

// TestSymbol_Distinct walks past the surrogate range: every symbol must be
// a valid single code point, never U+FFFD, and never repeat.
func TestSymbol_Distinct(t *testing.T) {
	seen := make(map[string]int, 70000)
	for i := 0; i < 70000; i++ {
		sym := einsum.Symbol(i)
		require.True(t, utf8.ValidString(sym), "i=%d", i)
		require.Equal(t, 1, utf8.RuneCountInString(sym), "i=%d", i)
		require.NotEqual(t, string(utf8.RuneError), sym, "i=%d", i)
		if j, dup := seen[sym]; dup {
			t.Fatalf("Symbol(%d) == Symbol(%d) == %q", i, j, sym)
		}
		seen[sym] = i
	}
}

// TestRoundTrip_LargeChain uses enough legs to reach symbols beyond the
// surrogate range.
func TestRoundTrip_LargeChain(t *testing.T) {
	if testing.Short() {
		t.Skip("large network")
	}
	const n = 27700
	src := core.NewNetwork()
	src.AddVertices(n)
	for v := 0; v < n; v++ {
		if v > 0 {
			require.NoError(t, src.AddEdge(v-1, v, 2))
		}
		require.NoError(t, src.SetOpenLeg(v, 2))
	}

	s, err := einsum.ToSpec(src)
	require.NoError(t, err)
	assert.Len(t, s.Sizes, 2*n-1, "one symbol per leg")

	got, err := einsum.FromGraph(s.Inputs, s.Output, s.Sizes)
	require.NoError(t, err)
	assert.Equal(t, n, got.VertexCount())
	assert.Equal(t, n-1, got.EdgeCount())
	assert.Equal(t, n, got.OpenLegCount())
}

func TestToSpec(t *testing.T) {
	s, err := einsum.ToSpec(triangle(t))
	require.NoError(t, err)

	assert.Equal(t, "acd,ab,bcf->df", s.Equation())
	assert.Equal(t, [][]int64{{2, 4, 5}, {2, 3}, {3, 4, 7}}, s.Shapes())
	assert.Equal(t, map[string]int64{"a": 2, "b": 3, "c": 4, "d": 5, "f": 7}, s.Sizes)

	_, err = einsum.ToSpec(nil)
	assert.ErrorIs(t, err, einsum.ErrNilNetwork)

	// A lone vertex without legs still has an (empty) input.
	lone := core.NewNetwork()
	lone.AddVertices(1)
	s, err = einsum.ToSpec(lone)
	require.NoError(t, err)
	assert.Equal(t, "->", s.Equation())
}

// TestRoundTrip checks ToSpec followed by FromGraph on random networks,
// trees and graphs with cycles.
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for iter := 0; iter < 30; iter++ {
		n := 2 + r.Intn(8)
		src := core.NewNetwork()
		src.AddVertices(n)
		for i := 1; i < n; i++ {
			require.NoError(t, src.AddEdge(r.Intn(i), i, int64(2+r.Intn(30))))
		}
		// Extra legs close cycles.
		for k := r.Intn(n + 1); k > 0; k-- {
			u, v := r.Intn(n), r.Intn(n)
			if u == v || src.HasEdge(u, v) {
				continue
			}
			require.NoError(t, src.AddEdge(u, v, int64(2+r.Intn(30))))
		}
		for v := 0; v < n; v++ {
			if r.Intn(2) == 0 {
				require.NoError(t, src.SetOpenLeg(v, int64(1+r.Intn(8))))
			}
		}

		s, err := einsum.ToSpec(src)
		require.NoError(t, err)
		got, err := einsum.FromGraph(s.Inputs, s.Output, s.Sizes)
		require.NoError(t, err)

		require.Equal(t, src.VertexCount(), got.VertexCount())
		require.Equal(t, src.EdgeCount(), got.EdgeCount())
		for _, e := range src.Edges() {
			w, ok := got.EdgeWeight(e.U, e.V)
			assert.True(t, ok)
			assert.Equal(t, e.Weight, w)
		}
		if diff := cmp.Diff(src.OpenDims(1), got.OpenDims(1)); diff != "" {
			t.Errorf("iter %d open dims (-src +got):\n%s", iter, diff)
		}
		assert.Equal(t, n, got.OpenLegCount(), "placeholders on every bare tensor")
	}
}

func TestFromGraph_Folding(t *testing.T) {
	inputs := [][]string{{"a", "b", "x", "y"}, {"a", "b"}, {"c"}, {"c"}}
	sizes := map[string]int64{"a": 2, "b": 3, "c": 4, "x": 5, "y": 6}
	nw, err := einsum.FromGraph(inputs, []string{"x", "y"}, sizes)
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{{U: 0, V: 1, Weight: 6}, {U: 2, V: 3, Weight: 4}}, nw.Edges())
	assert.Equal(t, []core.OpenLeg{{Vertex: 0, Dim: 30}, {Vertex: 1, Dim: 1}, {Vertex: 2, Dim: 1}, {Vertex: 3, Dim: 1}}, nw.OpenLegs())
}

func TestFromGraph_Errors(t *testing.T) {
	sizes := map[string]int64{"a": 2, "b": 3, "z": 0}
	tests := []struct {
		name   string
		inputs [][]string
		output []string
		want   error
	}{
		{"three owners", [][]string{{"a"}, {"a"}, {"a"}}, nil, einsum.ErrMultiplicity},
		{"dangling", [][]string{{"a"}, {"b"}}, nil, einsum.ErrMultiplicity},
		{"trace", [][]string{{"a", "a"}}, nil, einsum.ErrMultiplicity},
		{"shared output", [][]string{{"a"}, {"a"}}, []string{"a"}, einsum.ErrMultiplicity},
		{"orphan output", [][]string{{"a"}, {"a"}}, []string{"b"}, einsum.ErrMultiplicity},
		{"no size", [][]string{{"q"}, {"q"}}, nil, einsum.ErrUnknownIndex},
		{"zero size", [][]string{{"z"}, {"z"}}, nil, core.ErrBadDimension},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := einsum.FromGraph(tc.inputs, tc.output, sizes)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSequence_Known(t *testing.T) {
	ssa := []einsum.Step{{1, 3}, {0, 4}, {2, 5}}
	lin, err := einsum.SSAToLinear(ssa)
	require.NoError(t, err)
	assert.Equal(t, []einsum.Step{{1, 3}, {0, 2}, {0, 1}}, lin)

	back, err := einsum.LinearToSSA(lin)
	require.NoError(t, err)
	assert.Equal(t, ssa, back)

	lin, err = einsum.SSAToLinear([]einsum.Step{{0, 1}, {2, 3}, {4, 5}})
	require.NoError(t, err)
	assert.Equal(t, []einsum.Step{{0, 1}, {0, 1}, {0, 1}}, lin)

	empty, err := einsum.SSAToLinear(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// randomSSA returns a random valid SSA order over n inputs.
func randomSSA(r *rand.Rand, n int) []einsum.Step {
	live := make([]int, n)
	for i := range live {
		live[i] = i
	}
	var out []einsum.Step
	for k := 0; k < n-1; k++ {
		p := r.Perm(len(live))[:2]
		out = append(out, einsum.Step{live[p[0]], live[p[1]]})
		hi, lo := max(p[0], p[1]), min(p[0], p[1])
		live = append(live[:hi], live[hi+1:]...)
		live = append(live[:lo], live[lo+1:]...)
		live = append(live, n+k)
	}
	return out
}

func TestSequence_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for iter := 0; iter < 200; iter++ {
		ssa := randomSSA(r, 2+r.Intn(12))
		lin, err := einsum.SSAToLinear(ssa)
		require.NoError(t, err)
		back, err := einsum.LinearToSSA(lin)
		require.NoError(t, err)
		require.Equal(t, ssa, back, "iter %d", iter)

		for _, st := range lin {
			assert.NotEqual(t, st[0], st[1])
		}
	}
}

func TestSequence_Invalid(t *testing.T) {
	bad := [][]einsum.Step{
		{{0, 0}},
		{{0, 5}},
		{{0, 1}, {0, 2}}, // 0 already consumed
	}
	for _, s := range bad {
		_, err := einsum.SSAToLinear(s)
		assert.ErrorIs(t, err, einsum.ErrInvalidSequence, "%v", s)
	}

	badLin := [][]einsum.Step{
		{{1, 1}},
		{{0, 2}},
		{{0, 1}, {0, 1}, {1, 2}}, // only two operands remain at step 2
	}
	for _, s := range badLin {
		_, err := einsum.LinearToSSA(s)
		assert.ErrorIs(t, err, einsum.ErrInvalidSequence, "%v", s)
	}
}

func TestPrepareInput(t *testing.T) {
	in, err := einsum.PrepareInput(triangle(t))
	require.NoError(t, err)

	assert.Equal(t, 3, in.Vertices)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {0, 2}}, in.Edges)
	assert.Equal(t, []float64{2, 3, 4}, in.EdgeCosts)
	assert.Equal(t, [][2]int{{0, 2}, {1, 2}}, in.TreeEdges)
	assert.Equal(t, []float64{4, 3}, in.TreeEdgeCosts)
	assert.Equal(t, []float64{5, 1, 7}, in.OpenCosts)

	_, err = einsum.PrepareInput(nil)
	assert.ErrorIs(t, err, einsum.ErrNilNetwork)
}

type fixedOptimizer struct {
	steps []einsum.Step
	err   error
}

func (f fixedOptimizer) Order(*einsum.OptimizerInput) ([]einsum.Step, error) { return f.steps, f.err }

func TestContractionOrder(t *testing.T) {
	s, err := einsum.ToSpec(triangle(t))
	require.NoError(t, err)

	ssa, err := einsum.ContractionOrder(einsum.TreeOptimizer{}, s.Inputs, s.Output, s.Sizes, true)
	require.NoError(t, err)
	assert.Equal(t, []einsum.Step{{0, 2}, {1, 3}}, ssa)

	lin, err := einsum.ContractionOrder(einsum.TreeOptimizer{}, s.Inputs, s.Output, s.Sizes, false)
	require.NoError(t, err)
	assert.Equal(t, []einsum.Step{{0, 2}, {0, 1}}, lin)

	_, err = einsum.ContractionOrder(nil, s.Inputs, s.Output, s.Sizes, true)
	assert.ErrorIs(t, err, einsum.ErrNilOptimizer)

	_, err = einsum.ContractionOrder(fixedOptimizer{steps: []einsum.Step{{0, 1}}}, s.Inputs, s.Output, s.Sizes, true)
	assert.ErrorIs(t, err, einsum.ErrInvalidSequence)

	_, err = einsum.ContractionOrder(fixedOptimizer{steps: []einsum.Step{{0, 1}, {0, 1}}}, s.Inputs, s.Output, s.Sizes, true)
	assert.ErrorIs(t, err, einsum.ErrInvalidSequence)

	boom := errors.New("boom")
	_, err = einsum.ContractionOrder(fixedOptimizer{err: boom}, s.Inputs, s.Output, s.Sizes, false)
	assert.ErrorIs(t, err, boom)
}

// TestTreeOptimizer_Valid checks the baseline produces valid orders.
func TestTreeOptimizer_Valid(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 20; iter++ {
		n := 2 + r.Intn(10)
		nw := core.NewNetwork()
		nw.AddVertices(n)
		for i := 1; i < n; i++ {
			require.NoError(t, nw.AddEdge(r.Intn(i), i, int64(2+r.Intn(9))))
		}
		in, err := einsum.PrepareInput(nw)
		require.NoError(t, err)
		order, err := einsum.TreeOptimizer{}.Order(in)
		require.NoError(t, err)
		require.Len(t, order, n-1)
		_, err = einsum.SSAToLinear(order)
		assert.NoError(t, err)
	}
}
