package tnfile_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensornet/builder"
	"github.com/katalvlaran/tensornet/core"
	"github.com/katalvlaran/tensornet/spantree"
	"github.com/katalvlaran/tensornet/tnfile"
)

func peps2x3(t *testing.T, mode builder.LegMode) builder.Instance {
	t.Helper()
	g, err := builder.NewGenerator(builder.PEPS, 6, builder.WithLegMode(mode))
	require.NoError(t, err)
	out, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	return out[1]
}

func TestWrite_Exact(t *testing.T) {
	nw := core.NewNetwork()
	nw.AddVertices(3)
	require.NoError(t, nw.AddEdge(1, 0, 4))
	require.NoError(t, nw.AddEdge(1, 2, 8))
	require.NoError(t, nw.SetOpenLeg(2, 2))
	require.NoError(t, nw.SetOpenLeg(0, 4))

	var open, closed bytes.Buffer
	require.NoError(t, tnfile.Write(&open, nw, builder.LegOpen))
	require.NoError(t, tnfile.Write(&closed, nw, builder.LegClosed))

	assert.Equal(t, "3 2 2\n0 1 4\n1 2 8\n2 2\n0 4\n", open.String())
	assert.Equal(t, "3 2 0\n0 1 4\n1 2 8\n", closed.String())
}

func TestReadWrite_RoundTrip(t *testing.T) {
	for _, mode := range []builder.LegMode{builder.LegOpen, builder.LegClosed} {
		inst := peps2x3(t, mode)
		var buf bytes.Buffer
		require.NoError(t, tnfile.Write(&buf, inst.Network, mode))

		got, err := tnfile.Read("peps", &buf)
		require.NoError(t, err)
		assert.Equal(t, inst.Network.VertexCount(), got.VertexCount())
		if diff := cmp.Diff(inst.Network.Edges(), got.Edges()); diff != "" {
			t.Errorf("%s edges (-want +got):\n%s", mode, diff)
		}
		if mode == builder.LegOpen {
			assert.Equal(t, inst.Network.OpenLegs(), got.OpenLegs())
		} else {
			assert.Zero(t, got.OpenLegCount())
		}
	}
}

func TestRead_Lenient(t *testing.T) {
	// Blank lines, CRLF and trailing spaces are accepted.
	src := "2 1 1\r\n\n0 1 16  \r\n1 4\n\n"
	nw, err := tnfile.Read("x", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 1, Weight: 16}}, nw.Edges())
	assert.Equal(t, []core.OpenLeg{{Vertex: 1, Dim: 4}}, nw.OpenLegs())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", tnfile.ErrMalformed},
		{"letters", "2 1 0\n0 one 2\n", tnfile.ErrMalformed},
		{"negative", "2 1 0\n0 1 -2\n", tnfile.ErrMalformed},
		{"short header", "2 1\n0 1 2\n", tnfile.ErrMalformed},
		{"missing row", "3 2 0\n0 1 2\n", tnfile.ErrMalformed},
		{"extra row", "2 1 0\n0 1 2\n1 2\n", tnfile.ErrMalformed},
		{"edge arity", "2 1 0\n0 1\n", tnfile.ErrMalformed},
		{"open arity", "2 1 1\n0 1 2\n1 2 3\n", tnfile.ErrMalformed},
		{"huge vertex count", "4000000000000000000 0 0\n", tnfile.ErrMalformed},
		{"one past max vertices", "16777217 0 0\n", tnfile.ErrMalformed},
		{"row count overflow", "2 4611686018427387904 4611686018427387904\n", tnfile.ErrMalformed},
		{"self loop", "2 1 0\n1 1 2\n", core.ErrSelfLoop},
		{"duplicate", "2 2 0\n0 1 2\n1 0 3\n", core.ErrDuplicateEdge},
		{"range", "2 1 0\n0 5 2\n", core.ErrVertexRange},
		{"zero dim", "2 1 0\n0 1 0\n", core.ErrBadDimension},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tnfile.Read(tc.name, strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFileName(t *testing.T) {
	inst := peps2x3(t, builder.LegOpen)
	name := tnfile.FileName(inst)
	assert.Equal(t, "6_7_peps_open_width-2_height-3.in", name)

	meta, err := tnfile.ParseFileName(filepath.Join("data", "peps", name))
	require.NoError(t, err)
	assert.Equal(t, tnfile.Meta{
		Vertices: 6,
		Edges:    7,
		Family:   builder.PEPS,
		LegMode:  builder.LegOpen,
		Params:   inst.Params,
	}, meta)

	meta, err = tnfile.ParseFileName("7_6_ttn_closed_height-3.out")
	require.NoError(t, err)
	assert.Equal(t, builder.TTN, meta.Family)
	assert.Equal(t, builder.Params{{Name: "height", Value: 3}}, meta.Params)

	for _, bad := range []string{
		"graph.in",
		"6_7_peps_open.in",
		"x_7_peps_open_width-2.in",
		"6_x_peps_open_width-2.in",
		"6_7_cube_open_width-2.in",
		"6_7_peps_ajar_width-2.in",
		"6_7_peps_open_width.in",
		"6_7_peps_open_width-two.in",
	} {
		_, err := tnfile.ParseFileName(bad)
		assert.ErrorIs(t, err, tnfile.ErrBadFileName, bad)
	}
}

func TestSaveAndTree(t *testing.T) {
	dir := t.TempDir()
	inst := peps2x3(t, builder.LegOpen)

	path, err := tnfile.Save(dir, inst)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "peps", "6_7_peps_open_width-2_height-3.in"), path)

	nw, err := tnfile.ReadFile(path)
	require.NoError(t, err)
	tree, err := spantree.MinimumDegree(nw)
	require.NoError(t, err)
	treeNet, err := tree.Network(nw)
	require.NoError(t, err)

	treePath := tnfile.TreeFileName(spantree.MethodMinDegree, path)
	assert.Equal(t, filepath.Join(dir, "peps", "mdst-6_7_peps_open_width-2_height-3.in"), treePath)
	require.NoError(t, tnfile.WriteFile(treePath, treeNet, builder.LegOpen))

	back, err := tnfile.ReadFile(treePath)
	require.NoError(t, err)
	assert.Equal(t, 5, back.EdgeCount())
	assert.Equal(t, 6, back.OpenLegCount())
	assert.Equal(t, 2, back.Stats().MaxDegree)

	_, err = tnfile.ReadFile(filepath.Join(dir, "missing.in"))
	assert.Error(t, err)
}
