package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateSpantreeEinsum(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	db := filepath.Join(dir, "catalog")

	out, err := execute(t, "generate", "--type", "mps", "--type", "ttn", "--size", "4",
		"--leg_type", "open", "--out", data, "--catalog", db, "--parallel", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "FAMILY")
	assert.Contains(t, out, "3_2_ttn_open_height-2.in")

	mps := filepath.Join(data, "mps", "3_2_mps_open_width-3.in")
	require.FileExists(t, mps)

	out, err = execute(t, "spantree", mps, "mdst")
	require.NoError(t, err)
	assert.Contains(t, out, "maxdeg=2 edges=2")
	assert.FileExists(t, filepath.Join(data, "mps", "mdst-3_2_mps_open_width-3.in"))

	out, err = execute(t, "einsum", mps, "--order")
	require.NoError(t, err)
	assert.Contains(t, out, "ac,abd,be->cde")

	out, err = execute(t, "catalog", "ls", "--catalog", db, "--type", "mps")
	require.NoError(t, err)
	assert.Contains(t, out, "4_3_mps_open_width-4.in")
	assert.NotContains(t, out, "ttn")
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("families = [\"peps\"]\nsize = 4\nout_dir = \"out\"\n"), 0o644))

	// --size overrides the file.
	_, err := execute(t, "generate", "--config", cfg, "--size", "6")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "out", "peps", "6_7_peps_closed_width-2_height-3.in"))
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "generate", "--size", "4")
	assert.Error(t, err, "no families")

	_, err = execute(t, "generate", "--type", "cube", "--size", "4")
	assert.Error(t, err)

	_, err = execute(t, "spantree", "missing.in", "mst")
	assert.Error(t, err)

	_, err = execute(t, "spantree", "missing.in", "prim")
	assert.Error(t, err)

	_, err = execute(t, "catalog", "ls")
	assert.Error(t, err, "--catalog is required")
}
