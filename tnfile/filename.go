package tnfile

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tensornet/builder"
	"github.com/katalvlaran/tensornet/spantree"
)

// ErrBadFileName indicates a name that does not follow the instance naming scheme.
var ErrBadFileName = errors.New("tnfile: bad file name")

// Ext is the extension of network files.
const Ext = ".in"

// Meta is the information recoverable from a file name alone.
type Meta struct {
	Vertices int
	Edges    int
	Family   builder.Family
	LegMode  builder.LegMode
	Params   builder.Params
}

// FileName returns the canonical file name of inst.
func FileName(inst builder.Instance) string {
	return fmt.Sprintf("%d_%d_%s_%s_%s%s",
		inst.Network.VertexCount(), inst.Network.EdgeCount(),
		inst.Family, inst.LegMode, inst.Params, Ext)
}

// ParseFileName recovers the Meta encoded in name. Directories and the
// .in/.out extension are ignored.
func ParseFileName(name string) (Meta, error) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(strings.TrimSuffix(base, Ext), ".out")
	parts := strings.Split(base, "_")
	if len(parts) < 5 {
		return Meta{}, errors.Wrapf(ErrBadFileName, "%q: %d fields", name, len(parts))
	}

	var (
		meta Meta
		err  error
	)
	if meta.Vertices, err = strconv.Atoi(parts[0]); err != nil {
		return Meta{}, errors.Wrapf(ErrBadFileName, "%q: vertices: %v", name, err)
	}
	if meta.Edges, err = strconv.Atoi(parts[1]); err != nil {
		return Meta{}, errors.Wrapf(ErrBadFileName, "%q: edges: %v", name, err)
	}
	if meta.Family, err = builder.ParseFamily(parts[2]); err != nil {
		return Meta{}, errors.Wrapf(ErrBadFileName, "%q: %v", name, err)
	}
	if meta.LegMode, err = builder.ParseLegMode(parts[3]); err != nil {
		return Meta{}, errors.Wrapf(ErrBadFileName, "%q: %v", name, err)
	}
	for _, kv := range parts[4:] {
		k, v, ok := strings.Cut(kv, "-")
		if !ok || k == "" {
			return Meta{}, errors.Wrapf(ErrBadFileName, "%q: parameter %q", name, kv)
		}
		val, err := strconv.Atoi(v)
		if err != nil {
			return Meta{}, errors.Wrapf(ErrBadFileName, "%q: parameter %q", name, kv)
		}
		meta.Params = append(meta.Params, builder.Param{Name: k, Value: val})
	}

	return meta, nil
}

// TreeFileName returns the path of the spanning tree of the network at path:
// <dir>/<method>-<base>.
func TreeFileName(method spantree.Method, path string) string {
	return filepath.Join(filepath.Dir(path), string(method)+"-"+filepath.Base(path))
}
