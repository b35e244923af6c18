package tnfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tensornet/builder"
	"github.com/katalvlaran/tensornet/core"
)

// ErrMalformed indicates content that does not follow the network format.
var ErrMalformed = errors.New("tnfile: malformed network file")

// MaxVertices bounds the vertex count a header may announce.
const MaxVertices = 1 << 24

// Write serializes nw. Open-leg rows are written only in builder.LegOpen mode.
func Write(w io.Writer, nw *core.Network, mode builder.LegMode) error {
	bw := bufio.NewWriter(w)
	edges := nw.Edges()

	o := 0
	if mode == builder.LegOpen {
		o = nw.OpenLegCount()
	}
	fmt.Fprintf(bw, "%d %d %d\n", nw.VertexCount(), len(edges), o)
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.U, e.V, e.Weight)
	}
	if mode == builder.LegOpen {
		for _, ol := range nw.OpenLegs() {
			fmt.Fprintf(bw, "%d %d\n", ol.Vertex, ol.Dim)
		}
	}

	return bw.Flush()
}

// Read parses a network. name labels positions in errors.
//
// Errors: ErrMalformed for syntax or row-count problems; core sentinels
// (ErrDuplicateEdge, ErrVertexRange, ...) for rows that violate the model,
// wrapped with their line number.
func Read(name string, r io.Reader) (*core.Network, error) {
	ast, err := netParser.Parse(name, r)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%s", err)
	}
	lines := ast.Lines
	if len(lines) == 0 {
		return nil, errors.Wrapf(ErrMalformed, "%s: empty", name)
	}

	// 1) Header: n m o.
	hdr := lines[0]
	if len(hdr.Fields) != 3 {
		return nil, malformed(hdr, "header has %d fields, want 3", len(hdr.Fields))
	}
	n, m, o := hdr.Fields[0], hdr.Fields[1], hdr.Fields[2]
	if n > MaxVertices {
		return nil, malformed(hdr, "%d vertices exceed %d", n, MaxVertices)
	}
	rows := int64(len(lines) - 1)
	if m > rows || o > rows || rows != m+o {
		return nil, malformed(hdr, "%d rows, header announces %d edges and %d open legs", len(lines)-1, m, o)
	}

	nw := core.NewNetwork()
	nw.AddVertices(int(n))

	// 2) Closed legs.
	for _, ln := range lines[1 : 1+m] {
		if len(ln.Fields) != 3 {
			return nil, malformed(ln, "edge row has %d fields, want 3", len(ln.Fields))
		}
		if err := nw.AddEdge(int(ln.Fields[0]), int(ln.Fields[1]), ln.Fields[2]); err != nil {
			return nil, errors.Wrapf(err, "%s", ln.Pos)
		}
	}

	// 3) Open legs.
	for _, ln := range lines[1+m:] {
		if len(ln.Fields) != 2 {
			return nil, malformed(ln, "open-leg row has %d fields, want 2", len(ln.Fields))
		}
		if err := nw.SetOpenLeg(int(ln.Fields[0]), ln.Fields[1]); err != nil {
			return nil, errors.Wrapf(err, "%s", ln.Pos)
		}
	}

	return nw, nil
}

func malformed(ln *netLine, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformed, "%s: "+format, append([]interface{}{ln.Pos}, args...)...)
}

// ReadFile reads the network stored at path.
func ReadFile(path string) (*core.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(filepath.Base(path), f)
}

// WriteFile writes nw to path, creating parent directories.
func WriteFile(path string, nw *core.Network, mode builder.LegMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, nw, mode); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Save writes inst to <dir>/<family>/<FileName(inst)> and returns the path.
func Save(dir string, inst builder.Instance) (string, error) {
	path := filepath.Join(dir, inst.Family.String(), FileName(inst))
	if err := WriteFile(path, inst.Network, inst.LegMode); err != nil {
		return "", errors.Wrapf(err, "save %s", path)
	}

	return path, nil
}
