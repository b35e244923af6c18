package builder

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/tensornet/core"
)

// Shape parameter names.
const (
	ParamWidth  = "width"
	ParamHeight = "height"
)

// Param is one named shape parameter of an instance.
type Param struct {
	Name  string
	Value int
}

// Params is an ordered parameter list.
type Params []Param

// String renders the list as "width-2_height-3".
func (ps Params) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Name + "-" + strconv.Itoa(p.Value)
	}
	return strings.Join(parts, "_")
}

// Get returns the value of the named parameter.
func (ps Params) Get(name string) (int, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return 0, false
}

// Instance is one generated network together with the parameters that
// produced it.
type Instance struct {
	Family  Family
	LegMode LegMode
	Params  Params
	Network *core.Network
}
