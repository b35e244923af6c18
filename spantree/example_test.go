package spantree_test

import (
	"fmt"

	"github.com/katalvlaran/tensornet/core"
	"github.com/katalvlaran/tensornet/spantree"
)

// ExampleCompute contrasts the three methods on a 4-cycle with a chord.
func ExampleCompute() {
	nw := core.NewNetwork()
	nw.AddVertices(4)
	_ = nw.AddEdge(0, 1, 4)
	_ = nw.AddEdge(1, 2, 2)
	_ = nw.AddEdge(2, 3, 8)
	_ = nw.AddEdge(3, 0, 2)
	_ = nw.AddEdge(0, 2, 16)

	for _, m := range []spantree.Method{spantree.MethodMinimum, spantree.MethodMaximum, spantree.MethodMinDegree} {
		tree, err := spantree.Compute(nw, m)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-5s weight=%d maxdeg=%d edges=%v\n", tree.Method, tree.Weight, tree.MaxDegree, tree.Edges)
	}
	// Output:
	// mst   weight=8 maxdeg=2 edges=[{1 2 2} {0 3 2} {0 1 4}]
	// maxst weight=28 maxdeg=2 edges=[{0 2 16} {2 3 8} {0 1 4}]
	// mdst  weight=14 maxdeg=2 edges=[{0 1 4} {1 2 2} {2 3 8}]
}
