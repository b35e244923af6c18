package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tensornet/core"
)

// ExampleNetwork builds a three-tensor chain with one open leg per tensor
// and shows the duplicate-edge guard.
func ExampleNetwork() {
	nw := core.NewNetwork()

	// Name tensors by coordinate; ids follow first-seen order.
	a := nw.Vertex(core.Coord{I: 0, J: 0})
	b := nw.Vertex(core.Coord{I: 1, J: 0})
	c := nw.Vertex(core.Coord{I: 2, J: 0})

	_ = nw.AddEdge(a, b, 4)
	_ = nw.AddEdge(b, c, 8)
	for _, v := range []int{a, b, c} {
		_ = nw.SetOpenLeg(v, 2)
	}

	err := nw.AddEdge(b, a, 2)
	fmt.Println("duplicate:", errors.Is(err, core.ErrDuplicateEdge))

	for _, e := range nw.Edges() {
		fmt.Printf("%d-%d w=%d\n", e.U, e.V, e.Weight)
	}
	fmt.Printf("%+v\n", nw.Stats())
	// Output:
	// duplicate: true
	// 0-1 w=4
	// 1-2 w=8
	// {Vertices:3 Edges:2 OpenLegs:3 MaxDegree:2}
}
