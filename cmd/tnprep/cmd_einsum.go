package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tensornet/einsum"
	"github.com/katalvlaran/tensornet/tnfile"
)

func newEinsumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "einsum FILE",
		Short: "Print the einsum equation and tensor shapes of a network file",
		Args:  cobra.ExactArgs(1),
		RunE:  EinsumHandler,
	}
	cmd.Flags().Bool("order", false, "Also print the spanning-tree contraction order")
	cmd.Flags().Bool("ssa", false, "Print the order in SSA form instead of linear form")

	return cmd
}

// EinsumHandler prints the contraction description of FILE.
func EinsumHandler(cmd *cobra.Command, args []string) error {
	nw, err := tnfile.ReadFile(args[0])
	if err != nil {
		return err
	}
	spec, err := einsum.ToSpec(nw)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, spec.Equation())
	fmt.Fprintln(w, spec.Shapes())

	if order, _ := cmd.Flags().GetBool("order"); !order {
		return nil
	}
	ssa, _ := cmd.Flags().GetBool("ssa")
	steps, err := einsum.ContractionOrder(einsum.TreeOptimizer{}, spec.Inputs, spec.Output, spec.Sizes, ssa)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, steps)

	return nil
}
