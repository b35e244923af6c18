package main

import (
	"fmt"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tensornet/builder"
	"github.com/katalvlaran/tensornet/spantree"
	"github.com/katalvlaran/tensornet/tnfile"
)

func newSpantreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spantree FILE {mst|maxst|mdst}",
		Short: "Write the spanning tree of a network file next to it",
		Args:  cobra.ExactArgs(2),
		RunE:  SpantreeHandler,
	}
	cmd.Flags().Int("vertex-limit", spantree.DefaultVertexLimit, "Largest network accepted by mdst")

	return cmd
}

// SpantreeHandler reads FILE, computes the tree and writes <method>-FILE.
func SpantreeHandler(cmd *cobra.Command, args []string) error {
	path := args[0]
	method, err := spantree.ParseMethod(args[1])
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("vertex-limit")

	nw, err := tnfile.ReadFile(path)
	if err != nil {
		return err
	}
	tree, err := spantree.Compute(nw, method, spantree.WithVertexLimit(limit))
	if err != nil {
		return err
	}
	out, err := tree.Network(nw)
	if err != nil {
		return err
	}

	// Keep the source's leg convention when its name carries one.
	mode := builder.LegOpen
	if meta, err := tnfile.ParseFileName(path); err == nil {
		mode = meta.LegMode
	} else {
		klog.V(1).Infof("spantree: %v; writing open legs", err)
	}

	dst := tnfile.TreeFileName(method, path)
	if err := tnfile.WriteFile(dst, out, mode); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: weight=%d maxdeg=%d edges=%d\n", dst, tree.Weight, tree.MaxDegree, len(tree.Edges))

	return nil
}
