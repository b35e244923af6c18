// Command tnprep generates tensor-network topologies and pre-processes
// network files for contraction-order optimizers.
//
//	tnprep generate --type peps --type ttn --size 64 --leg_type open
//	tnprep spantree data/peps/16_24_peps_open_width-4_height-4.in mdst
//	tnprep einsum data/ttn/7_6_ttn_closed_height-3.in --order
//	tnprep catalog ls --catalog catalog.db
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tnprep",
		Short:         "Tensor-network generation and preprocessing",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// klog flags (-v, -logtostderr, ...) on every subcommand.
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	root.PersistentFlags().AddGoFlagSet(fset)

	root.AddCommand(
		newGenerateCmd(),
		newSpantreeCmd(),
		newEinsumCmd(),
		newCatalogCmd(),
	)

	return root
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		klog.Errorf("tnprep: %v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
