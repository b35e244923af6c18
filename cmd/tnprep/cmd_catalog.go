package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tensornet/builder"
	"github.com/katalvlaran/tensornet/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect an instance catalog",
	}

	ls := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List catalog entries",
		Args:    cobra.NoArgs,
		RunE:    CatalogListHandler,
	}
	ls.Flags().String("catalog", "", "Catalog directory")
	ls.Flags().StringSliceP("type", "t", nil, "Only these families (default all)")
	_ = ls.MarkFlagRequired("catalog")

	cmd.AddCommand(ls)
	return cmd
}

// CatalogListHandler prints one row per stored instance.
func CatalogListHandler(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("catalog")
	names, _ := cmd.Flags().GetStringSlice("type")

	families := builder.Families()
	if len(names) > 0 {
		families = nil
		for _, name := range names {
			f, err := builder.ParseFamily(name)
			if err != nil {
				return err
			}
			families = append(families, f)
		}
	}

	cat, err := catalog.Open(catalog.Options{Path: path, ReadOnly: true})
	if err != nil {
		return err
	}
	defer cat.Close()

	var data [][]string
	for _, f := range families {
		entries, err := cat.List(f)
		if err != nil {
			return err
		}
		for _, e := range entries {
			data = append(data, []string{
				e.Name,
				strconv.Itoa(e.Meta.Vertices),
				strconv.Itoa(e.Meta.Edges),
				e.Meta.LegMode.String(),
				humanize.Bytes(uint64(e.Bytes)),
			})
		}
	}

	w := cmd.OutOrStdout()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "N", "M", "LEGS", "SIZE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
	fmt.Fprintln(w)

	return nil
}
