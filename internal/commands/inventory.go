package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stocklens-dev/stocklens/internal/aggregate"
	"github.com/stocklens-dev/stocklens/internal/model"
)

// findItem resolves a user-supplied reference to an item, by id first and
// then by case-insensitive name.
func findItem(items []model.Item, ref string) (model.Item, error) {
	if it, ok := aggregate.FindItem(items, ref); ok {
		return it, nil
	}
	for _, it := range items {
		if strings.EqualFold(it.Name, ref) {
			return it, nil
		}
	}
	return model.Item{}, fmt.Errorf("no item matches %q", ref)
}

func newInventoryCommand(cfgPath *string) *cobra.Command {
	var lowOnly bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List inventory items with derived stock status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			items, err := client.Items(ctx)
			if err != nil {
				return err
			}
			suppliers, err := client.Suppliers(ctx)
			if err != nil {
				return err
			}

			if lowOnly {
				var low []model.Item
				for _, it := range items {
					if aggregate.StatusOf(it) == model.StockLow {
						low = append(low, it)
					}
				}
				items = low
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, items)
			}

			tw := table(out)
			fmt.Fprintln(tw, "NAME\tCATEGORY\tQTY\tUNIT\tSTATUS\tSUPPLIER")
			for _, it := range items {
				supplier := ""
				if it.SupplierID != "" {
					supplier = aggregate.SupplierName(suppliers, it.SupplierID)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
					it.Name, it.Category, it.Quantity, it.Unit, aggregate.StatusOf(it), supplier)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&lowOnly, "low", false, "only items at or below their threshold")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	return cmd
}
