package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stocklens-dev/stocklens/internal/views"
)

func newDashboardCommand(cfgPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the inventory dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			items, err := client.Items(ctx)
			if err != nil {
				return err
			}
			txs, err := client.Transactions(ctx)
			if err != nil {
				return err
			}
			suppliers, err := client.Suppliers(ctx)
			if err != nil {
				return err
			}
			alerts, err := client.Alerts(ctx)
			if err != nil {
				return err
			}

			sum := views.BuildDashboard(items, txs, suppliers, alerts, cfg.Display.TopN, cfg.Display.Recent, time.Now())

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, sum)
			}

			tw := table(out)
			fmt.Fprintf(tw, "Total units in stock\t%d\n", sum.TotalUnits)
			fmt.Fprintf(tw, "Items low in stock\t%d (%.1f%%)\n", sum.LowStockCount, sum.LowStockPercent)
			fmt.Fprintf(tw, "Suppliers\t%d\n", sum.SupplierCount)
			fmt.Fprintf(tw, "Net revenue today\t%s (%+d%% %s)\n", money(sum.TodayRevenue), sum.RevenueChange, sum.RevenueTrend)
			tw.Flush()

			fmt.Fprintln(out)
			printChart(out, sum.StockLevels)
			fmt.Fprintln(out)
			printChart(out, sum.TopSelling)

			if len(sum.RecentTransactions) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Recent Transactions")
				tw = table(out)
				for _, tx := range sum.RecentTransactions {
					day := ""
					if !tx.Date.IsZero() {
						day = tx.Date.Format("2006-01-02")
					}
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%d units\n", day, tx.Type, tx.Description, money(tx.Amount), tx.Quantity)
				}
				tw.Flush()
			}

			if len(sum.Alerts) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Active Alerts")
				tw = table(out)
				for _, a := range sum.Alerts {
					fmt.Fprintf(tw, "  [%s]\t%s\t%s\t%s\n", a.Type, a.Title, a.Message, a.ItemName)
				}
				tw.Flush()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of tables")

	return cmd
}
