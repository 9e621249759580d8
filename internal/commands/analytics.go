package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stocklens-dev/stocklens/internal/views"
)

const analyticsDataTypes = "stock, revenue, categories, top-selling, trends, item-history"

func newAnalyticsCommand(cfgPath *string) *cobra.Command {
	var (
		dataType  string
		rangeDays int
		itemRef   string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Render an analytics data series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}
			if rangeDays == 0 {
				rangeDays = cfg.Display.RangeDays
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

			now := time.Now()
			out := cmd.OutOrStdout()

			var charts []views.ChartData
			switch dataType {
			case "stock":
				charts = append(charts, views.StockLevels(items, cfg.Display.TopN))
			case "revenue":
				charts = append(charts, views.SalesRevenue(txs, rangeDays, now))
			case "categories":
				charts = append(charts, views.CategoryDistribution(items))
			case "top-selling":
				charts = append(charts, views.TopSelling(txs, items, cfg.Display.TopN))
			case "trends":
				sales, purchases := views.TransactionTrends(txs, rangeDays, now)
				charts = append(charts, sales, purchases)
			case "item-history":
				if itemRef == "" {
					return fmt.Errorf("--item is required for item-history")
				}
				it, err := findItem(items, itemRef)
				if err != nil {
					return err
				}
				chart := views.ItemSalesHistory(txs, it.ID, 12)
				chart.Title = fmt.Sprintf("%s: %s", it.Name, chart.Title)
				charts = append(charts, chart)
			default:
				return fmt.Errorf("unknown data type %q (choose one of: %s)", dataType, analyticsDataTypes)
			}

			if asJSON {
				return printJSON(out, charts)
			}
			for i, chart := range charts {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printChart(out, chart)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataType, "data", "stock", "data series: "+analyticsDataTypes)
	cmd.Flags().IntVar(&rangeDays, "range", 0, "trailing window in days (default from config)")
	cmd.Flags().StringVar(&itemRef, "item", "", "item id or name (item-history only)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of tables")

	return cmd
}
