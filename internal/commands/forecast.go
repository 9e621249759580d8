package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stocklens-dev/stocklens/internal/aggregate"
	"github.com/stocklens-dev/stocklens/internal/forecast"
)

func newForecastCommand(cfgPath *string) *cobra.Command {
	var (
		itemRef    string
		period     int
		confidence int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project demand for an item via the prediction service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}
			if period == 0 {
				period = cfg.Forecast.Period
			}
			if confidence == 0 {
				confidence = cfg.Forecast.Confidence
			}
			ctx := cmd.Context()

			items, err := client.Items(ctx)
			if err != nil {
				return err
			}
			it, err := findItem(items, itemRef)
			if err != nil {
				return err
			}

			txs, err := client.Transactions(ctx)
			if err != nil {
				return err
			}

			history := aggregate.MonthlySales(txs, it.ID, 12)
			if len(history) == 0 {
				return fmt.Errorf("no sales history for %q", it.Name)
			}

			fc := forecast.NewClient(cfg.Forecast.URL, cfg.Timeout(), log.Logger)
			resp, err := fc.Predict(ctx, forecast.BuildRequest(it, history, period, confidence))
			if err != nil {
				return err
			}

			points := forecast.Merge(history, resp)

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, points)
			}

			fmt.Fprintf(out, "%s: demand forecast (%d months, %d%% confidence)\n", it.Name, period, confidence)
			tw := table(out)
			fmt.Fprintln(tw, "MONTH\tUNITS\tRANGE")
			for _, p := range points {
				bounds := ""
				if p.Projected {
					if !p.Upper.IsZero() || !p.Lower.IsZero() {
						bounds = fmt.Sprintf("%s..%s", p.Lower, p.Upper)
					}
					fmt.Fprintf(tw, "%s*\t%s\t%s\n", p.Month, p.Value, bounds)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t\n", p.Month, p.Value)
			}
			tw.Flush()
			fmt.Fprintln(out, "* projected")
			return nil
		},
	}

	cmd.Flags().StringVar(&itemRef, "item", "", "item id or name (required)")
	_ = cmd.MarkFlagRequired("item")
	cmd.Flags().IntVar(&period, "period", 0, "months to project (default from config)")
	cmd.Flags().IntVar(&confidence, "confidence", 0, "confidence level percent (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	return cmd
}
