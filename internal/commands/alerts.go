package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stocklens-dev/stocklens/internal/aggregate"
)

func newAlertsCommand(cfgPath *string) *cobra.Command {
	var dismiss string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List active alerts, enriched with item names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if dismiss != "" {
				if err := client.DeleteAlert(ctx, dismiss); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dismissed alert %s\n", dismiss)
				return nil
			}

			alerts, err := client.Alerts(ctx)
			if err != nil {
				return err
			}
			items, err := client.Items(ctx)
			if err != nil {
				return err
			}

			enriched := aggregate.EnrichAlerts(alerts, items)

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, enriched)
			}
			if len(enriched) == 0 {
				fmt.Fprintln(out, "No active alerts")
				return nil
			}

			tw := table(out)
			fmt.Fprintln(tw, "TYPE\tTITLE\tMESSAGE\tITEM")
			for _, a := range enriched {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Type, a.Title, a.Message, a.ItemName)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dismiss, "dismiss", "", "dismiss the alert with this id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	return cmd
}
