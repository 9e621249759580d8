package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stocklens-dev/stocklens/internal/export"
)

func newExportCommand(cfgPath *string) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write inventory and transaction CSV reports",
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
			txs, err := client.Transactions(ctx)
			if err != nil {
				return err
			}
			suppliers, err := client.Suppliers(ctx)
			if err != nil {
				return err
			}

			paths, err := export.Reports(outDir, items, txs, suppliers)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "reports", "output directory")

	return cmd
}
