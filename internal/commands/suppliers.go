package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSuppliersCommand(cfgPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "List suppliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}

			suppliers, err := client.Suppliers(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, suppliers)
			}

			tw := table(out)
			fmt.Fprintln(tw, "NAME\tCONTACT\tEMAIL\tPHONE\tSTATUS")
			for _, s := range suppliers {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.ContactPerson, s.Email, s.Phone, s.Status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	return cmd
}
