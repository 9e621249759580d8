package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stocklens-dev/stocklens/internal/apiclient"
)

func newEventsCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage calendar events",
	}

	cmd.AddCommand(newEventsListCommand(cfgPath))
	cmd.AddCommand(newEventsAddCommand(cfgPath))
	cmd.AddCommand(newEventsRemoveCommand(cfgPath))

	return cmd
}

func newEventsListCommand(cfgPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calendar events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}

			events, err := client.Events(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, events)
			}

			tw := table(out)
			fmt.Fprintln(tw, "DATE\tTITLE\tDESCRIPTION")
			for _, e := range events {
				day := ""
				if !e.Date.IsZero() {
					day = e.Date.Format("2006-01-02")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", day, e.Title, e.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	return cmd
}

func newEventsAddCommand(cfgPath *string) *cobra.Command {
	var day string
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a calendar event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := time.Parse("2006-01-02", day); err != nil {
				return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", day)
			}

			client, _, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}

			id, err := client.CreateEvent(cmd.Context(), apiclient.EventParams{
				Title:       args[0],
				Description: description,
				Date:        day,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created event %s on %s\n", id, day)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "date", "", "event day, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&description, "description", "", "event description")

	return cmd
}

func newEventsRemoveCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a calendar event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := backendClient(*cfgPath)
			if err != nil {
				return err
			}
			if err := client.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed event %s\n", args[0])
			return nil
		},
	}
}
