package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/stocklens-dev/stocklens/internal/views"
)

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printChart renders a labeled series as a two-column table.
func printChart(w io.Writer, data views.ChartData) {
	if data.Title != "" {
		fmt.Fprintf(w, "%s\n", data.Title)
	}
	if len(data.Labels) == 0 {
		fmt.Fprintln(w, "  (no data)")
		return
	}
	tw := table(w)
	for i, label := range data.Labels {
		fmt.Fprintf(tw, "  %s\t%s\n", label, data.Values[i])
	}
	tw.Flush()
}
