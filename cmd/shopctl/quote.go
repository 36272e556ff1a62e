package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newQuoteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Re-price the cart against the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := e.checkout.Quote(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tQTY\tUNIT\tTOTAL\tNOTES")
			for _, l := range q.Lines {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", l.ProductID, l.Name, l.Quantity, l.UnitPrice, l.LineTotal, strings.Join(l.Advisories, ","))
			}
			fmt.Fprintf(tw, "\t\t%d\t\t%s %s\t\n", q.ItemCount, q.Total, q.Currency)
			return tw.Flush()
		},
	}
}
