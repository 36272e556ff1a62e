package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Biz-Hub01/pureez/internal/order/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newOrderCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place and inspect orders",
	}

	var shipping string
	place := &cobra.Command{
		Use:   "place",
		Short: "Turn the cart into a pending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fee, err := decimal.NewFromString(shipping)
			if err != nil {
				return fmt.Errorf("invalid shipping fee %q: %w", shipping, err)
			}
			o, err := e.orders.PlaceOrder(cmd.Context(), domain.PlaceOrderRequest{SessionID: e.sessionID, Shipping: fee})
			if err != nil {
				return err
			}
			return printOrder(cmd, o)
		},
	}
	place.Flags().StringVar(&shipping, "shipping", "0", "Shipping fee in the active currency")

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List the session's orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := e.orders.ListOrders(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATUS\tITEMS\tTOTAL\tCREATED")
			for _, o := range orders {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s %s\t%s\n", o.ID, o.Status, len(o.Items), o.Total, o.Currency, o.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show ORDER_ID",
		Short: "Print one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := e.orders.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printOrder(cmd, o)
		},
	}

	cmd.AddCommand(place, ls, show)
	return cmd
}

func printOrder(cmd *cobra.Command, o domain.Order) error {
	fmt.Fprintf(cmd.OutOrStdout(), "order %s (%s)\n", o.ID, o.Status)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tUNIT\tTOTAL")
	for _, it := range o.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", it.ProductID, it.Name, it.Quantity, it.UnitPrice, it.LineTotal)
	}
	fmt.Fprintf(tw, "\t\t\tsubtotal\t%s\n", o.SubTotal)
	fmt.Fprintf(tw, "\t\t\tshipping\t%s\n", o.Shipping)
	fmt.Fprintf(tw, "\t\t\ttotal\t%s %s\n", o.Total, o.Currency)
	return tw.Flush()
}
