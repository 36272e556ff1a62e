package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCartCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart",
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product, or increase its quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := e.carts.GetOrCreate(ctx, e.sessionID)
			if err != nil {
				return err
			}
			item, err := e.catalog.CartItem(ctx, args[0])
			if err != nil {
				return fmt.Errorf("product %s: %w", args[0], err)
			}
			line := m.AddToCart(ctx, item, qty)
			fmt.Fprintf(cmd.OutOrStdout(), "%s x%d\n", line.Title, line.Quantity)
			return nil
		},
	}
	add.Flags().IntVarP(&qty, "qty", "q", 1, "Quantity to add")

	rm := &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.carts.GetOrCreate(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			if !m.RemoveFromCart(cmd.Context(), args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not in the cart\n", args[0])
			}
			return nil
		},
	}

	setQty := &cobra.Command{
		Use:   "qty <product-id> <quantity>",
		Short: "Set the quantity of a product already in the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be an integer: %w", err)
			}
			m, err := e.carts.GetOrCreate(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			if !m.UpdateQuantity(cmd.Context(), args[0], n) {
				fmt.Fprintln(cmd.OutOrStdout(), "quantity not changed")
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.carts.GetOrCreate(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			m.ClearCart(cmd.Context())
			return nil
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List cart lines in the active currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := e.carts.GetOrCreate(ctx, e.sessionID)
			if err != nil {
				return err
			}
			cur, err := e.currencies.GetOrCreate(ctx, e.sessionID)
			if err != nil {
				return err
			}

			lines := m.Lines()
			if len(lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "cart is empty")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tQTY\tPRICE\tTOTAL")
			for _, l := range lines {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", l.ID, l.Title, l.Quantity, cur.FormatPrice(l.Price), cur.FormatPrice(l.LineTotal()))
			}
			fmt.Fprintf(tw, "\t\t%d\t\t%s\n", m.ItemCount(), cur.FormatPrice(m.Subtotal()))
			return tw.Flush()
		},
	}

	cmd.AddCommand(add, rm, setQty, clearCmd, ls)
	return cmd
}
