package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newWishlistCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist",
	}

	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Save a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := e.wishlists.GetOrCreate(ctx, e.sessionID)
			if err != nil {
				return err
			}
			entry, err := e.catalog.WishlistItem(ctx, args[0])
			if err != nil {
				return fmt.Errorf("product %s: %w", args[0], err)
			}
			if !m.AddToWishlist(ctx, entry) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already saved\n", entry.Name)
			}
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Forget a saved product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.wishlists.GetOrCreate(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			if !m.RemoveFromWishlist(cmd.Context(), args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not saved\n", args[0])
			}
			return nil
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List saved products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := e.wishlists.GetOrCreate(ctx, e.sessionID)
			if err != nil {
				return err
			}
			cur, err := e.currencies.GetOrCreate(ctx, e.sessionID)
			if err != nil {
				return err
			}

			entries := m.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "wishlist is empty")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRICE\tIN STOCK")
			for _, en := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", en.ID, en.Name, cur.FormatPrice(en.Price), en.InStock)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(add, rm, ls)
	return cmd
}
