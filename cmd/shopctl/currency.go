package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Biz-Hub01/pureez/internal/currency/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCurrencyCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Choose the display currency and convert prices",
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List supported currencies and rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.currencies.GetOrCreate(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			active := m.Active().Code
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\tCODE\tNAME\tSYMBOL\tRATE")
			for _, c := range m.Currencies() {
				mark := ""
				if c.Code == active {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", mark, c.Code, c.Name, c.Symbol, c.Rate)
			}
			return tw.Flush()
		},
	}

	set := &cobra.Command{
		Use:   "set <code>",
		Short: "Select the display currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.currencies.GetOrCreate(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			if err := m.SetCurrency(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "prices now shown in %s\n", m.Active().Code)
			return nil
		},
	}

	convert := &cobra.Command{
		Use:   "convert <amount> [code]",
		Short: "Convert a base-currency amount",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("amount: %w", err)
			}
			m, err := e.currencies.GetOrCreate(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			code := m.Active().Code
			if len(args) == 2 {
				code = domain.NormalizeCode(args[1])
			}
			out, err := m.Convert(amount, code)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", out, code)
			return nil
		},
	}

	format := &cobra.Command{
		Use:   "format <amount>",
		Short: "Format a base-currency amount in the active currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("amount: %w", err)
			}
			m, err := e.currencies.GetOrCreate(cmd.Context(), e.sessionID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.FormatPrice(amount))
			return nil
		},
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the latest exchange rates now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.rates.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rates refreshed at %s\n", e.rates.LastRefresh().Format("2006-01-02 15:04:05Z07:00"))
			return nil
		},
	}

	cmd.AddCommand(ls, set, convert, format, refresh)
	return cmd
}
