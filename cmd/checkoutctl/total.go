package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/service"
)

func newTotalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "total [items]",
		Short: "Print the total price of an item sequence",
		Long: `Print the total price of an item sequence. Items are case-folded to
uppercase and characters without a pricing rule are ignored. With no
argument the empty basket is priced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := ""
			if len(args) > 0 {
				items = service.NormalizeItems(args[0])
			}
			total := opts.engine.Total(items)

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.TotalResponse{Items: items, Total: total})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), total)
			return err
		},
	}
}

func newBreakdownCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown <items>",
		Short: "Itemize an item sequence into special and regular rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checkout := opts.engine.Breakdown(service.NormalizeItems(args[0]))
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), checkout)
			}

			out := cmd.OutOrStdout()
			for _, line := range checkout.Lines {
				if _, err := fmt.Fprintln(out, line.String()); err != nil {
					return err
				}
			}
			if checkout.Ignored != "" {
				fmt.Fprintf(out, "Ignored: %s\n", checkout.Ignored)
			}
			_, err := fmt.Fprintf(out, "TOTAL: %d\n", checkout.Total)
			return err
		},
	}
}
