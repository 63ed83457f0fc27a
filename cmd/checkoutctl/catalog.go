package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/service"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the pricing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := opts.engine.Catalog()
			if compact {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), model.FormatRules(catalog))
				return err
			}

			rows := dto.PricingRows(catalog)
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ITEM\tUNIT PRICE\tSPECIAL OFFER")
			for _, row := range rows {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", row.Item, row.UnitPrice, row.SpecialOffer)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print rules in PRICING_RULES format")

	return cmd
}

func newExamplesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Price the sample baskets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			examples := make([]dto.ExampleResponse, 0, len(service.ExampleInputs))
			for _, input := range service.ExampleInputs {
				examples = append(examples, dto.ExampleResponse{Input: input, Total: opts.engine.Total(input)})
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), examples)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INPUT\tTOTAL")
			for _, ex := range examples {
				input := ex.Input
				if input == "" {
					input = `""`
				}
				fmt.Fprintf(tw, "%s\t%d\n", input, ex.Total)
			}
			return tw.Flush()
		},
	}
}
