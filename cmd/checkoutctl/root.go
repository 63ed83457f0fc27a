package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/service"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	rules  string
	asJSON bool

	engine *service.CheckoutService
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "checkoutctl",
		Short: "Price supermarket baskets",
		Long: `checkoutctl prices sequences of scanned items against unit prices and
"N for P" multi-buy offers.

Examples:
  checkoutctl total AAABBD
  checkoutctl total --rules "A:50:3:130,B:30:2:45,C:20,D:15" DABABA
  checkoutctl receipt AAAB -o receipt.txt
  checkoutctl rules`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.loadEngine()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.rules, "rules", "", "pricing rules as ITEM:PRICE[:QTY:DEAL],... (default catalog if empty)")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	cmd.AddCommand(
		newTotalCmd(opts),
		newBreakdownCmd(opts),
		newReceiptCmd(opts),
		newRulesCmd(opts),
		newExamplesCmd(opts),
	)

	return cmd
}

func (o *rootOptions) loadEngine() error {
	if o.rules == "" {
		o.engine = service.NewCheckoutService()
		return nil
	}

	catalog, err := model.ParseCatalog(o.rules)
	if err != nil {
		return fmt.Errorf("invalid --rules: %w", err)
	}
	o.engine = service.NewCheckoutService(service.WithCatalog(catalog))
	return nil
}
