package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guttosm/checkout-service/internal/service"
)

func newReceiptCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "receipt <items>",
		Short: "Render a plain-text receipt",
		Long: `Render a plain-text receipt for an item sequence.

By default the receipt is printed. Use -o to write it to a file, or --save
to write it to receipt-<unix millis>.txt in the current directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			receipts := service.NewReceiptService(opts.engine)
			receipt, err := receipts.Issue(service.NormalizeItems(args[0]))
			if errors.Is(err, service.ErrEmptyReceipt) {
				return fmt.Errorf("cannot print receipt: %w", err)
			}
			if err != nil {
				return err
			}

			text := receipts.Render(receipt)
			if save && output == "" {
				output = receipts.Filename(receipt)
			}
			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}

			if err := os.WriteFile(output, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write receipt: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Receipt written to %s\n", output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the receipt to this file")
	cmd.Flags().BoolVar(&save, "save", false, "write the receipt to its generated file name")

	return cmd
}
