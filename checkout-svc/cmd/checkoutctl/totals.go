package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tandoor-ordering/checkout-svc/internal/domain"
	"tandoor-ordering/checkout-svc/internal/service"
)

func newTotalsCmd() *cobra.Command {
	var (
		cartPath string
		taxRate  string
	)

	cmd := &cobra.Command{
		Use:     "totals",
		Short:   "Compute subtotal, tax and total for a cart file",
		Example: `  checkoutctl totals --cart cart.json --tax-rate 0.0925`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			rate := settings.TaxRate
			if taxRate != "" {
				rate, err = decimal.NewFromString(taxRate)
				if err != nil || rate.IsNegative() {
					return fmt.Errorf("invalid --tax-rate %q", taxRate)
				}
			}

			data, err := os.ReadFile(cartPath)
			if err != nil {
				return fmt.Errorf("read cart: %w", err)
			}
			var cart []domain.CartLineItem
			if err := json.Unmarshal(data, &cart); err != nil {
				return fmt.Errorf("parse cart: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, item := range cart {
				fmt.Fprintf(out, "%3d x %-30s %8s\n", item.Qty, item.Name, service.LineTotal(item).StringFixed(2))
			}
			totals := service.ComputeTotals(cart, rate).Display()
			fmt.Fprintf(out, "%-36s %8s\n", "Subtotal", totals.Subtotal)
			fmt.Fprintf(out, "%-36s %8s\n", service.TaxLabel(rate), totals.Tax)
			fmt.Fprintf(out, "%-36s %8s\n", "Total", totals.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&cartPath, "cart", "", "cart JSON: [{\"name\",\"price\",\"qty\",\"options\"}]")
	cmd.Flags().StringVar(&taxRate, "tax-rate", "", "override the configured tax rate, e.g. 0.085")
	cmd.MarkFlagRequired("cart")
	return cmd
}
