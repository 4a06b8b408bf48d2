// Command checkoutctl previews pickup slots and order totals from local files,
// using the same calculators as checkout-svc.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tandoor-ordering/checkout-svc/internal/service"
)

var settingsPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "checkoutctl",
		Short:         "Inspect checkout calculations offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&settingsPath, "config", "", "checkout settings YAML (defaults built in)")
	root.AddCommand(newSlotsCmd(), newTotalsCmd())
	return root
}

func loadSettings() (service.Settings, error) {
	if settingsPath == "" {
		return service.DefaultSettings(), nil
	}
	return service.LoadSettings(settingsPath)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
