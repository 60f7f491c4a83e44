// Package pay handles the pay command
package pay

import (
	"fjacquet/payment-strategy/cmd/common"
	"fjacquet/payment-strategy/cmd/root"

	"github.com/spf13/cobra"
)

var (
	method string
	amount string
)

// Cmd represents the pay command
var Cmd = &cobra.Command{
	Use:   "pay",
	Short: "Execute a transaction with a payment strategy",
	Long: `Select a payment strategy by its exact, case-sensitive name and execute one
transaction for the given amount. Without --method the configured
payment.default_method is used; if that is empty too, no strategy is set and
only a warning is printed.`,
	Example: `  payment-strategy pay --method CreditCard --amount 150.00
  payment-strategy pay -m Transfer -a 75.5`,
	Args: cobra.NoArgs,
	RunE: payFunc,
}

func init() {
	Cmd.Flags().StringVarP(&method, "method", "m", "", "Payment strategy name (DebitCard, CreditCard, Transfer)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount, e.g. 150.00 (required)")
	_ = Cmd.MarkFlagRequired("amount")
}

func payFunc(cmd *cobra.Command, args []string) error {
	root.Log.Debug("Pay command called")
	return common.ProcessPayment(cmd.OutOrStdout(), root.AppContainer, method, amount)
}
