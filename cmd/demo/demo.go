// Package demo handles the demo command
package demo

import (
	"fjacquet/payment-strategy/cmd/common"
	"fjacquet/payment-strategy/cmd/root"
	"fjacquet/payment-strategy/internal/payment"

	"github.com/spf13/cobra"
)

// Amount paid by the demo transaction.
const Amount = "150.00"

// Cmd represents the demo command
var Cmd = &cobra.Command{
	Use:   "demo",
	Short: "Pay 150.00 with the CreditCard strategy",
	Long:  `Build the registry, select CreditCard by name and execute a 150.00 transaction.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root.Log.Debug("Demo command called")
		return common.ProcessPayment(cmd.OutOrStdout(), root.AppContainer, payment.CreditCardName, Amount)
	},
}
