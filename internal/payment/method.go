// Package payment defines the payment method strategies.
//
// Each method is an immutable value exposing a registry name and a Process
// operation that writes a one-line description of the payment.
package payment

import (
	"io"

	"github.com/shopspring/decimal"
)

// Registry names of the built-in methods.
const (
	DebitCardName  = "DebitCard"
	CreditCardName = "CreditCard"
	TransferName   = "Transfer"
)

// Method is a payment strategy.
type Method interface {
	// Name is the unique identifier used for lookup.
	Name() string

	// Label is the human readable channel name.
	Label() string

	// Process describes the payment of amount on out. Amounts are not
	// validated; zero and negative values are processed like any other.
	// The only error is a failed write on out.
	Process(out io.Writer, amount decimal.Decimal) error
}

// FormatAmount renders amount with the scale it was created with, so "150.00"
// stays "150.00" and "75.5" stays "75.5".
func FormatAmount(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}
	return amount.String()
}
