// Package common contains shared functionality for command handlers
package common

import (
	"io"
	"strings"

	"fjacquet/payment-strategy/internal/config"
	"fjacquet/payment-strategy/internal/payment"
	"fjacquet/payment-strategy/internal/paymenterror"
	"fjacquet/payment-strategy/internal/transaction"

	"github.com/shopspring/decimal"
)

// Dependencies is what payment commands need from the container.
type Dependencies interface {
	FindMethod(name string) (payment.Method, error)
	NewTransaction(out io.Writer) *transaction.Context
	GetConfig() *config.Config
}

// ParseAmount parses amount text as a decimal, keeping its scale.
// Any sign and magnitude is accepted.
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, &paymenterror.InvalidAmountError{Value: text, Err: err}
	}
	return amount, nil
}

// ProcessPayment selects methodName (or the configured default when empty)
// and executes one transaction for amountText, writing console text to out.
//
// An unknown method name fails before any strategy is set. When neither a
// name nor a default is available the transaction runs without a strategy
// and only the warning line is written.
func ProcessPayment(out io.Writer, deps Dependencies, methodName, amountText string) error {
	amount, err := ParseAmount(amountText)
	if err != nil {
		return err
	}

	if methodName == "" {
		methodName = deps.GetConfig().Payment.DefaultMethod
	}

	tx := deps.NewTransaction(out)
	if methodName != "" {
		method, err := deps.FindMethod(methodName)
		if err != nil {
			return err
		}
		tx.SetStrategy(method)
	}

	return tx.Execute(amount)
}
