package payment

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// DebitCard pays from a debit card.
type DebitCard struct{}

func (DebitCard) Name() string  { return DebitCardName }
func (DebitCard) Label() string { return "Debit Card" }

func (d DebitCard) Process(out io.Writer, amount decimal.Decimal) error {
	_, err := fmt.Fprintf(out, "Paying %s using %s.\n", FormatAmount(amount), d.Label())
	return err
}

// CreditCard pays with a credit card.
type CreditCard struct{}

func (CreditCard) Name() string  { return CreditCardName }
func (CreditCard) Label() string { return "Credit Card" }

func (c CreditCard) Process(out io.Writer, amount decimal.Decimal) error {
	_, err := fmt.Fprintf(out, "Paying %s using %s.\n", FormatAmount(amount), c.Label())
	return err
}

// Transfer moves the amount to another account.
type Transfer struct{}

func (Transfer) Name() string  { return TransferName }
func (Transfer) Label() string { return "Transfer" }

func (Transfer) Process(out io.Writer, amount decimal.Decimal) error {
	_, err := fmt.Fprintf(out, "Transferring %s to another account.\n", FormatAmount(amount))
	return err
}

var (
	_ Method = DebitCard{}
	_ Method = CreditCard{}
	_ Method = Transfer{}
)
