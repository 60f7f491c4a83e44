// Package transaction holds the payment method selected for a transaction and
// delegates execution to it.
package transaction

import (
	"fmt"
	"io"
	"os"

	"fjacquet/payment-strategy/internal/logging"
	"fjacquet/payment-strategy/internal/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NoStrategyMessage is written when Execute runs before a strategy is set.
const NoStrategyMessage = "Please set a payment strategy before executing a transaction."

// Context holds at most one payment strategy and runs it.
// It is not safe for concurrent use.
type Context struct {
	strategy payment.Method
	out      io.Writer
	logger   logging.Logger
}

// New creates a Context with no strategy selected. Messages are written to
// out (stdout when nil).
func New(out io.Writer, logger logging.Logger) *Context {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Context{out: out, logger: logger}
}

// SetStrategy replaces the current strategy. Passing nil clears it.
func (c *Context) SetStrategy(strategy payment.Method) {
	c.strategy = strategy
	if strategy == nil {
		c.logger.Debug("Payment strategy cleared")
		return
	}
	c.logger.Debug("Payment strategy selected",
		logging.F(logging.FieldStrategy, strategy.Name()))
}

// Strategy returns the current strategy, or nil when none is set.
func (c *Context) Strategy() payment.Method {
	return c.strategy
}

// Execute runs the current strategy once with amount.
//
// Without a strategy it writes NoStrategyMessage and returns nil: that is a
// guarded no-op, not a failure. The only errors are failed writes.
func (c *Context) Execute(amount decimal.Decimal) error {
	if c.strategy == nil {
		c.logger.Warn("Transaction executed without a payment strategy",
			logging.F(logging.FieldAmount, payment.FormatAmount(amount)))
		if _, err := fmt.Fprintln(c.out, NoStrategyMessage); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
		return nil
	}

	log := c.logger.WithFields(
		logging.F(logging.FieldTransactionID, uuid.NewString()),
		logging.F(logging.FieldStrategy, c.strategy.Name()),
		logging.F(logging.FieldAmount, payment.FormatAmount(amount)),
	)

	if _, err := fmt.Fprintf(c.out, "Executing a transaction with %s strategy:\n", c.strategy.Name()); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := c.strategy.Process(c.out, amount); err != nil {
		log.WithError(err).Error("Payment processing failed")
		return fmt.Errorf("%s: %w", c.strategy.Name(), err)
	}

	log.Info("Transaction executed")
	return nil
}
