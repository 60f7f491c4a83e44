// Package container wires the application dependencies together so commands
// receive them explicitly instead of through package globals.
package container

import (
	"fmt"
	"io"

	"fjacquet/payment-strategy/internal/config"
	"fjacquet/payment-strategy/internal/logging"
	"fjacquet/payment-strategy/internal/payment"
	"fjacquet/payment-strategy/internal/registry"
	"fjacquet/payment-strategy/internal/transaction"
)

// Container holds the application dependencies. It is immutable after
// creation; fields are reachable only through getters.
type Container struct {
	logger logging.Logger
	config *config.Config
}

// NewContainer creates a container from cfg, building the logger from its
// log settings.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an injected logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	logger.Debug("Container initialized",
		logging.F(logging.FieldCount, len(registry.Names())),
		logging.F(logging.FieldFormat, cfg.Payment.ListFormat))

	return &Container{
		logger: logger,
		config: cfg,
	}, nil
}

// Methods returns a freshly built list of the registered payment methods.
func (c *Container) Methods() []payment.Method {
	return registry.Methods()
}

// FindMethod looks up a payment method by exact name.
func (c *Container) FindMethod(name string) (payment.Method, error) {
	m, err := registry.Find(name)
	if err != nil {
		c.logger.WithError(err).Warn("Payment strategy lookup failed",
			logging.F(logging.FieldStrategy, name))
		return nil, err
	}
	c.logger.Debug("Payment strategy found", logging.F(logging.FieldStrategy, name))
	return m, nil
}

// NewTransaction returns an empty transaction context writing to out.
func (c *Container) NewTransaction(out io.Writer) *transaction.Context {
	return transaction.New(out, c.logger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Close releases container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
