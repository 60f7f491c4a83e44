// Package paymenterror defines the typed errors returned while selecting and
// running payment strategies.
package paymenterror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStrategyNotFound matches any StrategyNotFoundError via errors.Is.
var ErrStrategyNotFound = errors.New("payment strategy not found")

// StrategyNotFoundError is returned when no registered method carries the requested name.
type StrategyNotFoundError struct {
	Name      string
	Available []string
}

func (e *StrategyNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no payment strategy named '%s'", e.Name)
	}
	return fmt.Sprintf("no payment strategy named '%s' (available: %s)",
		e.Name, strings.Join(e.Available, ", "))
}

func (e *StrategyNotFoundError) Is(target error) bool {
	return target == ErrStrategyNotFound
}

// InvalidAmountError reports amount text that is not a decimal number.
// The value itself is never range checked.
type InvalidAmountError struct {
	Value string
	Err   error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount '%s': %v", e.Value, e.Err)
}

func (e *InvalidAmountError) Unwrap() error {
	return e.Err
}
