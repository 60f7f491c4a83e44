// Package registry maps payment method names to their strategies.
package registry

import (
	"fjacquet/payment-strategy/internal/payment"
	"fjacquet/payment-strategy/internal/paymenterror"
)

// Methods returns the built-in payment methods in registry order.
// A fresh slice is built on every call; callers may modify it freely.
func Methods() []payment.Method {
	return []payment.Method{
		payment.DebitCard{},
		payment.CreditCard{},
		payment.Transfer{},
	}
}

// Names returns the names of Methods in registry order.
func Names() []string {
	methods := Methods()
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name())
	}
	return names
}

// Find returns the first method whose name equals name exactly.
// Matching is case-sensitive; there are no partial matches.
func Find(name string) (payment.Method, error) {
	return FindIn(Methods(), name)
}

// FindIn is Find over an explicit list of methods.
func FindIn(methods []payment.Method, name string) (payment.Method, error) {
	for _, m := range methods {
		if m.Name() == name {
			return m, nil
		}
	}

	available := make([]string, 0, len(methods))
	for _, m := range methods {
		available = append(available, m.Name())
	}
	return nil, &paymenterror.StrategyNotFoundError{Name: name, Available: available}
}
