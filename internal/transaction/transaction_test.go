package transaction

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"fjacquet/payment-strategy/internal/logging"
	"fjacquet/payment-strategy/internal/payment"
	"fjacquet/payment-strategy/internal/registry"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyMethod records every Process call.
type spyMethod struct {
	name    string
	calls   []decimal.Decimal
	failure error
}

func (s *spyMethod) Name() string  { return s.name }
func (s *spyMethod) Label() string { return s.name }

func (s *spyMethod) Process(out io.Writer, amount decimal.Decimal) error {
	s.calls = append(s.calls, amount)
	return s.failure
}

func TestExecute_WithoutStrategy(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewMockLogger()
	tx := New(&buf, logger)

	err := tx.Execute(decimal.NewFromInt(10))

	require.NoError(t, err)
	assert.Equal(t, NoStrategyMessage+"\n", buf.String())
	assert.Nil(t, tx.Strategy())
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 1)
}

func TestExecute_ClearedStrategyNeverProcesses(t *testing.T) {
	var buf bytes.Buffer
	spy := &spyMethod{name: "Spy"}
	tx := New(&buf, logging.NewMockLogger())

	tx.SetStrategy(spy)
	tx.SetStrategy(nil)
	require.NoError(t, tx.Execute(decimal.NewFromInt(10)))

	assert.Empty(t, spy.calls)
	assert.Equal(t, NoStrategyMessage+"\n", buf.String())
}

func TestExecute_CallsStrategyExactlyOnceWithAmount(t *testing.T) {
	var buf bytes.Buffer
	spy := &spyMethod{name: "Spy"}
	tx := New(&buf, logging.NewMockLogger())
	amount := decimal.RequireFromString("-0.01")

	tx.SetStrategy(spy)
	require.NoError(t, tx.Execute(amount))

	require.Len(t, spy.calls, 1)
	assert.True(t, amount.Equal(spy.calls[0]))
	assert.Equal(t, amount.Exponent(), spy.calls[0].Exponent())
	assert.Equal(t, "Executing a transaction with Spy strategy:\n", buf.String())
}

func TestExecute_LastStrategyWins(t *testing.T) {
	first := &spyMethod{name: "First"}
	second := &spyMethod{name: "Second"}
	tx := New(io.Discard, logging.NewMockLogger())

	tx.SetStrategy(first)
	tx.SetStrategy(second)
	require.NoError(t, tx.Execute(decimal.NewFromInt(1)))

	assert.Empty(t, first.calls)
	assert.Len(t, second.calls, 1)
	assert.Equal(t, second, tx.Strategy())
}

func TestExecute_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		amount   string
		expected string
	}{
		{
			name:   "credit card",
			method: "CreditCard",
			amount: "150.00",
			expected: "Executing a transaction with CreditCard strategy:\n" +
				"Paying 150.00 using Credit Card.\n",
		},
		{
			name:   "transfer",
			method: "Transfer",
			amount: "75.5",
			expected: "Executing a transaction with Transfer strategy:\n" +
				"Transferring 75.5 to another account.\n",
		},
		{
			name:   "debit card",
			method: "DebitCard",
			amount: "20",
			expected: "Executing a transaction with DebitCard strategy:\n" +
				"Paying 20 using Debit Card.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tx := New(&buf, logging.NewMockLogger())

			m, err := registry.Find(tt.method)
			require.NoError(t, err)
			tx.SetStrategy(m)

			require.NoError(t, tx.Execute(decimal.RequireFromString(tt.amount)))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestExecute_LogsTransactionID(t *testing.T) {
	logger := logging.NewMockLogger()
	tx := New(io.Discard, logger)
	tx.SetStrategy(payment.CreditCard{})

	require.NoError(t, tx.Execute(decimal.RequireFromString("150.00")))

	require.True(t, logger.HasEntry("INFO", "Transaction executed"))
	entry := logger.GetEntriesByLevel("INFO")[0]

	id, ok := entry.FieldValue(logging.FieldTransactionID)
	require.True(t, ok)
	_, err := uuid.Parse(id.(string))
	assert.NoError(t, err)

	amount, _ := entry.FieldValue(logging.FieldAmount)
	assert.Equal(t, "150.00", amount)
}

func TestExecute_ProcessError(t *testing.T) {
	spy := &spyMethod{name: "Broken", failure: errors.New("disk full")}
	logger := logging.NewMockLogger()
	tx := New(io.Discard, logger)
	tx.SetStrategy(spy)

	err := tx.Execute(decimal.NewFromInt(5))

	assert.EqualError(t, err, "Broken: disk full")
	assert.Len(t, spy.calls, 1)
	assert.Len(t, logger.GetEntriesByLevel("ERROR"), 1)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestExecute_WriteErrorSkipsProcessing(t *testing.T) {
	spy := &spyMethod{name: "Spy"}
	tx := New(failingWriter{}, logging.NewMockLogger())
	tx.SetStrategy(spy)

	err := tx.Execute(decimal.NewFromInt(5))

	assert.Error(t, err)
	assert.Empty(t, spy.calls)
}

func TestNew_Defaults(t *testing.T) {
	tx := New(nil, nil)

	assert.NotNil(t, tx.out)
	assert.NotNil(t, tx.logger)
	assert.Nil(t, tx.Strategy())
}
