package input

import (
	"testing"

	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/iwvelando/amountfmt/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionKind(t *testing.T) {
	kind, err := ParseTransactionKind(" Expense ")
	require.NoError(t, err)
	assert.Equal(t, Expense, kind)

	_, err = ParseTransactionKind("refund")
	assert.Error(t, err)
}

func TestSubmitAppliesSign(t *testing.T) {
	tests := []struct {
		name     string
		kind     TransactionKind
		expected string
	}{
		{"Expense is negative", Expense, "-125000"},
		{"Income is positive", Income, "125000"},
		{"Transfer is positive", Transfer, "125000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewTransactionForm(tt.kind, constants.IDR)
			form.Amount.OnChange("125000")

			sub, errs := form.Submit()
			require.Nil(t, errs)
			assert.True(t, sub.Amount.Equal(decimal.RequireFromString(tt.expected)), "got %s", sub.Amount)
			assert.Equal(t, constants.IDR, sub.Currency)
			assert.Equal(t, tt.kind, sub.Kind)
		})
	}
}

func TestSubmitRequiresAmount(t *testing.T) {
	form := NewTransactionForm(Income, constants.USD)

	_, errs := form.Submit()
	require.True(t, errs.HasErrors())
	assert.Equal(t, validation.ErrAmountRequired.Error(), errs["amount"])
}

func TestSubmitRejectsZero(t *testing.T) {
	form := NewTransactionForm(Expense, constants.USD)
	form.Amount.OnChange("000")

	_, errs := form.Submit()
	assert.Equal(t, validation.ErrAmountNotPositive.Error(), errs["amount"])
}

func TestSubmitTransferBalance(t *testing.T) {
	balance := decimal.NewFromInt(20000)
	form := NewTransactionForm(Transfer, constants.IDR)
	form.Balance = &balance

	form.Amount.OnChange("25.000")
	_, errs := form.Submit()
	assert.Equal(t, validation.ErrInsufficientBalance.Error(), errs["amount"])

	form.Amount.OnChange("20.000")
	sub, errs := form.Submit()
	require.Nil(t, errs)
	assert.True(t, sub.Amount.Equal(balance))
}

func TestSubmitUnknownKind(t *testing.T) {
	form := NewTransactionForm("refund", constants.USD)
	form.Amount.OnChange("10")

	_, errs := form.Submit()
	assert.Contains(t, errs, "kind")
	assert.NotContains(t, errs, "amount")
}

func TestSubmitBalancePrecision(t *testing.T) {
	tests := []struct {
		name    string
		code    constants.CurrencyCode
		balance string
		wantErr bool
	}{
		{"IDR whole units", constants.IDR, "50000", false},
		{"IDR trailing zero cents", constants.IDR, "50000.00", false},
		{"IDR cents", constants.IDR, "50000.50", true},
		{"USD cents", constants.USD, "500.25", false},
		{"USD sub-cent", constants.USD, "500.255", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tt.balance)
			form := NewTransactionForm(Transfer, tt.code)
			form.Balance = &balance
			form.Amount.OnChange("100")

			_, errs := form.Submit()
			if tt.wantErr {
				assert.Equal(t, validation.ErrTooManyDecimals.Error(), errs["balance"])
				return
			}
			assert.Nil(t, errs)
		})
	}
}
