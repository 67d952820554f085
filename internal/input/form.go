package input

import (
	"fmt"
	"strings"

	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/iwvelando/amountfmt/pkg/validation"
	"github.com/shopspring/decimal"
)

// TransactionKind is the income/expense/transfer toggle next to an amount.
type TransactionKind string

const (
	Income   TransactionKind = "income"
	Expense  TransactionKind = "expense"
	Transfer TransactionKind = "transfer"
)

// ParseTransactionKind accepts the toggle values case-insensitively.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch kind := TransactionKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case Income, Expense, Transfer:
		return kind, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

// Submission is what a form hands to the API client.
type Submission struct {
	Amount   decimal.Decimal
	Currency constants.CurrencyCode
	Kind     TransactionKind
}

// TransactionForm is a money-entry form with one amount field.
type TransactionForm struct {
	Amount *Field
	Kind   TransactionKind

	// Balance of the source account, checked for transfers when set.
	Balance *decimal.Decimal
}

// NewTransactionForm returns a form whose amount field is named "amount".
func NewTransactionForm(kind TransactionKind, code constants.CurrencyCode) *TransactionForm {
	return &TransactionForm{
		Amount: NewField("amount", code),
		Kind:   kind,
	}
}

// Submit validates the amount field and applies the sign: expenses are
// negative, income and transfers positive. A balance given with more
// decimal places than the currency uses is rejected under "balance".
func (tf *TransactionForm) Submit() (Submission, validation.FieldErrors) {
	errs := validation.FieldErrors{}

	if _, err := ParseTransactionKind(string(tf.Kind)); err != nil {
		errs.Add("kind", err.Error())
	}

	if tf.Balance != nil {
		if cur, ok := constants.LookupCurrency(tf.Amount.Currency()); ok {
			if err := validation.CheckPrecision(*tf.Balance, cur.DecimalPlaces); err != nil {
				errs.Add("balance", err.Error())
			}
		}
	}

	amount, err := validation.ParseAmount(tf.Amount.Canonical())
	if err != nil {
		errs.Add(tf.Amount.Name(), err.Error())
	} else if tf.Kind == Transfer && tf.Balance != nil {
		if err := validation.CheckBalance(amount, *tf.Balance); err != nil {
			errs.Add(tf.Amount.Name(), err.Error())
		}
	}

	if errs.HasErrors() {
		return Submission{}, errs
	}

	if tf.Kind == Expense {
		amount = amount.Neg()
	}
	return Submission{
		Amount:   amount,
		Currency: tf.Amount.Currency(),
		Kind:     tf.Kind,
	}, nil
}
