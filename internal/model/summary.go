package model

import "github.com/shopspring/decimal"

// Summary holds ledger totals.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal // TotalIncome - TotalExpenses, may be negative
}

// Status returns "Positive" for a non-negative balance and "Negative" otherwise.
func (s Summary) Status() string {
	if s.Balance.IsNegative() {
		return "Negative"
	}
	return "Positive"
}
