package domain

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	// TargetAmount is the savings goal: one crore.
	TargetAmount  = 10_000_000
	TargetYears   = 5
	MonthsPerYear = 12
)

// CategoryTotal is the normalised monthly amount spent in one category
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryTotals keeps categories in the order they were first seen
type CategoryTotals []CategoryTotal

// Get returns the amount for category and whether it is present
func (c CategoryTotals) Get(category string) (decimal.Decimal, bool) {
	for _, total := range c {
		if total.Category == category {
			return total.Amount, true
		}
	}
	return decimal.Zero, false
}

// Sum returns the sum of every category amount
func (c CategoryTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, total := range c {
		sum = sum.Add(total.Amount)
	}
	return sum
}

// MarshalJSON encodes the totals as a JSON object whose keys keep insertion order.
// Amounts are written as JSON numbers.
func (c CategoryTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, total := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(total.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(total.Amount.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SavingsProjection is the derived summary of one ExpenseData
// Invariants:
//   - MonthlySavings = MonthlyIncome - TotalExpenses
//   - Shortfall = RequiredMonthlySavings - MonthlySavings (positive = behind target)
type SavingsProjection struct {
	MonthlyIncome          decimal.Decimal
	TotalExpenses          decimal.Decimal
	MonthlySavings         decimal.Decimal
	TargetAmount           decimal.Decimal
	Years                  int
	RequiredMonthlySavings decimal.Decimal
	Shortfall              decimal.Decimal
	ExpensesByCategory     CategoryTotals
}

// Months returns the length of the projection horizon in months
func (p SavingsProjection) Months() int {
	return p.Years * MonthsPerYear
}

// HasShortfall reports whether current savings fall short of the requirement
func (p SavingsProjection) HasShortfall() bool {
	return p.Shortfall.GreaterThan(decimal.Zero)
}
