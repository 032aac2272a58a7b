package domain

import (
	"github.com/shopspring/decimal"
)

// Frequency represents how often an expense is paid
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyBimonthly Frequency = "bimonthly"
)

// Divisor returns the number of months a single payment covers.
// Unrecognised frequencies fall back to monthly.
func (f Frequency) Divisor() int64 {
	switch f {
	case FrequencyBimonthly:
		return 2
	case FrequencyMonthly:
		return 1
	default:
		return 1
	}
}

// IsKnown reports whether f is one of the declared frequencies
func (f Frequency) IsKnown() bool {
	return f == FrequencyMonthly || f == FrequencyBimonthly
}

// ExpenseItem represents a single itemised expense supplied by the caller
type ExpenseItem struct {
	Category    string
	Subcategory string
	Amount      decimal.Decimal // As entered, before normalisation
	Frequency   Frequency       // Kept verbatim, even when unrecognised
}

// MonthlyAmount returns the expense normalised to a monthly equivalent
func (e ExpenseItem) MonthlyAmount() decimal.Decimal {
	divisor := e.Frequency.Divisor()
	if divisor == 1 {
		return e.Amount
	}
	return e.Amount.Div(decimal.NewFromInt(divisor))
}

// ExpenseData is the input aggregate for a single projection
type ExpenseData struct {
	MonthlyIncome decimal.Decimal
	Expenses      []ExpenseItem
}
