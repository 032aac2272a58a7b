package report

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/simaogato/savings-planner/internal/usecase/projection"
)

const currencySymbol = "₹"

// FormatRupees renders an amount as ₹ with thousands grouping and two decimals,
// e.g. ₹1,234,567.89 or ₹-500.00
func FormatRupees(amount decimal.Decimal) string {
	return currencySymbol + humanize.FormatFloat("#,###.##", amount.Round(2).InexactFloat64())
}

// FormatPercent renders a percentage with one decimal, e.g. 12.5%.
// Ties round to even, so 12.25 is 12.2% and 12.75 is 12.8%.
func FormatPercent(pct decimal.Decimal) string {
	return pct.RoundBank(1).StringFixed(1) + "%"
}

// percentOf formats part/whole*100, 0.0% when whole is not positive
func percentOf(part, whole decimal.Decimal) string {
	return FormatPercent(projection.Percentage(part, whole))
}
