package projection

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/savings-planner/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Calculate derives the savings projection for the given income and expenses
// Logic:
//  1. Normalise every expense to a monthly amount (bimonthly halved, anything else as-is)
//  2. Total the normalised amounts and subtract them from income
//  3. Divide the fixed target by the fixed horizon to get the required monthly savings
//  4. Shortfall = Required - Current (positive means behind target)
//  5. Group normalised amounts by category in first-seen order
//
// The same normalised amount feeds the total and the grouping, so the category
// amounts always add up to the total.
func Calculate(data domain.ExpenseData) domain.SavingsProjection {
	totalExpenses := decimal.Zero
	byCategory := make(domain.CategoryTotals, 0)
	index := make(map[string]int)

	for _, expense := range data.Expenses {
		amount := expense.MonthlyAmount()
		totalExpenses = totalExpenses.Add(amount)

		if i, ok := index[expense.Category]; ok {
			byCategory[i].Amount = byCategory[i].Amount.Add(amount)
			continue
		}
		index[expense.Category] = len(byCategory)
		byCategory = append(byCategory, domain.CategoryTotal{
			Category: expense.Category,
			Amount:   amount,
		})
	}

	monthlySavings := data.MonthlyIncome.Sub(totalExpenses)

	target := decimal.NewFromInt(domain.TargetAmount)
	months := decimal.NewFromInt(domain.TargetYears * domain.MonthsPerYear)
	required := target.Div(months)

	return domain.SavingsProjection{
		MonthlyIncome:          data.MonthlyIncome,
		TotalExpenses:          totalExpenses,
		MonthlySavings:         monthlySavings,
		TargetAmount:           target,
		Years:                  domain.TargetYears,
		RequiredMonthlySavings: required,
		Shortfall:              required.Sub(monthlySavings),
		ExpensesByCategory:     byCategory,
	}
}

// TopCategories returns at most n categories ordered by amount, largest first.
// Equal amounts keep their original order.
func TopCategories(totals domain.CategoryTotals, n int) domain.CategoryTotals {
	if n <= 0 {
		return domain.CategoryTotals{}
	}

	// Create a copy to avoid reordering the caller's slice
	sorted := make(domain.CategoryTotals, len(totals))
	copy(sorted, totals)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Percentage returns part as a percentage of whole, or zero when whole is not positive
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Cumulative returns the savings accumulated after the given number of months
func Cumulative(p domain.SavingsProjection, month int) decimal.Decimal {
	return p.MonthlySavings.Mul(decimal.NewFromInt(int64(month)))
}

// Progress returns cumulative savings after month as a percentage of the target
func Progress(p domain.SavingsProjection, month int) decimal.Decimal {
	return Percentage(Cumulative(p, month), p.TargetAmount)
}
