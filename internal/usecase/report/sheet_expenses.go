package report

import (
	"github.com/simaogato/savings-planner/internal/domain"
)

const firstExpenseRow = 5

func expensesSheet(data domain.ExpenseData, p domain.SavingsProjection) domain.Sheet {
	s := domain.Sheet{Name: SheetExpenses}

	s.Set("A1", "MONTHLY EXPENDITURE TRACKER", titleStyle)
	s.Merge("A1", "D1")
	s.Set("A2", "Monthly Income: "+FormatRupees(data.MonthlyIncome), subtitleStyle)
	s.Merge("A2", "D2")

	writeHeader(&s, 4, "Category", "Subcategory", "Amount (₹)", "Frequency")

	row := firstExpenseRow
	for _, e := range data.Expenses {
		s.Set(domain.CellRef("A", row), e.Category, domain.Style{})
		s.Set(domain.CellRef("B", row), e.Subcategory, domain.Style{})
		s.Set(domain.CellRef("C", row), money(e.Amount), moneyStyle)
		s.Set(domain.CellRef("D", row), string(e.Frequency), domain.Style{})
		row++
	}

	// Blank separator row
	row++
	s.Set(domain.CellRef("A", row), "TOTAL MONTHLY EXPENSES", boldStyle)
	s.Set(domain.CellRef("C", row), money(p.TotalExpenses), boldMoney)

	row++
	savingsColor := signalColor(p.MonthlySavings.IsPositive())
	s.Set(domain.CellRef("A", row), "MONTHLY SAVINGS", domain.Style{Bold: true, Color: savingsColor})
	s.Set(domain.CellRef("C", row), money(p.MonthlySavings), domain.Style{Bold: true, Color: savingsColor, NumFmt: currencyNumFmt})

	s.Width("A", 20)
	s.Width("B", 25)
	s.Width("C", 15)
	s.Width("D", 15)

	return s
}
