package report

import (
	"github.com/simaogato/savings-planner/internal/domain"
)

const firstCategoryRow = 4

func breakdownSheet(p domain.SavingsProjection) domain.Sheet {
	s := domain.Sheet{Name: SheetBreakdown}

	s.Set("A1", "EXPENSE BREAKDOWN BY CATEGORY", titleStyle)
	s.Merge("A1", "C1")

	writeHeader(&s, 3, "Category", "Amount (₹)", "Percentage")

	row := firstCategoryRow
	for _, c := range p.ExpensesByCategory {
		s.Set(domain.CellRef("A", row), c.Category, domain.Style{})
		s.Set(domain.CellRef("B", row), money(c.Amount), moneyStyle)
		s.Set(domain.CellRef("C", row), percentOf(c.Amount, p.TotalExpenses), domain.Style{})
		row++
	}

	s.Width("A", 25)
	s.Width("B", 15)
	s.Width("C", 15)

	if lastRow := row - 1; lastRow >= firstCategoryRow {
		s.Charts = append(s.Charts, domain.Chart{
			Anchor: "E3",
			Kind:   domain.ChartPie,
			Title:  "Monthly Expenses by Category",
			Series: []domain.ChartSeries{{
				Name:       domain.AbsCell(SheetBreakdown, "B", 3),
				Categories: domain.AbsRange(SheetBreakdown, "A", firstCategoryRow, lastRow),
				Values:     domain.AbsRange(SheetBreakdown, "B", firstCategoryRow, lastRow),
			}},
		})
	}

	return s
}
