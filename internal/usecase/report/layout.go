// Package report builds the spreadsheet report for a savings projection.
//
// The layout is produced as a domain.Workbook description; turning it into
// bytes is the job of a domain.WorkbookRenderer.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/savings-planner/internal/domain"
	"github.com/simaogato/savings-planner/internal/usecase/projection"
)

const (
	SheetExpenses        = "Monthly Expenses"
	SheetBreakdown       = "Category Breakdown"
	SheetProjection      = "5-Year Projection"
	SheetRecommendations = "Recommendations"

	topCategoryCount = 3
)

// Build lays out the four report sheets for data.
// The projection is recomputed from the raw input rather than passed in,
// so the report never disagrees with the data it was built from.
func Build(data domain.ExpenseData) domain.Workbook {
	p := projection.Calculate(data)

	return domain.Workbook{
		Sheets: []domain.Sheet{
			expensesSheet(data, p),
			breakdownSheet(p),
			projectionSheet(p),
			recommendationsSheet(p),
		},
	}
}

// money converts an amount for a numeric cell; display precision comes from the cell format
func money(amount decimal.Decimal) float64 {
	return amount.InexactFloat64()
}

// writeHeader writes labels left to right from column A on row
func writeHeader(s *domain.Sheet, row int, labels ...string) {
	for i, label := range labels {
		s.Set(domain.CellRef(columnName(i), row), label, headerStyle)
	}
}

func columnName(i int) string {
	return string(rune('A' + i))
}
