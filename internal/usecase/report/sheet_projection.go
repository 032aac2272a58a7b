package report

import (
	"fmt"

	"github.com/simaogato/savings-planner/internal/domain"
	"github.com/simaogato/savings-planner/internal/usecase/projection"
)

const (
	projectionHeaderRow = 11
	firstMonthRow       = projectionHeaderRow + 1
)

func projectionSheet(p domain.SavingsProjection) domain.Sheet {
	s := domain.Sheet{Name: SheetProjection}
	months := p.Months()

	s.Set("A1", "PATH TO ₹1 CRORE (5 YEARS)", titleStyle)
	s.Merge("A1", "D1")

	s.Set("A3", "Target Amount", domain.Style{})
	s.Set("B3", FormatRupees(p.TargetAmount), boldStyle)

	s.Set("A4", "Time Period", domain.Style{})
	s.Set("B4", fmt.Sprintf("%d years (%d months)", p.Years, months), domain.Style{})

	s.Set("A5", "Current Monthly Savings", domain.Style{})
	s.Set("B5", FormatRupees(p.MonthlySavings), domain.Style{Color: signalColor(p.MonthlySavings.IsPositive())})

	s.Set("A6", "Required Monthly Savings", domain.Style{})
	s.Set("B6", FormatRupees(p.RequiredMonthlySavings), boldStyle)

	s.Set("A7", "Monthly Shortfall/Surplus", domain.Style{})
	s.Set("B7", ShortfallLabel(p), domain.Style{Bold: true, Color: signalColor(!p.HasShortfall())})

	s.Set("A9", "Month-by-Month Projection (Assuming Current Savings Rate)", boldStyle)
	s.Merge("A9", "D9")

	writeHeader(&s, projectionHeaderRow, "Month", "Monthly Savings", "Cumulative Savings", "Target Progress")

	for month := 1; month <= months; month++ {
		row := projectionHeaderRow + month
		s.Set(domain.CellRef("A", row), month, domain.Style{})
		s.Set(domain.CellRef("B", row), money(p.MonthlySavings), moneyStyle)
		s.Set(domain.CellRef("C", row), money(projection.Cumulative(p, month)), moneyStyle)
		s.Set(domain.CellRef("D", row), FormatPercent(projection.Progress(p, month)), domain.Style{})
	}

	s.Width("A", 10)
	s.Width("B", 18)
	s.Width("C", 20)
	s.Width("D", 18)

	lastRow := projectionHeaderRow + months
	s.Charts = append(s.Charts, domain.Chart{
		Anchor: "F3",
		Kind:   domain.ChartLine,
		Title:  "Cumulative Savings",
		Series: []domain.ChartSeries{{
			Name:       domain.AbsCell(SheetProjection, "C", projectionHeaderRow),
			Categories: domain.AbsRange(SheetProjection, "A", firstMonthRow, lastRow),
			Values:     domain.AbsRange(SheetProjection, "C", firstMonthRow, lastRow),
		}},
	})

	return s
}

// ShortfallLabel renders the absolute shortfall tagged as Shortfall or Surplus
func ShortfallLabel(p domain.SavingsProjection) string {
	tag := "(Surplus)"
	if p.HasShortfall() {
		tag = "(Shortfall)"
	}
	return FormatRupees(p.Shortfall.Abs()) + " " + tag
}
