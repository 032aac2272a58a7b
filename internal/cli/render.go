// Package cli renders projections for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/simaogato/savings-planner/internal/domain"
	"github.com/simaogato/savings-planner/internal/usecase/projection"
	"github.com/simaogato/savings-planner/internal/usecase/report"
)

var (
	ColorBorder = lipgloss.Color("#575653")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorAccent = lipgloss.Color("#4472C4")
	ColorGreen  = lipgloss.Color("#008000")
	ColorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Width(28)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	goodStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	badStyle  = lipgloss.NewStyle().Foreground(ColorRed)
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderSummary renders the headline numbers of a projection
func RenderSummary(p domain.SavingsProjection) string {
	signal := func(good bool) lipgloss.Style {
		if good {
			return goodStyle
		}
		return badStyle
	}

	months := p.Months()
	lines := [][2]string{
		{"Monthly Income", report.FormatRupees(p.MonthlyIncome)},
		{"Total Monthly Expenses", report.FormatRupees(p.TotalExpenses)},
		{"Monthly Savings", signal(p.MonthlySavings.IsPositive()).Render(report.FormatRupees(p.MonthlySavings))},
		{"Target", fmt.Sprintf("%s in %d years", report.FormatRupees(p.TargetAmount), p.Years)},
		{"Required Monthly Savings", report.FormatRupees(p.RequiredMonthlySavings)},
		{"Monthly Shortfall/Surplus", signal(!p.HasShortfall()).Render(report.ShortfallLabel(p))},
		{fmt.Sprintf("Progress after %d months", months), report.FormatPercent(projection.Progress(p, months))},
	}

	var b strings.Builder
	b.WriteString(RenderTitle("PATH TO ₹1 CRORE (5 YEARS)"))
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(line[0]))
		b.WriteString(line[1])
		b.WriteString("\n")
	}
	return b.String()
}

// RenderCategories renders the per-category breakdown as a bordered table.
// Returns "" when there are no categories.
func RenderCategories(p domain.SavingsProjection) string {
	if len(p.ExpensesByCategory) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(p.ExpensesByCategory))
	for _, total := range p.ExpensesByCategory {
		rows = append(rows, []string{
			total.Category,
			report.FormatRupees(total.Amount),
			report.FormatPercent(projection.Percentage(total.Amount, p.TotalExpenses)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers("Category", "Monthly Amount", "% of Total").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col > 0 {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		})

	return t.String()
}
