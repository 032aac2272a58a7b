package xlsx

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/simaogato/savings-planner/internal/domain"
	"github.com/simaogato/savings-planner/internal/usecase/report"
)

func sampleData(income int64) domain.ExpenseData {
	return domain.ExpenseData{
		MonthlyIncome: decimal.NewFromInt(income),
		Expenses: []domain.ExpenseItem{
			{Category: "food", Subcategory: "groceries", Amount: decimal.NewFromInt(20000), Frequency: domain.FrequencyMonthly},
			{Category: "rent", Subcategory: "house", Amount: decimal.NewFromInt(30000), Frequency: domain.FrequencyMonthly},
			{Category: "travel", Subcategory: "commute", Amount: decimal.NewFromInt(6000), Frequency: domain.FrequencyBimonthly},
		},
	}
}

// renderAndOpen renders the report for data and reopens the produced bytes
func renderAndOpen(t *testing.T, data domain.ExpenseData) *excelize.File {
	t.Helper()

	content, err := NewRenderer().Render(report.Build(data))
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func raw(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestRender_SheetsInOrder(t *testing.T) {
	f := renderAndOpen(t, sampleData(100000))

	assert.Equal(t, []string{
		"Monthly Expenses",
		"Category Breakdown",
		"5-Year Projection",
		"Recommendations",
	}, f.GetSheetList())
}

func TestRender_MonthlyExpenses(t *testing.T) {
	f := renderAndOpen(t, sampleData(100000))
	sheet := report.SheetExpenses

	assert.Equal(t, "MONTHLY EXPENDITURE TRACKER", raw(t, f, sheet, "A1"))
	assert.Equal(t, "Monthly Income: ₹100,000.00", raw(t, f, sheet, "A2"))
	assert.Equal(t, "Amount (₹)", raw(t, f, sheet, "C4"))
	assert.Equal(t, "groceries", raw(t, f, sheet, "B5"))
	assert.Equal(t, "6000", raw(t, f, sheet, "C7"))
	assert.Equal(t, "", raw(t, f, sheet, "A8"))
	assert.Equal(t, "TOTAL MONTHLY EXPENSES", raw(t, f, sheet, "A9"))
	assert.Equal(t, "53000", raw(t, f, sheet, "C9"))
	assert.Equal(t, "47000", raw(t, f, sheet, "C10"))

	merges, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	ranges := make([]string, 0, len(merges))
	for _, m := range merges {
		ranges = append(ranges, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.ElementsMatch(t, []string{"A1:D1", "A2:D2"}, ranges)

	width, err := f.GetColWidth(sheet, "B")
	require.NoError(t, err)
	assert.Equal(t, 25.0, width)
}

func TestRender_Styles(t *testing.T) {
	f := renderAndOpen(t, sampleData(100000))

	headerID, err := f.GetCellStyle(report.SheetExpenses, "A4")
	require.NoError(t, err)
	header, err := f.GetStyle(headerID)
	require.NoError(t, err)
	require.NotNil(t, header.Font)
	assert.True(t, header.Font.Bold)
	assert.Equal(t, "FFFFFF", header.Font.Color)
	assert.Equal(t, "pattern", header.Fill.Type)

	// Header rows on other sheets share the same registered style
	breakdownHeaderID, err := f.GetCellStyle(report.SheetBreakdown, "A3")
	require.NoError(t, err)
	assert.Equal(t, headerID, breakdownHeaderID)

	savingsID, err := f.GetCellStyle(report.SheetExpenses, "C10")
	require.NoError(t, err)
	savings, err := f.GetStyle(savingsID)
	require.NoError(t, err)
	assert.Equal(t, "008000", savings.Font.Color)
	require.NotNil(t, savings.CustomNumFmt)
}

func TestRender_CategoryBreakdown(t *testing.T) {
	f := renderAndOpen(t, sampleData(100000))
	sheet := report.SheetBreakdown

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	// Title, blank, header, three categories
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"food", "20000", "37.7%"}, rows[3])
	assert.Equal(t, []string{"rent", "30000", "56.6%"}, rows[4])
	assert.Equal(t, []string{"travel", "3000", "5.7%"}, rows[5])
}

func TestRender_Projection(t *testing.T) {
	f := renderAndOpen(t, sampleData(100000))
	sheet := report.SheetProjection

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	// Header on row 11 followed by 60 months
	require.Len(t, rows, 71)
	assert.Equal(t, []string{"Month", "Monthly Savings", "Cumulative Savings", "Target Progress"}, rows[10])
	assert.Equal(t, []string{"1", "47000", "47000", "0.5%"}, rows[11])
	assert.Equal(t, []string{"60", "47000", "2820000", "28.2%"}, rows[70])

	assert.Equal(t, "₹119,666.67 (Shortfall)", raw(t, f, sheet, "B7"))
}

func TestRender_Recommendations(t *testing.T) {
	shortfall := renderAndOpen(t, sampleData(100000))
	assert.Equal(t, "Current Situation:", raw(t, shortfall, report.SheetRecommendations, "A3"))
	assert.Equal(t, "   • rent: ₹30,000.00/month", raw(t, shortfall, report.SheetRecommendations, "A10"))

	surplus := renderAndOpen(t, sampleData(220000))
	assert.Equal(t, "Congratulations! 🎉", raw(t, surplus, report.SheetRecommendations, "A3"))
}

func TestRender_EmptyExpenses(t *testing.T) {
	f := renderAndOpen(t, domain.ExpenseData{MonthlyIncome: decimal.NewFromInt(50000)})

	rows, err := f.GetRows(report.SheetBreakdown)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, "TOTAL MONTHLY EXPENSES", raw(t, f, report.SheetExpenses, "A6"))
	assert.Equal(t, "50000", raw(t, f, report.SheetExpenses, "C7"))
}

func TestRender_NoSheets(t *testing.T) {
	_, err := NewRenderer().Render(domain.Workbook{})
	assert.Error(t, err)
}

func TestRender_InvalidSheetName(t *testing.T) {
	wb := domain.Workbook{Sheets: []domain.Sheet{{Name: "bad/name"}}}

	_, err := NewRenderer().Render(wb)
	assert.Error(t, err)
}
