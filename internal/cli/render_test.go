package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/simaogato/savings-planner/internal/domain"
	"github.com/simaogato/savings-planner/internal/usecase/projection"
)

func sampleProjection(income int64) domain.SavingsProjection {
	return projection.Calculate(domain.ExpenseData{
		MonthlyIncome: decimal.NewFromInt(income),
		Expenses: []domain.ExpenseItem{
			{Category: "rent", Subcategory: "house", Amount: decimal.NewFromInt(30000), Frequency: domain.FrequencyMonthly},
			{Category: "food", Subcategory: "groceries", Amount: decimal.NewFromInt(20000), Frequency: domain.FrequencyMonthly},
			{Category: "travel", Subcategory: "commute", Amount: decimal.NewFromInt(6000), Frequency: domain.FrequencyBimonthly},
		},
	})
}

func TestRenderSummary_Shortfall(t *testing.T) {
	out := RenderSummary(sampleProjection(100000))

	assert.Contains(t, out, "PATH TO ₹1 CRORE (5 YEARS)")
	assert.Contains(t, out, "₹100,000.00")
	assert.Contains(t, out, "₹53,000.00")
	assert.Contains(t, out, "₹47,000.00")
	assert.Contains(t, out, "₹166,666.67")
	assert.Contains(t, out, "₹119,666.67 (Shortfall)")
	assert.Contains(t, out, "Progress after 60 months")
	assert.Contains(t, out, "28.2%")
}

func TestRenderSummary_Surplus(t *testing.T) {
	out := RenderSummary(sampleProjection(300000))

	assert.Contains(t, out, "(Surplus)")
	assert.NotContains(t, out, "(Shortfall)")
}

func TestRenderCategories(t *testing.T) {
	out := RenderCategories(sampleProjection(100000))

	for _, want := range []string{"Category", "% of Total", "rent", "₹30,000.00", "56.6%", "food", "37.7%", "travel", "₹3,000.00", "5.7%"} {
		assert.Contains(t, out, want)
	}
	// insertion order is kept
	assert.Less(t, strings.Index(out, "rent"), strings.Index(out, "food"))
	assert.Less(t, strings.Index(out, "food"), strings.Index(out, "travel"))
}

func TestRenderCategories_Empty(t *testing.T) {
	p := projection.Calculate(domain.ExpenseData{MonthlyIncome: decimal.NewFromInt(1000)})

	assert.Empty(t, RenderCategories(p))
}
