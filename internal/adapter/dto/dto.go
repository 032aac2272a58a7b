// Package dto holds the JSON wire shapes shared by every transport and the
// validation that turns them into domain values.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"

	"github.com/simaogato/savings-planner/internal/domain"
)

// ErrInvalidInput marks request payloads that cannot be turned into ExpenseData
var ErrInvalidInput = errors.New("invalid input")

// ExpenseItemRequest is one expense as sent by clients.
// Pointers distinguish missing fields from zero values.
type ExpenseItemRequest struct {
	Category    *string          `json:"category"`
	Subcategory *string          `json:"subcategory"`
	Amount      *decimal.Decimal `json:"amount"` // JSON number or numeric string
	Frequency   *string          `json:"frequency,omitempty"`
}

// ExpenseDataRequest is the request body of both the projection and the export
type ExpenseDataRequest struct {
	MonthlyIncome *decimal.Decimal     `json:"monthly_income"`
	Expenses      []ExpenseItemRequest `json:"expenses"`
}

// Decode reads a JSON request body and validates it
func Decode(r io.Reader) (domain.ExpenseData, error) {
	var req ExpenseDataRequest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		return domain.ExpenseData{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.ExpenseData{}, fmt.Errorf("%w: unexpected data after JSON body", ErrInvalidInput)
	}
	return req.ToDomain()
}

// Parse validates a complete JSON document
func Parse(data []byte) (domain.ExpenseData, error) {
	return Decode(bytes.NewReader(data))
}

// ToDomain validates the request and converts it to domain.ExpenseData.
// Only the shape and float64 range are checked; negative numbers and unknown
// frequencies are accepted.
func (r ExpenseDataRequest) ToDomain() (domain.ExpenseData, error) {
	if r.MonthlyIncome == nil {
		return domain.ExpenseData{}, fmt.Errorf("%w: monthly_income is required", ErrInvalidInput)
	}
	if !inRange(*r.MonthlyIncome) {
		return domain.ExpenseData{}, fmt.Errorf("%w: monthly_income is out of range", ErrInvalidInput)
	}
	if r.Expenses == nil {
		return domain.ExpenseData{}, fmt.Errorf("%w: expenses is required", ErrInvalidInput)
	}

	expenses := make([]domain.ExpenseItem, 0, len(r.Expenses))
	for i, item := range r.Expenses {
		if item.Category == nil {
			return domain.ExpenseData{}, fmt.Errorf("%w: expenses[%d].category is required", ErrInvalidInput, i)
		}
		if item.Subcategory == nil {
			return domain.ExpenseData{}, fmt.Errorf("%w: expenses[%d].subcategory is required", ErrInvalidInput, i)
		}
		if item.Amount == nil {
			return domain.ExpenseData{}, fmt.Errorf("%w: expenses[%d].amount is required", ErrInvalidInput, i)
		}
		if !inRange(*item.Amount) {
			return domain.ExpenseData{}, fmt.Errorf("%w: expenses[%d].amount is out of range", ErrInvalidInput, i)
		}

		frequency := domain.FrequencyMonthly
		if item.Frequency != nil && *item.Frequency != "" {
			frequency = domain.Frequency(*item.Frequency)
		}

		expenses = append(expenses, domain.ExpenseItem{
			Category:    *item.Category,
			Subcategory: *item.Subcategory,
			Amount:      *item.Amount,
			Frequency:   frequency,
		})
	}

	return domain.ExpenseData{
		MonthlyIncome: *r.MonthlyIncome,
		Expenses:      expenses,
	}, nil
}

// inRange reports whether d survives conversion to a finite float64 on the way out
func inRange(d decimal.Decimal) bool {
	return !math.IsInf(d.InexactFloat64(), 0)
}

// FromDomain converts domain.ExpenseData back into its wire shape
func FromDomain(data domain.ExpenseData) ExpenseDataRequest {
	income := data.MonthlyIncome
	req := ExpenseDataRequest{
		MonthlyIncome: &income,
		Expenses:      make([]ExpenseItemRequest, 0, len(data.Expenses)),
	}
	for _, e := range data.Expenses {
		category, subcategory, amount, frequency := e.Category, e.Subcategory, e.Amount, string(e.Frequency)
		req.Expenses = append(req.Expenses, ExpenseItemRequest{
			Category:    &category,
			Subcategory: &subcategory,
			Amount:      &amount,
			Frequency:   &frequency,
		})
	}
	return req
}

// ProjectionResponse is the JSON shape of a SavingsProjection
type ProjectionResponse struct {
	MonthlyIncome          float64               `json:"monthly_income"`
	TotalExpenses          float64               `json:"total_expenses"`
	MonthlySavings         float64               `json:"monthly_savings"`
	TargetAmount           float64               `json:"target_amount"`
	Years                  int                   `json:"years"`
	RequiredMonthlySavings float64               `json:"required_monthly_savings"`
	Shortfall              float64               `json:"shortfall"`
	ExpensesByCategory     domain.CategoryTotals `json:"expenses_by_category"`
}

// NewProjectionResponse converts a projection into its JSON shape
func NewProjectionResponse(p domain.SavingsProjection) ProjectionResponse {
	return ProjectionResponse{
		MonthlyIncome:          p.MonthlyIncome.InexactFloat64(),
		TotalExpenses:          p.TotalExpenses.InexactFloat64(),
		MonthlySavings:         p.MonthlySavings.InexactFloat64(),
		TargetAmount:           p.TargetAmount.InexactFloat64(),
		Years:                  p.Years,
		RequiredMonthlySavings: p.RequiredMonthlySavings.InexactFloat64(),
		Shortfall:              p.Shortfall.InexactFloat64(),
		ExpensesByCategory:     p.ExpensesByCategory,
	}
}
