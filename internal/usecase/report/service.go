package report

import (
	"context"
	"fmt"

	"github.com/simaogato/savings-planner/internal/domain"
)

// ReportService renders expense data into a downloadable spreadsheet
type ReportService struct {
	Renderer domain.WorkbookRenderer
}

// NewReportService creates a new ReportService instance
func NewReportService(renderer domain.WorkbookRenderer) *ReportService {
	return &ReportService{
		Renderer: renderer,
	}
}

// Render builds the report layout for data and serialises it.
// The context is only checked before the work starts; rendering itself is in-memory.
func (s *ReportService) Render(ctx context.Context, data domain.ExpenseData) (*domain.ReportFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := s.Renderer.Render(Build(data))
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &domain.ReportFile{
		Filename:    domain.ReportFilename,
		ContentType: domain.ReportContentType,
		Content:     content,
	}, nil
}
