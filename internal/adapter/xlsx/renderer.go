// Package xlsx renders domain workbook descriptions with excelize.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/simaogato/savings-planner/internal/domain"
)

const defaultSheet = "Sheet1"

// Renderer implements domain.WorkbookRenderer on top of excelize
type Renderer struct{}

// NewRenderer creates a new excelize-backed renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes every sheet of wb, in order, into a new xlsx document.
// Each call works on its own file and style cache.
func (r *Renderer) Render(wb domain.Workbook) ([]byte, error) {
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{file: f, styles: make(map[domain.Style]int)}

	for i, sheet := range wb.Sheets {
		if err := w.createSheet(i, sheet.Name); err != nil {
			return nil, err
		}
		if err := w.writeSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialise workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter carries the per-document state of one Render call
type sheetWriter struct {
	file   *excelize.File
	styles map[domain.Style]int
}

// createSheet reuses the default sheet for the first entry and appends the rest
func (w *sheetWriter) createSheet(index int, name string) error {
	if index == 0 {
		if err := w.file.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("failed to rename default sheet to %q: %w", name, err)
		}
		return nil
	}
	if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	return nil
}

func (w *sheetWriter) writeSheet(sheet domain.Sheet) error {
	for _, cell := range sheet.Cells {
		if err := w.file.SetCellValue(sheet.Name, cell.Ref, cell.Value); err != nil {
			return fmt.Errorf("cell %s: %w", cell.Ref, err)
		}
		if cell.Style.IsZero() {
			continue
		}
		styleID, err := w.style(cell.Style)
		if err != nil {
			return err
		}
		if err := w.file.SetCellStyle(sheet.Name, cell.Ref, cell.Ref, styleID); err != nil {
			return fmt.Errorf("style %s: %w", cell.Ref, err)
		}
	}

	for _, merge := range sheet.Merges {
		if err := w.file.MergeCell(sheet.Name, merge.From, merge.To); err != nil {
			return fmt.Errorf("merge %s:%s: %w", merge.From, merge.To, err)
		}
	}

	for _, column := range sheet.Columns {
		if err := w.file.SetColWidth(sheet.Name, column.Name, column.Name, column.Width); err != nil {
			return fmt.Errorf("column %s width: %w", column.Name, err)
		}
	}

	for _, chart := range sheet.Charts {
		if err := w.file.AddChart(sheet.Name, chart.Anchor, toChart(chart)); err != nil {
			return fmt.Errorf("chart at %s: %w", chart.Anchor, err)
		}
	}

	return nil
}

// style returns the excelize style ID for s, registering it on first use
func (w *sheetWriter) style(s domain.Style) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}

	id, err := w.file.NewStyle(toStyle(s))
	if err != nil {
		return 0, fmt.Errorf("failed to register style: %w", err)
	}
	w.styles[s] = id
	return id, nil
}

func toStyle(s domain.Style) *excelize.Style {
	font := &excelize.Font{
		Bold:  s.Bold,
		Size:  s.Size,
		Color: s.Color,
	}
	if s.Underline {
		font.Underline = "single"
	}

	style := &excelize.Style{Font: font}
	if s.Fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.Fill}}
	}
	if s.Align != "" {
		style.Alignment = &excelize.Alignment{Horizontal: s.Align}
	}
	if s.NumFmt != "" {
		numFmt := s.NumFmt
		style.CustomNumFmt = &numFmt
	}
	return style
}

func toChart(c domain.Chart) *excelize.Chart {
	chartType := excelize.Line
	if c.Kind == domain.ChartPie {
		chartType = excelize.Pie
	}

	series := make([]excelize.ChartSeries, 0, len(c.Series))
	for _, s := range c.Series {
		series = append(series, excelize.ChartSeries{
			Name:       s.Name,
			Categories: s.Categories,
			Values:     s.Values,
		})
	}

	return &excelize.Chart{
		Type:      chartType,
		Series:    series,
		Title:     []excelize.RichTextRun{{Text: c.Title}},
		Legend:    excelize.ChartLegend{Position: "right"},
		Dimension: excelize.ChartDimension{Width: 480, Height: 300},
	}
}
