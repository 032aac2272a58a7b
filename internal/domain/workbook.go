package domain

import "fmt"

// Workbook is a library-independent description of a spreadsheet document.
// Renderers must create the sheets in slice order.
type Workbook struct {
	Sheets []Sheet
}

// Sheet returns the sheet called name, or nil
func (w Workbook) Sheet(name string) *Sheet {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i]
		}
	}
	return nil
}

// Sheet describes the content and presentation of one worksheet
type Sheet struct {
	Name    string
	Cells   []Cell
	Merges  []Merge
	Columns []Column
	Charts  []Chart
}

// Cell returns the cell at ref, or nil when nothing was written there
func (s *Sheet) Cell(ref string) *Cell {
	for i := range s.Cells {
		if s.Cells[i].Ref == ref {
			return &s.Cells[i]
		}
	}
	return nil
}

// Set appends a cell value with a style
func (s *Sheet) Set(ref string, value any, style Style) {
	s.Cells = append(s.Cells, Cell{Ref: ref, Value: value, Style: style})
}

// Merge records a merged range
func (s *Sheet) Merge(from, to string) {
	s.Merges = append(s.Merges, Merge{From: from, To: to})
}

// Width fixes the width of a column
func (s *Sheet) Width(column string, width float64) {
	s.Columns = append(s.Columns, Column{Name: column, Width: width})
}

// Cell is one written cell. Value is a string, float64 or int.
type Cell struct {
	Ref   string
	Value any
	Style Style
}

// Style is a comparable presentation description.
// Colours are RGB hex strings without a leading '#'.
type Style struct {
	Bold      bool
	Size      float64
	Color     string
	Fill      string
	Align     string
	Underline bool
	NumFmt    string
}

// IsZero reports whether the style carries no formatting
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge is an inclusive cell range rendered as one cell
type Merge struct {
	From string
	To   string
}

// Column fixes the display width of a column
type Column struct {
	Name  string
	Width float64
}

// ChartKind enumerates the chart types the layout can ask for
type ChartKind string

const (
	ChartPie  ChartKind = "pie"
	ChartLine ChartKind = "line"
)

// Chart is anchored at a cell and plots ranges of the owning workbook
type Chart struct {
	Anchor string
	Kind   ChartKind
	Title  string
	Series []ChartSeries
}

// ChartSeries references the name cell, category range and value range of one series
type ChartSeries struct {
	Name       string
	Categories string
	Values     string
}

// CellRef builds an A1-style reference
func CellRef(column string, row int) string {
	return fmt.Sprintf("%s%d", column, row)
}

// AbsRange builds an absolute sheet-qualified range such as 'Sheet'!$A$1:$A$9
func AbsRange(sheet, column string, fromRow, toRow int) string {
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, column, fromRow, column, toRow)
}

// AbsCell builds an absolute sheet-qualified cell reference such as 'Sheet'!$B$3
func AbsCell(sheet, column string, row int) string {
	return fmt.Sprintf("'%s'!$%s$%d", sheet, column, row)
}
