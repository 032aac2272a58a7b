package domain

// WorkbookRenderer defines the interface for turning a Workbook description
// into a binary spreadsheet document
type WorkbookRenderer interface {
	// Render serialises the workbook, creating sheets in declaration order
	Render(wb Workbook) ([]byte, error)
}
