package domain

const (
	ReportFilename    = "expense_tracker.xlsx"
	ReportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportFile is a rendered report ready for attachment-style delivery
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
