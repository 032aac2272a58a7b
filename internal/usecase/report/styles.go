package report

import "github.com/simaogato/savings-planner/internal/domain"

const (
	colorAccent  = "4472C4"
	colorWhite   = "FFFFFF"
	colorGood    = "008000"
	colorWarning = "FF0000"

	currencyNumFmt = `"₹"#,##0.00`
)

var (
	titleStyle    = domain.Style{Bold: true, Size: 14}
	subtitleStyle = domain.Style{Bold: true, Size: 11}
	boldStyle     = domain.Style{Bold: true}
	moneyStyle    = domain.Style{NumFmt: currencyNumFmt}
	boldMoney     = domain.Style{Bold: true, NumFmt: currencyNumFmt}

	// Shared by every table header in the workbook
	headerStyle = domain.Style{
		Bold:  true,
		Size:  12,
		Color: colorWhite,
		Fill:  colorAccent,
		Align: "center",
	}

	accentTitleStyle = domain.Style{Bold: true, Size: 14, Color: colorAccent}
	sectionStyle     = domain.Style{Bold: true, Underline: true}
	alertStyle       = domain.Style{Bold: true, Color: colorWarning}
	congratsStyle    = domain.Style{Bold: true, Size: 12, Color: colorGood}
)

// signalColor picks the good colour when good holds, the warning colour otherwise
func signalColor(good bool) string {
	if good {
		return colorGood
	}
	return colorWarning
}
