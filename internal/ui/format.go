package ui

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	printer   = message.NewPrinter(language.English)
	titleCase = cases.Title(language.English)
)

// formatAmount renders a money amount with a currency symbol and thousands
// separators, e.g. $5,280.42 or -$450.30.
func formatAmount(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	f, _ := d.Float64()
	return printer.Sprintf("%s$%v", sign,
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func formatTimestamp(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// accountLabel renders an account as shown on screen, e.g. "Checking ****1234".
func accountLabel(kind, number string) string {
	return titleCase.String(kind) + " " + number
}
