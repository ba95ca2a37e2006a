package view

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"spesegen/internal/presentation"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders v with thousands separators and two decimals.
func FormatNumber(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatPercent renders a share in [0,1] as a percentage with one decimal.
func FormatPercent(share float64) string {
	if math.IsNaN(share) || math.IsInf(share, 0) {
		share = 0
	}
	return fmt.Sprintf("%.1f%%", share*100)
}

// FormatCell renders a table cell for display.
func FormatCell(v any) string {
	switch x := v.(type) {
	case float64:
		return FormatNumber(x)
	case int64:
		return printer.Sprintf("%d", x)
	default:
		return presentation.Label(v)
	}
}
