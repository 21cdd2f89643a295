package metrics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders baht with two decimals and thousands separators.
func FormatCurrency(v float64) string { return printer.Sprintf("฿%.2f", v) }

// FormatCurrencyShort truncates to whole baht.
func FormatCurrencyShort(v float64) string { return printer.Sprintf("฿%d", int64(v)) }

// FormatNumber truncates toward zero, like the sheet's integer columns.
func FormatNumber(v float64) string { return printer.Sprintf("%d", int64(v)) }

func FormatROAS(v float64) string { return printer.Sprintf("%.2fx", v) }

func FormatRate(v float64) string { return printer.Sprintf("%.1f%%", v) }

func FormatPercent2(v float64) string { return printer.Sprintf("%.2f%%", v) }

func Round2(f float64) float64 { return decimal.NewFromFloat(f).Round(2).InexactFloat64() }
func Round3(f float64) float64 { return decimal.NewFromFloat(f).Round(3).InexactFloat64() }
