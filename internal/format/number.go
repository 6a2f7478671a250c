// Package format renders values for display: money, numbers, dates, phone
// numbers and status colours.
package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NotApplicable is shown for rates whose denominator is zero.
const NotApplicable = "N/A"

var symbols = map[string]string{
	"USD": "$",
	"CAD": "CA$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

func printer() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

// Number renders v with thousands separators and exactly decimals fraction
// digits.
func Number(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return printer().Sprint(number.Decimal(v, number.Scale(decimals)))
}

// Currency renders amount in the given ISO 4217 code, USD when empty, using
// the currency's standard number of fraction digits. Unknown codes fall back
// to a plain dollar amount with two decimals.
func Currency(amount float64, code string) string {
	if code == "" {
		code = "USD"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return signed(amount, "$", Number(math.Abs(amount), 2))
	}
	scale, _ := currency.Standard.Rounding(unit)
	sym, ok := symbols[unit.String()]
	if !ok {
		sym = unit.String() + " "
	}
	return signed(amount, sym, Number(math.Abs(amount), scale))
}

func signed(amount float64, sym, digits string) string {
	if amount < 0 && strings.Trim(digits, "0.,") != "" {
		return "-" + sym + digits
	}
	return sym + digits
}

// Percentage renders v, already scaled to 0..100, with a percent sign.
func Percentage(v float64, decimals int) string {
	return Number(v, decimals) + "%"
}

// RateOrNA renders numerator/denominator as a percentage, or N/A when the
// denominator is zero.
func RateOrNA(numerator, denominator float64, decimals int) string {
	if denominator == 0 {
		return NotApplicable
	}
	return Percentage(100*numerator/denominator, decimals)
}

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FileSize renders a byte count in binary units with at most two decimals.
func FileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	i = min(i, len(fileSizeUnits)-1)
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + fileSizeUnits[i]
}
