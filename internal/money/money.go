// Package money provides Brazilian-locale amount and date parsing plus the
// month-bucket keys used by all aggregation code. Parsing here is tolerant
// by contract: bad input degrades to zero values, it never errors, because
// the inputs come from messy bank exports.
package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseAmount parses a monetary string into a float64, handling the
// Brazilian convention where "." is the thousands separator and "," the
// decimal mark. Returns 0 on unparseable input, never an error.
func ParseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "R$", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	hasDot := strings.Contains(cleaned, ".")
	hasComma := strings.Contains(cleaned, ",")

	switch {
	case hasDot && hasComma:
		// "1.234,56": dots are thousands separators.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	if cleaned == "" {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// ParseDateFlexible normalizes dd/MM/yyyy and yyyy-MM-dd dates to ISO
// yyyy-MM-dd. Unrecognized input is returned unchanged; callers that need a
// valid date must validate separately.
func ParseDateFlexible(raw string) string {
	s := strings.TrimSpace(raw)

	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	return raw
}

// ParseISO parses a yyyy-MM-dd string into a time.Time, reporting whether
// the input was a valid ISO date.
func ParseISO(iso string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", iso)
	return t, err == nil
}

// MonthKey derives the "YYYY-MM" grouping key from an ISO date string.
// The input must already be ISO formatted; no parsing happens here.
func MonthKey(isoDate string) string {
	if len(isoDate) < 7 {
		return isoDate
	}
	return isoDate[:7]
}

// MonthKeyTime derives the "YYYY-MM" grouping key from a time.Time.
func MonthKeyTime(t time.Time) string {
	return t.Format("2006-01")
}

// FormatBRL renders a value with pt-BR grouping: "R$ 1.234,56".
func FormatBRL(value float64) string {
	return brPrinter.Sprintf("R$ %.2f", value)
}
