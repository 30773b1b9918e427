// Package normalize converts raw per-bank statement fields into canonical
// types. Every function here is pure: no I/O, and malformed input degrades
// to a zero value instead of an error, because statement exports routinely
// contain blank or placeholder cells that must not abort a run.
package normalize

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// twoDigitYearPivot maps two-digit years below the pivot to 20xx and the
// rest to 19xx.
const twoDigitYearPivot = 50

// ParseDate parses DD/MM/YYYY or DD/MM/YY statement dates. It returns nil
// on anything it cannot parse; callers treat a nil date as "drop this row".
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return nil
	}

	var layout string
	switch len(parts[2]) {
	case 4:
		layout = "02/01/2006"
	case 2:
		layout = "02/01/06"
	default:
		return nil
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return nil
	}

	if len(parts[2]) == 2 {
		// time.Parse pivots two-digit years at 69; statements pivot at 50.
		yy := t.Year() % 100
		var year int
		if yy < twoDigitYearPivot {
			year = 2000 + yy
		} else {
			year = 1900 + yy
		}
		t = time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	return &t
}

// ParseAmount parses a currency magnitude, stripping thousands separators,
// tabs and whitespace. Any parse failure yields zero: blank amount cells are
// expected in real exports and must not fail processing.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := cleanNumeric(raw)
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseBalance parses a running balance. On top of ParseAmount's handling it
// reassembles the export format where the minus sign is split from the
// digits by a group separator (a literal leading "-," before the grouped
// digits, e.g. "-,93,43,827.31").
func ParseBalance(raw string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "-,") {
		trimmed = "-" + trimmed[2:]
	}
	return ParseAmount(trimmed)
}

// FormatAmount renders a decimal in the canonical two-place string form, the
// inverse of ParseAmount for valid inputs.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func cleanNumeric(raw string) string {
	replacer := strings.NewReplacer(",", "", "\t", "", " ", "")
	return replacer.Replace(strings.TrimSpace(raw))
}
