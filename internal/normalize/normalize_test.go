package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // YYYY-MM-DD, empty means nil expected
	}{
		{name: "four digit year", raw: "15/03/2024", want: "2024-03-15"},
		{name: "two digit year below pivot", raw: "01/02/49", want: "2049-02-01"},
		{name: "two digit year at pivot", raw: "01/02/50", want: "1950-02-01"},
		{name: "two digit year above pivot", raw: "31/12/99", want: "1999-12-31"},
		{name: "surrounding whitespace", raw: "  15/03/2024  ", want: "2024-03-15"},
		{name: "empty", raw: "", want: ""},
		{name: "blank", raw: "   ", want: ""},
		{name: "iso form rejected", raw: "2024-03-15", want: ""},
		{name: "missing segment", raw: "15/03", want: ""},
		{name: "nonsense", raw: "not a date", want: ""},
		{name: "invalid day", raw: "32/01/2024", want: ""},
		{name: "invalid month", raw: "01/13/2024", want: ""},
		{name: "three digit year", raw: "01/01/202", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.raw)
			if tt.want == "" {
				assert.Nil(t, got)
			} else {
				if assert.NotNil(t, got) {
					assert.Equal(t, tt.want, got.Format(time.DateOnly))
				}
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "1500.50", want: "1500.5"},
		{name: "thousands separators", raw: "1,50,000.75", want: "150000.75"},
		{name: "tabs and spaces", raw: "\t 2,500.00 ", want: "2500"},
		{name: "integer", raw: "42", want: "42"},
		{name: "empty yields zero", raw: "", want: "0"},
		{name: "blank yields zero", raw: "   ", want: "0"},
		{name: "garbage yields zero", raw: "N/A", want: "0"},
		{name: "double decimal yields zero", raw: "1.2.3", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseAmount(%q) = %s, want %s", tt.raw, got, tt.want)
		})
	}
}

func TestParseBalance(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "positive grouped", raw: "93,43,827.31", want: "9343827.31"},
		{name: "negative with split sign", raw: "-,93,43,827.31", want: "-9343827.31"},
		{name: "plain negative", raw: "-827.31", want: "-827.31"},
		{name: "empty yields zero", raw: "", want: "0"},
		{name: "garbage yields zero", raw: "--", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBalance(tt.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseBalance(%q) = %s, want %s", tt.raw, got, tt.want)
		})
	}
}

func TestFormatAmountRoundTrip(t *testing.T) {
	values := []string{"0.00", "1500.50", "-9343827.31", "0.01", "100000.00"}

	for _, v := range values {
		d := decimal.RequireFromString(v)
		assert.True(t, ParseAmount(FormatAmount(d)).Equal(d),
			"round trip changed %s", v)
		assert.Equal(t, v, FormatAmount(ParseAmount(v)))
	}
}
