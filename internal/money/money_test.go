package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "brazilian thousands and decimal", raw: "1.234,56", want: 1234.56},
		{name: "plain dot decimal", raw: "1234.56", want: 1234.56},
		{name: "currency prefix with comma decimal", raw: "R$ 150,00", want: 150},
		{name: "negative with comma", raw: "-250,00", want: -250},
		{name: "multiple thousand groups", raw: "1.234.567,89", want: 1234567.89},
		{name: "integer", raw: "42", want: 42},
		{name: "garbage", raw: "garbage", want: 0},
		{name: "empty", raw: "", want: 0},
		{name: "only currency symbol", raw: "R$", want: 0},
		{name: "whitespace padded", raw: "  99,90  ", want: 99.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAmount(tt.raw), 1e-9)
		})
	}
}

func TestParseDateFlexible(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "brazilian date", raw: "15/01/2024", want: "2024-01-15"},
		{name: "iso date", raw: "2024-01-15", want: "2024-01-15"},
		{name: "unrecognized returns original", raw: "Jan 15 2024", want: "Jan 15 2024"},
		{name: "garbage returns original", raw: "not-a-date", want: "not-a-date"},
		{name: "empty returns original", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDateFlexible(tt.raw))
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey("2024-01-15"))
	assert.Equal(t, "2024-12", MonthKey("2024-12-01"))
	// Too-short input passes through untouched.
	assert.Equal(t, "2024", MonthKey("2024"))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 150,00", FormatBRL(150))
}

func TestAmountRoundTrip(t *testing.T) {
	// Formatting then parsing returns the original value.
	for _, v := range []float64{0, 150, 1234.56, 987654.32} {
		assert.InDelta(t, v, ParseAmount(FormatBRL(v)), 1e-9)
	}
}
