package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount the way Indonesian payroll documents expect:
// "Rp " prefix, no decimal places, dots as thousand separators.
// Example: 5000000 -> "Rp 5.000.000".
func FormatRupiah(amount decimal.Decimal) string {
	s := amount.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}
