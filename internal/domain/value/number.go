package value

import "github.com/shopspring/decimal"

// ParseNumberOrZero parses a numeric-as-string field. An absent (empty) or
// unparseable value yields zero, so a missing price or rating filters the
// same way as an explicit "0".
func ParseNumberOrZero(s string) decimal.Decimal {
	d, ok := ParseNumber(s)
	if !ok {
		return decimal.Zero
	}

	return d
}

// ParseNumber reports whether s holds a number and returns it.
func ParseNumber(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}
