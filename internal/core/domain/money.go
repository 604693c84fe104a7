package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor currency units (cents).
// Integer units keep bill totals exact when summing line items.
type Money int64

// centsLimit is 2^63. Valid amounts have an absolute value in cents strictly
// below it, so every Money can be negated.
const centsLimit = 1 << 63

// MoneyFromFloat converts a decimal amount to Money, rounding half away
// from zero to the nearest cent. f must be within range; use MoneyFromNumber
// for amounts read from users or files.
func MoneyFromFloat(f float64) Money {
	return Money(math.Round(f * 100))
}

// MoneyFromNumber is MoneyFromFloat with a range check. NaN, infinities and
// amounts whose cents do not fit in Money return ErrAmountOutOfRange.
func MoneyFromNumber(f float64) (Money, error) {
	cents := math.Round(f * 100)
	if math.IsNaN(cents) || math.Abs(cents) >= centsLimit {
		return 0, ErrAmountOutOfRange
	}
	return Money(cents), nil
}

// ParseMoney parses a decimal string such as "120", "99.5" or "-3.25".
// Amounts with more than two fraction digits are rounded to the nearest cent.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount: %w", ErrInvalidInput)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid amount %q: %w", s, ErrInvalidInput)
	}
	m, err := MoneyFromNumber(f)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w: %w", s, err, ErrInvalidInput)
	}
	return m, nil
}

// AddMoney returns a + b, or ErrAmountOutOfRange if the sum leaves the range
// MoneyFromNumber accepts.
func AddMoney(a, b Money) (Money, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) || sum == math.MinInt64 {
		return 0, ErrAmountOutOfRange
	}
	return sum, nil
}

// Float64 returns the amount in major units.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// String formats the amount with two fraction digits, e.g. "250.00".
func (m Money) String() string {
	sign := ""
	v := uint64(m)
	if m < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Format prefixes the amount with a currency symbol, e.g. "$250.00".
func (m Money) Format(symbol string) string {
	if s, ok := strings.CutPrefix(m.String(), "-"); ok {
		return "-" + symbol + s
	}
	return symbol + m.String()
}
