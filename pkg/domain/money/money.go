package money

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits every amount carries.
const Decimals = 2

var (
	// ErrInvalidAmount is returned when a string cannot be read as a number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTooPrecise is returned when an amount has more than Decimals fractional digits.
	ErrTooPrecise = errors.New("amount has more than 2 decimal places")

	// ErrAmountOutOfRange is returned when an amount or the result of an
	// arithmetic operation does not fit in the smallest-unit representation.
	ErrAmountOutOfRange = errors.New("amount exceeds maximum safe integer value")
)

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Amount represents a monetary amount as an integer in the smallest unit (cents).
type Amount = int64

// Money represents a monetary value.
// Invariants:
//   - Amount is always stored in the smallest unit (cents).
//   - Arithmetic never silently overflows; it fails with ErrAmountOutOfRange.
type Money struct {
	amount Amount
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{}
}

// FromSmallestUnit creates Money from an amount in cents.
func FromSmallestUnit(amount int64) Money {
	return Money{amount: amount}
}

// Parse reads a decimal string such as "35", "35.5" or "-20.00".
// Surrounding whitespace is ignored.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return fromDecimal(d)
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic("money: " + err.Error() + ": " + s)
	}
	return m
}

func fromDecimal(d decimal.Decimal) (Money, error) {
	scaled := d.Shift(Decimals)
	if !scaled.IsInteger() {
		return Money{}, ErrTooPrecise
	}
	if scaled.GreaterThan(maxAmount) || scaled.LessThan(minAmount) {
		return Money{}, ErrAmountOutOfRange
	}
	return Money{amount: scaled.IntPart()}, nil
}

// Amount returns the amount in the smallest unit.
func (m Money) Amount() Amount {
	return m.amount
}

// Decimal returns the amount in the main unit as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amount, -Decimals)
}

// Add returns m + other, or ErrAmountOutOfRange on overflow.
func (m Money) Add(other Money) (Money, error) {
	sum := m.amount + other.amount
	if (other.amount > 0 && sum < m.amount) || (other.amount < 0 && sum > m.amount) {
		return Money{}, ErrAmountOutOfRange
	}
	return Money{amount: sum}, nil
}

// Subtract returns m - other, or ErrAmountOutOfRange on overflow.
func (m Money) Subtract(other Money) (Money, error) {
	if other.amount == math.MinInt64 {
		return Money{}, ErrAmountOutOfRange
	}
	return m.Add(other.Negate())
}

// Negate returns -m. Negating the minimum amount saturates at the maximum.
func (m Money) Negate() Money {
	if m.amount == math.MinInt64 {
		return Money{amount: math.MaxInt64}
	}
	return Money{amount: -m.amount}
}

// Equals reports whether both amounts are the same.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String formats the amount with exactly two decimals, e.g. "35.00" or "-20.50".
func (m Money) String() string {
	return m.Decimal().StringFixed(Decimals)
}
