package money_test

import (
	"math"
	"testing"

	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		cents   int64
		wantErr error
	}{
		{"whole number", "100", 10000, nil},
		{"two decimals", "99.99", 9999, nil},
		{"one decimal", "35.5", 3550, nil},
		{"negative", "-20.00", -2000, nil},
		{"surrounding whitespace", "  5 ", 500, nil},
		{"exponent", "1e2", 10000, nil},
		{"trailing zeros beyond cents", "12.3400", 1234, nil},
		{"too many decimals", "10.005", 0, money.ErrTooPrecise},
		{"not a number", "abc", 0, money.ErrInvalidAmount},
		{"empty", "", 0, money.ErrInvalidAmount},
		{"out of range", "100000000000000000000", 0, money.ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.Parse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cents, m.Amount())
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "35.00", money.MustParse("35").String())
	assert.Equal(t, "-20.50", money.MustParse("-20.5").String())
	assert.Equal(t, "0.00", money.Zero().String())
	assert.Equal(t, "0.07", money.FromSmallestUnit(7).String())
}

func TestMoney_Arithmetic(t *testing.T) {
	a := money.MustParse("100")
	b := money.MustParse("50.25")

	t.Run("Add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "150.25", sum.String())
	})

	t.Run("Subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "49.75", diff.String())
	})

	t.Run("Negate", func(t *testing.T) {
		assert.Equal(t, "-100.00", a.Negate().String())
	})

	t.Run("Add overflows", func(t *testing.T) {
		_, err := money.FromSmallestUnit(math.MaxInt64).Add(money.FromSmallestUnit(1))
		assert.ErrorIs(t, err, money.ErrAmountOutOfRange)
	})

	t.Run("Subtract overflows", func(t *testing.T) {
		_, err := money.FromSmallestUnit(math.MinInt64).Subtract(money.FromSmallestUnit(1))
		assert.ErrorIs(t, err, money.ErrAmountOutOfRange)
	})

	t.Run("Comparisons", func(t *testing.T) {
		assert.True(t, a.GreaterThan(b))
		assert.True(t, b.LessThan(a))
		assert.True(t, a.Equals(money.FromSmallestUnit(10000)))
		assert.True(t, a.IsPositive())
		assert.True(t, a.Negate().IsNegative())
		assert.True(t, money.Zero().IsZero())
	})
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { money.MustParse("nope") })
}
