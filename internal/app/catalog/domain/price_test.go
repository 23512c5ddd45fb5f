package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("valid price creation", func(t *testing.T) {
		p, err := NewPrice(1999)
		require.NoError(t, err)
		assert.Equal(t, "19.99", p.String())
	})

	t.Run("negative cents returns error", func(t *testing.T) {
		_, err := NewPrice(-1)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("zero value is zero", func(t *testing.T) {
		var p Price
		assert.Equal(t, 0, p.Cmp(MustPrice(0)))
		assert.Equal(t, "0.00", p.String())
	})
}

func TestParsePrice(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		p, err := ParsePrice("19.99")
		require.NoError(t, err)
		assert.Equal(t, 19.99, p.Float64())
	})

	t.Run("integer string gets two decimals", func(t *testing.T) {
		p, err := ParsePrice("59")
		require.NoError(t, err)
		assert.Equal(t, "59.00", p.String())
	})

	t.Run("rounds to cents", func(t *testing.T) {
		p, err := ParsePrice("7.505")
		require.NoError(t, err)
		assert.Equal(t, "7.51", p.String())
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := ParsePrice("-1")
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, s := range []string{"", "  ", "abc", "1/3", "NaN"} {
			_, err := ParsePrice(s)
			assert.ErrorIs(t, err, ErrInvalidPrice, "input %q", s)
		}
	})
}

func TestParseBound_AllowsNegative(t *testing.T) {
	p, err := ParseBound("-5")
	require.NoError(t, err)
	assert.True(t, p.IsNegative())
}

func TestParseBound_KeepsSubCentPrecision(t *testing.T) {
	mouse := MustPrice(1999)

	tests := []struct {
		raw     string
		decimal string
		cmp     int
	}{
		{"19.991", "19.991", 1},
		{"19.995", "19.995", 1},
		{"19.985", "19.985", -1},
		{"19.99", "19.99", 0},
		{"20", "20.00", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, err := ParseBound(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.decimal, p.Decimal())
			assert.Equal(t, tt.cmp, p.Cmp(mouse))
		})
	}
}

func TestPrice_RoundBound(t *testing.T) {
	bound, err := ParseBound("19.9900000001")
	require.NoError(t, err)

	lower := bound.RoundBound(9, true)
	upper := bound.RoundBound(9, false)

	assert.Equal(t, "19.990000001", lower.Decimal())
	assert.Equal(t, "19.990000000", upper.Rat().FloatString(9))
	assert.True(t, MustPrice(1999).LessThan(lower))
	assert.Equal(t, 0, MustPrice(1999).Cmp(upper))

	negative, err := ParseBound("-0.001")
	require.NoError(t, err)
	assert.Equal(t, "0.00", negative.RoundBound(2, true).Decimal())
	assert.Equal(t, "-0.01", negative.RoundBound(2, false).Decimal())
}

func TestPrice_Compare(t *testing.T) {
	low := MustPrice(1000)
	high := MustPrice(5000)

	assert.True(t, low.LessThan(high))
	assert.True(t, high.GreaterThan(low))
	assert.Equal(t, 0, low.Cmp(MustPrice(1000)))
}

func TestPrice_Scan(t *testing.T) {
	t.Run("numeric bytes", func(t *testing.T) {
		var p Price
		require.NoError(t, p.Scan([]byte("199.00")))
		assert.Equal(t, "199.00", p.String())
	})

	t.Run("text is rounded to cents", func(t *testing.T) {
		var p Price
		require.NoError(t, p.Scan("7.505"))
		assert.Equal(t, "7.51", p.String())
	})

	t.Run("negative is rejected", func(t *testing.T) {
		var p Price
		assert.ErrorIs(t, p.Scan("-1.00"), ErrInvalidPrice)
		assert.ErrorIs(t, p.Scan(int64(-1)), ErrInvalidPrice)
	})

	t.Run("float", func(t *testing.T) {
		var p Price
		require.NoError(t, p.Scan(7.5))
		assert.Equal(t, "7.50", p.String())
	})

	t.Run("null is rejected", func(t *testing.T) {
		var p Price
		assert.ErrorIs(t, p.Scan(nil), ErrInvalidPrice)
	})
}

func TestPrice_Value(t *testing.T) {
	v, err := MustPrice(1999).Value()
	require.NoError(t, err)
	assert.Equal(t, "19.99", v)

	bound, err := ParseBound("19.991")
	require.NoError(t, err)
	v, err = bound.Value()
	require.NoError(t, err)
	assert.Equal(t, "19.991", v)
}

func TestNewPriceFromRat(t *testing.T) {
	p, err := NewPriceFromRat(big.NewRat(1999, 100))
	require.NoError(t, err)
	assert.Equal(t, "19.99", p.String())

	_, err = NewPriceFromRat(big.NewRat(-1, 1))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
