package domain

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"strings"
)

const (
	// priceScale is the number of decimal places a price carries.
	priceScale = 2
	// maxDecimalScale caps Decimal for values with no short decimal expansion.
	maxDecimalScale = 30
)

// Price represents a currency amount with precise decimal arithmetic using big.Rat.
// Product prices are never negative; filter bounds built with ParseBound may be.
// The zero value is 0.00.
type Price struct {
	rat *big.Rat
}

// NewPrice creates a Price from an amount expressed in cents.
// Example: NewPrice(1999) represents 19.99
func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{rat: big.NewRat(cents, 100)}, nil
}

// MustPrice is NewPrice for constants known to be valid.
func MustPrice(cents int64) Price {
	p, err := NewPrice(cents)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPriceFromRat creates a Price from a big.Rat, rounded to two decimals.
func NewPriceFromRat(rat *big.Rat) (Price, error) {
	if rat == nil {
		return Price{}, nil
	}
	if rat.Sign() < 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{rat: round(rat)}, nil
}

// ParsePrice parses a decimal string such as "19.99" into a non-negative Price rounded to two decimals.
func ParsePrice(s string) (Price, error) {
	p, err := ParseBound(s)
	if err != nil {
		return Price{}, err
	}
	if p.IsNegative() {
		return Price{}, ErrInvalidPrice
	}
	return Price{rat: round(p.rat)}, nil
}

// ParseBound parses a decimal string used as a price filter bound. The value is kept exact,
// so "19.991" stays above 19.99. Negative values are allowed.
func ParseBound(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "/") {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return Price{rat: rat}, nil
}

// Rat returns a copy of the underlying rational value.
func (p Price) Rat() *big.Rat {
	if p.rat == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.rat)
}

// IsNegative returns true if the price is below zero.
func (p Price) IsNegative() bool {
	return p.rat != nil && p.rat.Sign() < 0
}

// Cmp compares two prices and returns -1, 0 or +1.
func (p Price) Cmp(other Price) int {
	return p.Rat().Cmp(other.Rat())
}

// LessThan returns true if this price is less than another.
func (p Price) LessThan(other Price) bool {
	return p.Cmp(other) < 0
}

// GreaterThan returns true if this price is greater than another.
func (p Price) GreaterThan(other Price) bool {
	return p.Cmp(other) > 0
}

// Float64 returns the nearest float64 (for wire encoding only, not calculations).
func (p Price) Float64() float64 {
	f, _ := p.Rat().Float64()
	return f
}

// String returns the price with exactly two decimals.
func (p Price) String() string {
	return p.Rat().FloatString(priceScale)
}

// Decimal returns the decimal form of p with at least two places. It is exact for values
// with at most maxDecimalScale places, such as anything returned by RoundBound.
func (p Price) Decimal() string {
	return p.Rat().FloatString(decimalScale(p.Rat().Denom()))
}

// RoundBound rounds p to scale decimals toward the inside of a range: up for a lower
// bound, down for an upper one. For scale >= 2 a whole-cent price compares against the
// result exactly as it does against p.
func (p Price) RoundBound(scale int, lower bool) Price {
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	scaled := new(big.Rat).Mul(p.Rat(), new(big.Rat).SetInt(unit))
	q, m := new(big.Int).DivMod(scaled.Num(), scaled.Denom(), new(big.Int))
	if lower && m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return Price{rat: new(big.Rat).SetFrac(q, unit)}
}

// Value implements driver.Valuer so a Price binds as an exact NUMERIC literal.
func (p Price) Value() (driver.Value, error) {
	return p.Decimal(), nil
}

// Scan implements sql.Scanner for NUMERIC columns. Stored values are rounded to two decimals.
func (p *Price) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		parsed, err := ParsePrice(string(v))
		if err != nil {
			return err
		}
		*p = parsed
	case string:
		parsed, err := ParsePrice(v)
		if err != nil {
			return err
		}
		*p = parsed
	case float64:
		rat := new(big.Rat)
		if rat.SetFloat64(v) == nil {
			return fmt.Errorf("%w: %v", ErrInvalidPrice, v)
		}
		parsed, err := NewPriceFromRat(rat)
		if err != nil {
			return err
		}
		*p = parsed
	case int64:
		if v < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidPrice, v)
		}
		*p = Price{rat: big.NewRat(v, 1)}
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidPrice)
	default:
		return fmt.Errorf("cannot scan %T into Price", src)
	}
	return nil
}

// round rounds half away from zero to two decimals.
func round(rat *big.Rat) *big.Rat {
	scaled := new(big.Rat).Mul(rat, big.NewRat(100, 1))
	num := new(big.Int).Set(scaled.Num())
	den := scaled.Denom()

	neg := num.Sign() < 0
	num.Abs(num)
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if new(big.Int).Mul(r, big.NewInt(2)).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if neg {
		q.Neg(q)
	}
	return new(big.Rat).SetFrac(q, big.NewInt(100))
}

// decimalScale returns the number of places needed to print a rational with denominator den exactly.
func decimalScale(den *big.Int) int {
	d := new(big.Int).Set(den)
	twos, fives := 0, 0
	two, five := big.NewInt(2), big.NewInt(5)
	m := new(big.Int)
	for {
		q, r := new(big.Int).QuoRem(d, two, m)
		if r.Sign() != 0 {
			break
		}
		d, twos = q, twos+1
	}
	for {
		q, r := new(big.Int).QuoRem(d, five, m)
		if r.Sign() != 0 {
			break
		}
		d, fives = q, fives+1
	}

	scale := max(twos, fives, priceScale)
	if d.Cmp(big.NewInt(1)) != 0 || scale > maxDecimalScale {
		return maxDecimalScale
	}
	return scale
}
