package cryptoalloc

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the only currency amounts are expressed in.
const Currency = money.USD

// Money represents an amount of US dollars.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the full go-money currency, used for formatting.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the amount rounded to cents, like "$1,234.56".
func (m Money) String() string {
	cur := currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// PriceString is like String but keeps four significant digits for prices
// below one dollar, so that "$0.00" is never displayed for a listed coin.
func (m Money) PriceString() string {
	if m.value.IsZero() || m.value.Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return m.String()
	}
	places := int32(4)
	threshold := decimal.New(1, -1)
	for m.value.Abs().LessThan(threshold) && places < 12 {
		places++
		threshold = threshold.Shift(-1)
	}
	sign := ""
	if m.value.IsNegative() {
		sign = "-"
	}
	return sign + currency().Grapheme + m.value.Abs().StringFixed(places)
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.Round(2).IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) Cmp(n Money) int          { return m.value.Cmp(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value)} }
func (m Money) Scale(w Weight) Money     { return Money{value: m.value.Mul(w.value)} }
func (m Money) Round(places int32) Money { return Money{value: m.value.Round(places)} }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) InexactFloat64() float64  { return m.value.InexactFloat64() }
func (m Money) Within(n Money, eps Money) bool {
	return m.value.Sub(n.value).Abs().LessThanOrEqual(eps.value)
}

// Ratio returns m/total as a Weight, and zero when total is zero.
func (m Money) Ratio(total Money) Weight {
	if total.value.IsZero() {
		return Weight{}
	}
	return Weight{value: m.value.Div(total.value)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
