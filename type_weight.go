package cryptoalloc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Weight is an exact fraction of a whole, 0.25 means a quarter.
//
// Market weights and portfolio weights are both Weights so that the
// rebalance delta is computed without going through floats.
type Weight struct {
	value decimal.Decimal
}

func W[T float64 | int | int64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

// ParseWeight parses a fraction ("0.005") or a percentage ("0.5%").
func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	if percent {
		d = d.Shift(-2)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		return Weight{}, fmt.Errorf("weight %s is out of [0, 1]", d)
	}
	return Weight{value: d}, nil
}

func (w Weight) Equal(v Weight) bool              { return w.value.Equal(v.value) }
func (w Weight) Cmp(v Weight) int                 { return w.value.Cmp(v.value) }
func (w Weight) Add(v Weight) Weight              { return Weight{value: w.value.Add(v.value)} }
func (w Weight) Sub(v Weight) Weight              { return Weight{value: w.value.Sub(v.value)} }
func (w Weight) LessThan(v Weight) bool           { return w.value.LessThan(v.value) }
func (w Weight) GreaterThanOrEqual(v Weight) bool { return w.value.GreaterThanOrEqual(v.value) }
func (w Weight) IsZero() bool                     { return w.value.IsZero() }
func (w Weight) InexactFloat64() float64          { return w.value.InexactFloat64() }
func (w Weight) String() string                   { return w.value.String() }

// Percent converts the fraction for display.
func (w Weight) Percent() Percent {
	return Percent(w.value.Shift(2).InexactFloat64())
}

func (w Weight) MarshalJSON() ([]byte, error) {
	return w.value.MarshalJSON()
}

func (w *Weight) UnmarshalJSON(decimalBytes []byte) error {
	return w.value.UnmarshalJSON(decimalBytes)
}
