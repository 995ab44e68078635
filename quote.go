package cryptoalloc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetQuote is the market state of one asset at fetch time.
//
// A quote without a market cap is still used to price holdings, but it does
// not take part in the market weights.
type AssetQuote struct {
	Symbol string
	Price  Money
	Cap    Money
	HasCap bool
}

// RawQuote is a record as found in a market data response. Price and Cap
// can be numeric strings, JSON numbers or floats. Cap can be nil.
type RawQuote struct {
	Symbol any
	Price  any
	Cap    any
}

// ParseQuote validates a raw record and converts it into an AssetQuote.
// Errors wrap ErrDataSource.
func ParseQuote(raw RawQuote) (AssetQuote, error) {
	symbol, ok := raw.Symbol.(string)
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !ok || symbol == "" {
		return AssetQuote{}, fmt.Errorf("%w: record without symbol: %v", ErrDataSource, raw.Symbol)
	}

	price, ok, err := parseAmount(raw.Price)
	if err != nil {
		return AssetQuote{}, fmt.Errorf("%w: %s price: %w", ErrDataSource, symbol, err)
	}
	if !ok {
		return AssetQuote{}, fmt.Errorf("%w: %s has no price", ErrDataSource, symbol)
	}

	q := AssetQuote{Symbol: symbol, Price: Money{value: price}}

	capUSD, ok, err := parseAmount(raw.Cap)
	if err != nil {
		return AssetQuote{}, fmt.Errorf("%w: %s market cap: %w", ErrDataSource, symbol, err)
	}
	if ok {
		q.Cap = Money{value: capUSD}
		q.HasCap = true
	}
	return q, nil
}

// parseAmount converts a loosely typed, non negative amount. ok is false
// when the amount is absent (nil or empty string).
func parseAmount(v any) (d decimal.Decimal, ok bool, err error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, false, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return decimal.Zero, false, nil
		}
		d, err = decimal.NewFromString(strings.TrimSpace(x))
	case json.Number:
		d, err = decimal.NewFromString(x.String())
	case float64:
		d = decimal.NewFromFloat(x)
	case int:
		d = decimal.NewFromInt(int64(x))
	case int64:
		d = decimal.NewFromInt(x)
	default:
		return decimal.Zero, false, fmt.Errorf("unexpected type %T", v)
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	if d.IsNegative() {
		return decimal.Zero, false, fmt.Errorf("negative amount %s", d)
	}
	return d, true, nil
}
