package cryptoalloc

import (
	"iter"
	"slices"
	"strings"
	"time"
)

// MarketSnapshot holds the quotes of all known assets at one point in time,
// and the share of total market capitalization of each of them.
//
// It is read only once built, and can be shared between analyzers.
type MarketSnapshot struct {
	on      time.Time
	quotes  []AssetQuote
	index   map[string]int // symbol -> position in quotes
	weights map[string]Weight
	total   Money
}

// NewMarketSnapshot builds a snapshot from quotes, in source order.
// When a symbol appears several times only the first quote is kept.
func NewMarketSnapshot(on time.Time, quotes []AssetQuote) *MarketSnapshot {
	m := &MarketSnapshot{
		on:      on,
		index:   make(map[string]int, len(quotes)),
		weights: make(map[string]Weight, len(quotes)),
	}
	for _, q := range quotes {
		if _, exists := m.index[q.Symbol]; exists {
			continue
		}
		m.index[q.Symbol] = len(m.quotes)
		m.quotes = append(m.quotes, q)
		if q.HasCap {
			m.total = m.total.Add(q.Cap)
		}
	}

	// Without any capitalization there is no market to weight against:
	// every asset keeps a zero weight.
	if m.total.IsZero() {
		return m
	}
	for _, q := range m.quotes {
		if q.HasCap {
			m.weights[q.Symbol] = q.Cap.Ratio(m.total)
		}
	}
	return m
}

// Time returns when the quotes were fetched.
func (m *MarketSnapshot) Time() time.Time { return m.on }

// Len returns the number of distinct assets.
func (m *MarketSnapshot) Len() int { return len(m.quotes) }

// TotalCap returns the sum of the market caps of all assets reporting one.
func (m *MarketSnapshot) TotalCap() Money { return m.total }

// Has reports whether the symbol is listed.
func (m *MarketSnapshot) Has(symbol string) bool {
	_, ok := m.index[symbol]
	return ok
}

// Quotes iterates over quotes in source order.
func (m *MarketSnapshot) Quotes() iter.Seq[AssetQuote] {
	return func(yield func(AssetQuote) bool) {
		for _, q := range m.quotes {
			if !yield(q) {
				return
			}
		}
	}
}

// PriceOf returns the spot price of symbol.
//
// An unlisted symbol has a zero price. This is a sentinel, not an error: it
// values the holding at zero and keeps downstream arithmetic unconditional.
// Use Has to tell an unlisted asset from a worthless one.
func (m *MarketSnapshot) PriceOf(symbol string) Money {
	i, ok := m.index[symbol]
	if !ok {
		return Money{}
	}
	return m.quotes[i].Price
}

// WeightOf returns the fraction of total market cap of symbol, zero if the
// symbol is unlisted or reports no cap.
func (m *MarketSnapshot) WeightOf(symbol string) Weight {
	return m.weights[symbol]
}

// SymbolWeight is an entry of RankedWeights.
type SymbolWeight struct {
	Symbol string
	Weight Weight
}

// RankedWeights returns all assets with a known cap by descending weight,
// ties broken by symbol.
func (m *MarketSnapshot) RankedWeights() []SymbolWeight {
	ranked := make([]SymbolWeight, 0, len(m.quotes))
	for _, q := range m.quotes {
		if q.HasCap {
			ranked = append(ranked, SymbolWeight{Symbol: q.Symbol, Weight: m.weights[q.Symbol]})
		}
	}
	slices.SortFunc(ranked, byWeightDesc)
	return ranked
}

func byWeightDesc(a, b SymbolWeight) int {
	if c := b.Weight.Cmp(a.Weight); c != 0 {
		return c
	}
	return strings.Compare(a.Symbol, b.Symbol)
}
