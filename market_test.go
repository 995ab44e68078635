package cryptoalloc

import (
	"testing"
	"time"
)

var testTime = time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

func quote(symbol string, price float64, capUSD float64) AssetQuote {
	return AssetQuote{Symbol: symbol, Price: M(price), Cap: M(capUSD), HasCap: true}
}

func uncapped(symbol string, price float64) AssetQuote {
	return AssetQuote{Symbol: symbol, Price: M(price)}
}

func TestMarketSnapshot_Weights(t *testing.T) {
	m := NewMarketSnapshot(testTime, []AssetQuote{
		quote("BTC", 50000, 900000000000),
		quote("ETH", 3000, 300000000000),
	})

	if !m.TotalCap().Equal(M(1200000000000)) {
		t.Errorf("TotalCap() = %v, want 1.2e12", m.TotalCap().Decimal())
	}
	if got := m.WeightOf("BTC"); !got.Equal(W(0.75)) {
		t.Errorf("WeightOf(BTC) = %v, want 0.75", got)
	}
	if got := m.WeightOf("ETH"); !got.Equal(W(0.25)) {
		t.Errorf("WeightOf(ETH) = %v, want 0.25", got)
	}
	if got := m.PriceOf("ETH"); !got.Equal(M(3000)) {
		t.Errorf("PriceOf(ETH) = %v, want 3000", got)
	}
}

func TestMarketSnapshot_WeightsSumToOne(t *testing.T) {
	testCases := []struct {
		name   string
		quotes []AssetQuote
	}{
		{"single", []AssetQuote{quote("BTC", 1, 42)}},
		{"thirds", []AssetQuote{quote("A", 1, 1), quote("B", 1, 1), quote("C", 1, 1)}},
		{"uneven", []AssetQuote{quote("A", 1, 7), quote("B", 1, 13), quote("C", 1, 17), quote("D", 1, 0.1)}},
		{"with uncapped", []AssetQuote{quote("A", 1, 3), uncapped("B", 2), quote("C", 1, 11)}},
		{"with zero cap", []AssetQuote{quote("A", 1, 3), quote("B", 1, 0)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMarketSnapshot(testTime, tc.quotes)
			var sum Weight
			for _, q := range tc.quotes {
				if q.HasCap {
					sum = sum.Add(m.WeightOf(q.Symbol))
				}
			}
			if diff := sum.Sub(W(1)).InexactFloat64(); diff > 1e-9 || diff < -1e-9 {
				t.Errorf("sum of weights = %v, want 1", sum)
			}
		})
	}
}

func TestMarketSnapshot_NoCap(t *testing.T) {
	m := NewMarketSnapshot(testTime, []AssetQuote{
		uncapped("BTC", 50000),
		quote("ETH", 3000, 0),
	})

	if !m.TotalCap().IsZero() {
		t.Errorf("TotalCap() = %v, want 0", m.TotalCap())
	}
	for _, s := range []string{"BTC", "ETH", "XYZ"} {
		if w := m.WeightOf(s); !w.IsZero() {
			t.Errorf("WeightOf(%s) = %v, want 0", s, w)
		}
	}
	if got := m.PriceOf("BTC"); !got.Equal(M(50000)) {
		t.Errorf("PriceOf(BTC) = %v, uncapped quotes must still be priced", got)
	}
}

func TestMarketSnapshot_Unlisted(t *testing.T) {
	m := NewMarketSnapshot(testTime, []AssetQuote{quote("BTC", 50000, 900)})

	if m.Has("XYZ") {
		t.Error("Has(XYZ) = true, want false")
	}
	// zero is the unlisted sentinel.
	if p := m.PriceOf("XYZ"); !p.IsZero() {
		t.Errorf("PriceOf(XYZ) = %v, want exactly 0", p)
	}
	if w := m.WeightOf("XYZ"); !w.IsZero() {
		t.Errorf("WeightOf(XYZ) = %v, want exactly 0", w)
	}

	// a listed coin can be worth nothing too, only Has tells them apart.
	m = NewMarketSnapshot(testTime, []AssetQuote{quote("DEAD", 0, 0)})
	if !m.Has("DEAD") || !m.PriceOf("DEAD").IsZero() {
		t.Error("a listed zero priced coin must be listed with a zero price")
	}
}

func TestMarketSnapshot_RankedWeights(t *testing.T) {
	m := NewMarketSnapshot(testTime, []AssetQuote{
		quote("B", 1, 10),
		uncapped("U", 1),
		quote("A", 1, 10),
		quote("C", 1, 30),
	})

	got := m.RankedWeights()
	want := []string{"C", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("RankedWeights() returned %d entries, want %d", len(got), len(want))
	}
	for i, sw := range got {
		if sw.Symbol != want[i] {
			t.Errorf("RankedWeights()[%d] = %s, want %s", i, sw.Symbol, want[i])
		}
	}
	if !got[0].Weight.Equal(W(0.6)) {
		t.Errorf("weight of C = %v, want 0.6", got[0].Weight)
	}
}

func TestMarketSnapshot_Duplicates(t *testing.T) {
	m := NewMarketSnapshot(testTime, []AssetQuote{
		quote("UNI", 10, 300),
		quote("UNI", 99, 100),
		quote("ETH", 1, 100),
	})

	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if p := m.PriceOf("UNI"); !p.Equal(M(10)) {
		t.Errorf("PriceOf(UNI) = %v, want the first quote", p)
	}
	if w := m.WeightOf("UNI"); !w.Equal(W(0.75)) {
		t.Errorf("WeightOf(UNI) = %v, want 0.75", w)
	}

	var symbols []string
	for q := range m.Quotes() {
		symbols = append(symbols, q.Symbol)
	}
	if len(symbols) != 2 || symbols[0] != "UNI" || symbols[1] != "ETH" {
		t.Errorf("Quotes() = %v, want source order [UNI ETH]", symbols)
	}
}
