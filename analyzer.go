package cryptoalloc

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// Position is the valuation of one holding.
type Position struct {
	Symbol   string
	Quantity Quantity
	Price    Money // zero when the coin is unlisted
	Value    Money
}

// Analyzer compares a portfolio to the market cap weighted allocation.
//
// It is a stateless calculator: everything is derived at construction from
// the holdings and the snapshot, neither of which is modified.
type Analyzer struct {
	market    *MarketSnapshot
	positions map[string]Position
	total     Money
}

// NewAnalyzer values holdings against market.
func NewAnalyzer(holdings Holdings, market *MarketSnapshot) *Analyzer {
	a := &Analyzer{
		market:    market,
		positions: make(map[string]Position, len(holdings)),
	}
	for symbol, q := range holdings {
		price := market.PriceOf(symbol)
		p := Position{
			Symbol:   symbol,
			Quantity: q,
			Price:    price,
			Value:    price.Mul(q),
		}
		a.positions[symbol] = p
		a.total = a.total.Add(p.Value)
	}
	return a
}

// Market returns the snapshot the analyzer values holdings against.
func (a *Analyzer) Market() *MarketSnapshot { return a.market }

// Positions returns a copy of the positions, one per held symbol.
func (a *Analyzer) Positions() map[string]Position {
	return maps.Clone(a.positions)
}

// TotalValue is the sum of all position values. It is zero for an empty
// portfolio or one made only of unlisted coins.
func (a *Analyzer) TotalValue() Money { return a.total }

// CurrentWeight returns the share of the portfolio value held in symbol.
// It is zero when the portfolio is worth nothing.
func (a *Analyzer) CurrentWeight(symbol string) Weight {
	if a.total.IsZero() {
		return Weight{}
	}
	return a.positions[symbol].Value.Ratio(a.total)
}

// ReportRow is one coin of the rebalance report.
type ReportRow struct {
	Rank          int    `json:"rank"` // by market weight, 1 is the largest
	Symbol        string `json:"symbol"`
	Spot          Money  `json:"spot"`
	MarketWeight  Weight `json:"marketWeight"`
	CurrentWeight Weight `json:"currentWeight"`
	Position      Money  `json:"position"`
	Rebalance     Money  `json:"rebalance"` // amount to buy (positive) or sell (negative)
}

// BuildReport lists every coin with a market weight of at least minWeight,
// and every held coin whatever its weight.
//
// Ranks follow the market weight order of the listed rows. The rows
// themselves are sorted by symbol.
func (a *Analyzer) BuildReport(minWeight Weight) []ReportRow {
	selected := make(map[string]bool)
	var candidates []SymbolWeight
	for _, sw := range a.market.RankedWeights() {
		_, held := a.positions[sw.Symbol]
		if sw.Weight.GreaterThanOrEqual(minWeight) || held {
			selected[sw.Symbol] = true
			candidates = append(candidates, sw)
		}
	}
	// held coins that are unlisted or without cap have a zero market weight.
	for symbol := range a.positions {
		if !selected[symbol] {
			candidates = append(candidates, SymbolWeight{Symbol: symbol, Weight: a.market.WeightOf(symbol)})
		}
	}
	slices.SortFunc(candidates, byWeightDesc)

	rows := make([]ReportRow, 0, len(candidates))
	for i, c := range candidates {
		current := a.CurrentWeight(c.Symbol)
		rows = append(rows, ReportRow{
			Rank:          i + 1,
			Symbol:        c.Symbol,
			Spot:          a.market.PriceOf(c.Symbol),
			MarketWeight:  c.Weight,
			CurrentWeight: current,
			Position:      a.positions[c.Symbol].Value,
			Rebalance:     a.total.Scale(c.Weight.Sub(current)),
		})
	}
	slices.SortFunc(rows, func(x, y ReportRow) int { return strings.Compare(x.Symbol, y.Symbol) })
	return rows
}

// Report is the full rebalance report, ready to be rendered.
type Report struct {
	Time      time.Time   `json:"time"` // market snapshot time
	Source    string      `json:"source,omitempty"`
	MinWeight Weight      `json:"minWeight"`
	Rows      []ReportRow `json:"rows"`
	Total     Money       `json:"total"`
}

// Report builds the rebalance report of coins above minWeight.
func (a *Analyzer) Report(source string, minWeight Weight) *Report {
	return &Report{
		Time:      a.market.Time(),
		Source:    source,
		MinWeight: minWeight,
		Rows:      a.BuildReport(minWeight),
		Total:     a.total,
	}
}
