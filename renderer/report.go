// Package renderer presents rebalance reports as markdown, CSV or JSON.
package renderer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cryptoalloc"
	"github.com/gocarina/gocsv"
)

// ReportMarkdown renders the rebalance report: one row per coin, sorted by
// symbol, with its market cap rank.
func ReportMarkdown(r *cryptoalloc.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalance on %s\n\n", r.Time.UTC().Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Coins with a market weight of at least %s, and coins held.\n\n", r.MinWeight.Percent())

	fmt.Fprintln(&b, "| # | Coin | Spot | Market | Port | Position | Rebalance |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|---:|")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			row.Rank,
			row.Symbol,
			row.Spot.PriceString(),
			row.MarketWeight.Percent(),
			row.CurrentWeight.Percent(),
			row.Position,
			row.Rebalance.SignedString(),
		)
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", r.Total)
	if r.Source != "" {
		fmt.Fprintf(&b, "\n*Market data: %s*\n", r.Source)
	}
	return b.String()
}

// MarketMarkdown renders the largest coins by market weight. At most limit
// coins are listed, all of them if limit is not positive, and never those
// below minWeight.
func MarketMarkdown(m *cryptoalloc.MarketSnapshot, minWeight cryptoalloc.Weight, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market on %s\n\n", m.Time().UTC().Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "%d coins listed, total market cap %s.\n\n", m.Len(), m.TotalCap())

	fmt.Fprintln(&b, "| # | Coin | Spot | Market |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|")
	for i, sw := range m.RankedWeights() {
		if (limit > 0 && i >= limit) || sw.Weight.LessThan(minWeight) {
			break
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, sw.Symbol, m.PriceOf(sw.Symbol).PriceString(), sw.Weight.Percent())
	}
	return b.String()
}

// csvRow is the flat representation of a report row.
type csvRow struct {
	Rank          int    `csv:"rank"`
	Symbol        string `csv:"coin"`
	Spot          string `csv:"spot_usd"`
	MarketWeight  string `csv:"market_weight"`
	CurrentWeight string `csv:"portfolio_weight"`
	Position      string `csv:"position_usd"`
	Rebalance     string `csv:"rebalance_usd"`
}

// ReportCSV writes the report rows as CSV with exact decimal values.
func ReportCSV(w io.Writer, r *cryptoalloc.Report) error {
	rows := make([]*csvRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, &csvRow{
			Rank:          row.Rank,
			Symbol:        row.Symbol,
			Spot:          row.Spot.Decimal().String(),
			MarketWeight:  row.MarketWeight.String(),
			CurrentWeight: row.CurrentWeight.String(),
			Position:      row.Position.Round(2).Decimal().StringFixed(2),
			Rebalance:     row.Rebalance.Round(2).Decimal().StringFixed(2),
		})
	}
	return gocsv.Marshal(&rows, w)
}

// ReportJSON writes the report as an indented JSON document.
func ReportJSON(w io.Writer, r *cryptoalloc.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
