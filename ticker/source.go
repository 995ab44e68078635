// Package ticker fetches market quotes for all listed coins from public
// ticker APIs.
//
// Each API is described by a Source: where to GET the quotes, and the
// JSONPath expressions locating the list of records in the response and the
// fields within each record.
package ticker

import (
	"fmt"
	"slices"
	"strings"
)

// Source describes a ticker API.
type Source struct {
	Name   string
	URL    string
	List   string // JSONPath of the records in the response
	Symbol string // JSONPath of the symbol in a record
	Price  string // JSONPath of the USD price in a record
	Cap    string // JSONPath of the USD market cap in a record
}

// DefaultSource is the name of the source used when none is configured.
const DefaultSource = "coinpaprika"

var sources = map[string]Source{
	"coinpaprika": {
		Name:   "coinpaprika",
		URL:    "https://api.coinpaprika.com/v1/tickers?quotes=USD",
		List:   "$[*]",
		Symbol: "$.symbol",
		Price:  "$.quotes.USD.price",
		Cap:    "$.quotes.USD.market_cap",
	},
	"coingecko": {
		Name:   "coingecko",
		URL:    "https://api.coingecko.com/api/v3/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=250",
		List:   "$[*]",
		Symbol: "$.symbol",
		Price:  "$.current_price",
		Cap:    "$.market_cap",
	},
	"coincap": {
		Name:   "coincap",
		URL:    "https://api.coincap.io/v2/assets?limit=2000",
		List:   "$.data[*]",
		Symbol: "$.symbol",
		Price:  "$.priceUsd",
		Cap:    "$.marketCapUsd",
	},
	// the legacy coinmarketcap ticker, numbers are quoted strings.
	"coinmarketcap": {
		Name:   "coinmarketcap",
		URL:    "https://api.coinmarketcap.com/v1/ticker/?limit=0",
		List:   "$[*]",
		Symbol: "$.symbol",
		Price:  "$.price_usd",
		Cap:    "$.market_cap_usd",
	},
}

// Lookup returns the source registered under name.
func Lookup(name string) (Source, error) {
	s, ok := sources[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Source{}, fmt.Errorf("unknown market data source %q, valid sources are %s", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names returns the registered source names, sorted.
func Names() []string {
	names := make([]string, 0, len(sources))
	for n := range sources {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
