// Package cryptoalloc computes how to rebalance a cryptocurrency portfolio
// toward the market capitalization weighted allocation.
//
// The core functionalities include:
//   - Market Snapshot: an immutable set of quotes fetched at one point in
//     time, and the share of total market cap of each coin.
//   - Analyzer: a stateless calculator that values the holdings against a
//     snapshot and reports, coin by coin, the amount to buy or sell to match
//     the market weights.
//   - Holdings File: decoding of the user's YAML portfolio file.
//
// Amounts are exact decimals in US dollars. Unlisted coins are priced at
// zero rather than reported as errors.
//
// This package serves as the foundational logic for the `aa` command-line
// tool. Fetching quotes is done by package ticker, and presenting the report
// by package renderer.
package cryptoalloc
