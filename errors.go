package cryptoalloc

import "errors"

var (
	// ErrInput reports a missing, unreadable, or malformed holdings file.
	ErrInput = errors.New("invalid input")

	// ErrDataSource reports a market data fetch that failed or returned
	// malformed data.
	ErrDataSource = errors.New("market data unavailable")
)
