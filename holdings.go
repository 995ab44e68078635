package cryptoalloc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Holdings maps a coin symbol to the quantity owned.
type Holdings map[string]Quantity

// HoldingsFile is the content of a user portfolio file:
//
//	portfolio:
//	  BTC: 0.5
//	  ETH: 12
//	min_weight: 0.5%
//	source: coingecko
//
// Only the portfolio section is required.
type HoldingsFile struct {
	Holdings  Holdings
	MinWeight *Weight // nil when not set in the file
	Source    string
}

type holdingsFileYAML struct {
	Portfolio map[string]Quantity `yaml:"portfolio"`
	MinWeight yaml.Node           `yaml:"min_weight"`
	Source    string              `yaml:"source"`
}

// DecodeHoldingsFile decodes a portfolio file. All errors wrap ErrInput.
func DecodeHoldingsFile(r io.Reader) (*HoldingsFile, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	// Keys other than the ones below are left to the user (notes, targets).
	var raw holdingsFileYAML
	if err := yaml.NewDecoder(bytes.NewReader(content)).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty portfolio file", ErrInput)
		}
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if raw.Portfolio == nil {
		return nil, fmt.Errorf("%w: missing 'portfolio' section", ErrInput)
	}

	f := &HoldingsFile{
		Holdings: make(Holdings, len(raw.Portfolio)),
		Source:   strings.TrimSpace(raw.Source),
	}
	for symbol, q := range raw.Portfolio {
		key := strings.ToUpper(strings.TrimSpace(symbol))
		if key == "" {
			return nil, fmt.Errorf("%w: empty coin symbol", ErrInput)
		}
		if q.IsNegative() {
			return nil, fmt.Errorf("%w: negative quantity %s for %s", ErrInput, q, key)
		}
		if _, exists := f.Holdings[key]; exists {
			return nil, fmt.Errorf("%w: coin %s is listed twice", ErrInput, key)
		}
		f.Holdings[key] = q
	}
	if raw.MinWeight.Kind == yaml.ScalarNode && raw.MinWeight.Value != "" {
		w, err := ParseWeight(raw.MinWeight.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: min_weight: %w", ErrInput, err)
		}
		f.MinWeight = &w
	}
	return f, nil
}

// LoadHoldingsFile opens and decodes the portfolio file at path.
func LoadHoldingsFile(path string) (*HoldingsFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	defer f.Close()

	h, err := DecodeHoldingsFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}
