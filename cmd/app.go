// Package cmd implements the CLI application computing a market cap
// weighted rebalance of a crypto portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/cryptoalloc"
	"github.com/etnz/cryptoalloc/ticker"
	"github.com/mattn/go-isatty"
)

// config holds the defaults of the global flags, read from the environment.
// The Source default must stay in sync with ticker.DefaultSource.
type config struct {
	Source     string        `env:"AA_SOURCE" envDefault:"coinpaprika"`
	MinWeight  string        `env:"AA_MIN_WEIGHT" envDefault:"0.5%"`
	MarketFile string        `env:"AA_MARKET_FILE"`
	CacheDir   string        `env:"AA_CACHE_DIR"`
	CacheTTL   time.Duration `env:"AA_CACHE_TTL" envDefault:"5m"`
	Timeout    time.Duration `env:"AA_TIMEOUT" envDefault:"30s"`
	Verbose    bool          `env:"AA_VERBOSE"`
	Raw        bool          `env:"AA_RAW"`
}

func loadConfig() config {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid environment, using defaults: %v\n", err)
		cfg = config{
			Source:    ticker.DefaultSource,
			MinWeight: "0.5%",
			CacheTTL:  5 * time.Minute,
			Timeout:   30 * time.Second,
		}
	}
	if cfg.CacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			cfg.CacheDir = filepath.Join(dir, "aa")
		}
	}
	return cfg
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaults = loadConfig()

var (
	sourceName = flag.String("source", defaults.Source, "Market data source, see 'aa sources'")
	minWeight  = flag.String("min-weight", defaults.MinWeight, "Minimum market weight of a coin to be listed, as a fraction (0.005) or a percentage (0.5%)")
	marketFile = flag.String("market-file", defaults.MarketFile, "Read quotes from this file, in the format of the source, instead of fetching them")
	cacheDir   = flag.String("cache-dir", defaults.CacheDir, "Directory caching market data responses. Empty to disable the cache")
	cacheTTL   = flag.Duration("cache-ttl", defaults.CacheTTL, "How long market data responses are cached")
	timeout    = flag.Duration("timeout", defaults.Timeout, "Timeout fetching market data")
	raw        = flag.Bool("raw", defaults.Raw, "Print raw markdown instead of rendering it for the terminal")
	Verbose    = flag.Bool("v", defaults.Verbose, "Verbose logging")
)

// output is where reports are printed.
var output io.Writer = os.Stdout

// SetupLogging discards the log unless verbose logging was requested.
func SetupLogging() {
	log.SetFlags(0)
	log.SetPrefix("aa: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// isFlagSet reports whether the global flag name was explicitly set on the
// command line.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// settings resolves the source and the minimum weight: explicit command line
// flags first, then the portfolio file, then the environment defaults.
func settings(file *cryptoalloc.HoldingsFile) (ticker.Source, cryptoalloc.Weight, error) {
	name := *sourceName
	if file != nil && file.Source != "" && !isFlagSet("source") {
		name = file.Source
	}
	src, err := ticker.Lookup(name)
	if err != nil {
		return ticker.Source{}, cryptoalloc.Weight{}, err
	}

	if file != nil && file.MinWeight != nil && !isFlagSet("min-weight") {
		return src, *file.MinWeight, nil
	}
	w, err := cryptoalloc.ParseWeight(*minWeight)
	if err != nil {
		return ticker.Source{}, cryptoalloc.Weight{}, fmt.Errorf("-min-weight: %w", err)
	}
	return src, w, nil
}

// loadMarket fetches the quotes of src, or reads them from the market file
// if one is set.
func loadMarket(ctx context.Context, src ticker.Source) (*cryptoalloc.MarketSnapshot, error) {
	if *marketFile != "" {
		f, err := os.Open(*marketFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cryptoalloc.ErrDataSource, err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cryptoalloc.ErrDataSource, err)
		}
		return ticker.ReadSnapshot(ctx, f, src, info.ModTime())
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()
	client := ticker.New(ticker.WithCache(*cacheDir, *cacheTTL))
	return client.Fetch(ctx, src)
}

// printMarkdown prints md, rendered for the terminal when output is one.
func printMarkdown(md string) {
	if *raw || !isTerminal(output) {
		fmt.Fprint(output, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(output, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(output, md)
		return
	}
	fmt.Fprint(output, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
