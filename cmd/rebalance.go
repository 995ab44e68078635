package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/cryptoalloc"
	"github.com/etnz/cryptoalloc/renderer"
	"github.com/google/subcommands"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	format string
}

func (*rebalanceCmd) Name() string { return "rebalance" }
func (*rebalanceCmd) Synopsis() string {
	return "compare a portfolio to the market cap weighted allocation"
}
func (*rebalanceCmd) Usage() string {
	return `aa rebalance [-format md|csv|json] <portfolio.yaml>

  Values the coins of the portfolio file at the current market prices, and
  reports for each coin the amount to buy (positive) or sell (negative) so
  that the portfolio matches the market weights.

  The portfolio file lists the quantity owned of each coin:

    portfolio:
      BTC: 0.5
      ETH: 12
    min_weight: 0.5%   # optional, overrides -min-weight
    source: coingecko  # optional, overrides -source

  'aa <portfolio.yaml>' is a shorthand for this command.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "md", "Output format: md, csv or json")
}

func (c *rebalanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	if c.format != "md" && c.format != "csv" && c.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	file, err := cryptoalloc.LoadHoldingsFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n\n", err)
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	src, minWeight, err := settings(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	market, err := loadMarket(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		if errors.Is(err, cryptoalloc.ErrDataSource) {
			return subcommands.ExitFailure
		}
		return subcommands.ExitUsageError
	}

	report := cryptoalloc.NewAnalyzer(file.Holdings, market).Report(src.Name, minWeight)
	for _, row := range report.Rows {
		if !market.Has(row.Symbol) {
			log.Printf("%s is not listed by %s, valued at zero", row.Symbol, src.Name)
		}
	}

	switch c.format {
	case "csv":
		err = renderer.ReportCSV(output, report)
	case "json":
		err = renderer.ReportJSON(output, report)
	default:
		printMarkdown(renderer.ReportMarkdown(report))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
