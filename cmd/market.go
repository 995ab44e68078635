package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptoalloc/renderer"
	"github.com/google/subcommands"
)

// marketCmd holds the flags for the 'market' subcommand.
type marketCmd struct {
	limit int
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the coins by market weight" }
func (*marketCmd) Usage() string {
	return `aa market [-n <count>]

  Displays the largest coins of the market data source with their share of
  the total market capitalization. Coins below -min-weight are not listed.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 20, "Maximum number of coins to display, 0 for all")
}

func (c *marketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	src, minWeight, err := settings(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	market, err := loadMarket(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MarketMarkdown(market, minWeight, c.limit))
	return subcommands.ExitSuccess
}
