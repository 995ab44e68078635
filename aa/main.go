// Command aa is the crypto asset allocator: it tells how much of each coin
// to buy or sell for a portfolio to match the market cap weights.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cryptoalloc/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when invoked by the shell for completion.
	cmd.Completion().Complete("aa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()

	// aa <portfolio.yaml> is the historical invocation.
	if flag.NArg() > 0 && !cmd.IsCommand(flag.Arg(0)) {
		flag.CommandLine.Parse(append([]string{cmd.DefaultCommand}, flag.Args()...))
	}

	os.Exit(int(commander.Execute(context.Background())))
}
