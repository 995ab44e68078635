package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/cryptoalloc/ticker"
	"github.com/google/subcommands"
)

type sourcesCmd struct{}

func (*sourcesCmd) Name() string     { return "sources" }
func (*sourcesCmd) Synopsis() string { return "list the market data sources" }
func (*sourcesCmd) Usage() string {
	return `aa sources

  Lists the market data sources that can be passed to -source.
`
}

func (*sourcesCmd) SetFlags(f *flag.FlagSet) {}

func (*sourcesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market data sources\n\n")
	fmt.Fprintln(&b, "| Source | Default | URL |")
	fmt.Fprintln(&b, "|:---|:---:|:---|")
	for _, name := range ticker.Names() {
		src, _ := ticker.Lookup(name)
		def := " "
		if name == *sourceName {
			def = "X"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", src.Name, def, src.URL)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
