package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cryptoalloc/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the manual: portfolio file, sources, rebalance" }
func (*topicCmd) Usage() string {
	return `aa topic [-list] [<topic>...]

  Print pages of the aa manual. Without a topic, print the introduction;
  with '*', print every page.

  Pages: portfolio-file, rebalance, sources.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the manual pages and exit")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		pages, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing manual pages: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(output, strings.Join(pages, "\n"))
		return subcommands.ExitSuccess
	}

	pages := f.Args()
	if len(pages) == 0 {
		pages = []string{"readme"}
	}
	doc, err := docs.GetTopics(pages...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading manual: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'aa topic -list' for the available pages.\n")
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
