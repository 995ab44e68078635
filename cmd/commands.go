package cmd

import (
	"flag"

	"github.com/etnz/cryptoalloc/docs"
	"github.com/etnz/cryptoalloc/ticker"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Commands are the subcommands of the application.
var Commands = []subcommands.Command{
	&rebalanceCmd{},
	&marketCmd{},
	&sourcesCmd{},
	&topicCmd{},
}

// DefaultCommand is run when the command line starts with a portfolio file
// instead of a command name.
const DefaultCommand = "rebalance"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// IsCommand reports whether name is a registered subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmd := range Commands {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	top := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
		Args:  predict.Files("*.y*ml"),
	}
	for _, cmd := range Commands {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		switch cmd.Name() {
		case DefaultCommand:
			sub.Args = predict.Files("*.y*ml")
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, "readme"))
		}
		top.Sub[cmd.Name()] = sub
	}
	for _, name := range []string{"help", "flags", "commands"} {
		top.Sub[name] = &complete.Command{}
	}
	return top
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			flags[f.Name] = predict.Set(ticker.Names())
		case "format":
			flags[f.Name] = predict.Set{"md", "csv", "json"}
		case "market-file":
			flags[f.Name] = predict.Files("*.json")
		case "cache-dir":
			flags[f.Name] = predict.Dirs("*")
		default:
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				flags[f.Name] = predict.Nothing
			} else {
				flags[f.Name] = predict.Something
			}
		}
	})
	return flags
}
