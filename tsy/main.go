package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/treasury/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion hook: when invoked by the shell this prints the
	// candidates and exits, otherwise it is a no-op.
	completion().Complete("tsy")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	amount := map[string]complete.Predictor{"amount": predict.Something}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"demo":  {Flags: amount},
			"run":   {Flags: map[string]complete.Predictor{"q": predict.Nothing}},
			"fee":   {Flags: amount},
			"topic": {Args: predict.Set{"readme", "fees", "borrowing", "interest", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"USD", "EUR", "GBP"},
			"plain":    predict.Nothing,
		},
	}
}
