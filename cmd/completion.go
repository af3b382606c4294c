package cmd

import (
	"flag"

	"github.com/etnz/assetreturns/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the ar command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags(flag.CommandLine),
	}
	root.Flags["scenario"] = predict.Files("*.yaml")
	for _, c := range Commands {
		root.Sub[c.Command.Name()] = completion(c.Command)
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{Args: predict.Set(commandNames())}
	}
	return root
}

func completion(c subcommands.Command) *complete.Command {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	cmd := &complete.Command{Flags: flags(f)}
	switch c.Name() {
	case "forecast", "schedule":
		cmd.Flags["f"] = predict.Files("*.yaml")
	}
	if _, ok := cmd.Flags["pdf"]; ok {
		cmd.Flags["pdf"] = predict.Files("*.pdf")
	}
	return cmd
}

// flags predicts nothing for boolean flags, and something for the others.
func flags(f *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			predictors[fl.Name] = predict.Nothing
			return
		}
		predictors[fl.Name] = predict.Something
	})
	return predictors
}

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Command.Name())
	}
	return names
}
