// Command ar forecasts the returns of UK property and stock investments.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/assetreturns/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("ar")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.Known(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
