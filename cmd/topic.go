package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/assetreturns/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read a documentation topic" }
func (*topicCmd) Usage() string {
	return `ar topic [<topic>...]

  Prints the documentation topics, or their list when none is given.
  "*" prints them all.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		content string
		err     error
	)
	if f.NArg() == 0 {
		content, err = docs.Index()
	} else {
		content, err = docs.GetTopics(f.Args()...)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
