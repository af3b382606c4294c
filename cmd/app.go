// Package cmd implements the ar command line: forecasts of property and stock
// investments held in a scenario file.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/assetreturns/scenario"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var scenarioFile = flag.String("scenario", "portfolio.yaml", "Path to the scenario file (YAML)")
var Verbose = flag.Bool("v", false, "log the computation details on stderr")
var raw = flag.Bool("raw", false, "print markdown as is, without terminal styling")

// output of the commands, swapped by tests.
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

// Commands are all the ar subcommands, and their group.
var Commands = []struct {
	Command subcommands.Command
	Group   string
}{
	{&forecastCmd{}, "forecast"},
	{&scheduleCmd{}, "forecast"},
	{&sizeCmd{}, "mortgage"},
	{&sdltCmd{}, "tax"},
	{&cgtCmd{}, "tax"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
}

// Known reports whether name is a builtin subcommand.
func Known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmd := range Commands {
		if cmd.Command.Name() == name {
			return true
		}
	}
	return false
}

// newLogger returns a development logger when -v is set, a no-op one otherwise.
func newLogger() *zap.Logger {
	if !*Verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: cannot create logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

// loadScenario reads the scenario at path, or the -scenario one if path is empty.
func loadScenario(path string) (*scenario.File, string, error) {
	if path == "" {
		path = *scenarioFile
	}
	s, err := scenario.Load(path)
	if err != nil {
		return nil, "", err
	}
	return s, filepath.Base(path), nil
}

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
