package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/assetreturns"
	"github.com/google/subcommands"
)

// sdltCmd holds the flags for the 'sdlt' subcommand.
type sdltCmd struct {
	secondProperty bool
	firstTimeBuyer bool
}

func (*sdltCmd) Name() string     { return "sdlt" }
func (*sdltCmd) Synopsis() string { return "compute the stamp duty of property prices" }
func (*sdltCmd) Usage() string {
	return `ar sdlt [-second] [-ftb] <price>...

  Prints the stamp duty land tax due on each price.
`
}

func (c *sdltCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.secondProperty, "second", false, "The property is a second property.")
	f.BoolVar(&c.firstTimeBuyer, "ftb", false, "The buyer is a first time buyer.")
}

func (c *sdltCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prices, err := amounts(f.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var b strings.Builder
	fmt.Fprint(&b, "# Stamp Duty\n\n")
	fmt.Fprintln(&b, "| Price | Stamp Duty | Rate |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	for _, price := range prices {
		duty := assetreturns.StampDuty(c.secondProperty, price, c.firstTimeBuyer)
		rate := 0.0
		if price > 0 {
			rate = duty / price
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", assetreturns.GBP(price), assetreturns.GBP(duty), assetreturns.Ratio(rate))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// cgtCmd holds the flags for the 'cgt' subcommand.
type cgtCmd struct {
	shares bool
}

func (*cgtCmd) Name() string     { return "cgt" }
func (*cgtCmd) Synopsis() string { return "compute the capital gains tax of gains" }
func (*cgtCmd) Usage() string {
	return `ar cgt [-shares] <gain>...

  Prints the capital gains tax due on each gain, after the annual allowance.
  Gains are on property unless -shares is set.
`
}

func (c *cgtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.shares, "shares", false, "The gains are not on property.")
}

func (c *cgtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gains, err := amounts(f.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var b strings.Builder
	fmt.Fprint(&b, "# Capital Gains Tax\n\n")
	fmt.Fprintln(&b, "| Gain | Tax |")
	fmt.Fprintln(&b, "|---:|---:|")
	for _, gain := range gains {
		fmt.Fprintf(&b, "| %s | %s |\n", assetreturns.GBP(gain), assetreturns.GBP(assetreturns.CapitalGains(!c.shares, gain)))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// amounts parses positional arguments as amounts.
func amounts(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one amount is required")
	}
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(strings.ReplaceAll(arg, ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}
