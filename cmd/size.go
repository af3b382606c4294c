package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/assetreturns"
	"github.com/etnz/assetreturns/mortgage"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// sizeCmd holds the flags for the 'size' subcommand.
type sizeCmd struct {
	price          float64
	ltv            float64
	rental         float64
	rate           float64
	length         int
	interestOnly   bool
	taxDeductible  *float64
	buyToLet       bool
	secondProperty bool
	firstTimeBuyer bool
}

func (*sizeCmd) Name() string     { return "size" }
func (*sizeCmd) Synopsis() string { return "find the largest affordable mortgage for a property" }
func (*sizeCmd) Usage() string {
	return `ar size -price <amount> -rate <ratio> [-ltv <ratio>] [-btl -rental <amount>]

  Searches the largest principal up to ltv of the price that a lender would
  accept. A buy to let mortgage installment, stressed at 5%, must be covered
  1.4 times by the monthly gross rental.

Usage Examples:
$ ar size -price 600000 -rate 0.03 -btl -rental 1400
`
}

func (c *sizeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.price, "price", 0, "Property price.")
	f.Float64Var(&c.ltv, "ltv", 0.75, "Maximum loan to value, as a ratio.")
	f.Float64Var(&c.rental, "rental", 0, "Monthly gross rental.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate, as a ratio.")
	f.IntVar(&c.length, "length", 25, "Length of the mortgage in years.")
	f.BoolVar(&c.interestOnly, "interest-only", false, "Interest only mortgage instead of a repayment one.")
	f.Func("tax-deductible", "Tax rate at which the interest is relieved.", floatFlag(&c.taxDeductible))
	f.BoolVar(&c.buyToLet, "btl", false, "Size the mortgage against the rental.")
	f.BoolVar(&c.secondProperty, "second", false, "The property is a second property.")
	f.BoolVar(&c.firstTimeBuyer, "ftb", false, "The buyer is a first time buyer.")
}

func (c *sizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := newLogger()
	defer logger.Sync()

	var build mortgage.Builder
	if c.interestOnly {
		build = mortgage.InterestOnlyBuilder(c.length)
	} else {
		build = mortgage.RepaymentBuilder(c.length, nil)
	}
	if c.taxDeductible != nil {
		build = mortgage.TaxDeductibleBuilder(*c.taxDeductible, build)
	}
	search := mortgage.SearchResidential
	if c.buyToLet {
		search = mortgage.SearchBuyToLet
	}

	m, err := search(build, c.rental, c.price, c.ltv, c.rate)
	if err != nil {
		fmt.Fprintf(stderr, "Error sizing the mortgage: %v\n", err)
		return subcommands.ExitFailure
	}
	stressed, err := build(m.Principal(), mortgage.BenchmarkRate)
	if err != nil {
		fmt.Fprintf(stderr, "Error stressing the mortgage: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("mortgage sized",
		zap.Float64("principal", m.Principal()),
		zap.Float64("installment", m.MonthlyInstallment()),
		zap.Float64("stressedInstallment", stressed.MonthlyInstallment()),
	)

	gbp := assetreturns.GBP
	var b strings.Builder
	fmt.Fprint(&b, "# Mortgage Size\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Price | %s |\n", gbp(c.price))
	fmt.Fprintf(&b, "| Maximum loan (%s) | %s |\n", assetreturns.Ratio(c.ltv), gbp(c.price*c.ltv))
	fmt.Fprintf(&b, "| Principal | %s |\n", gbp(m.Principal()))
	fmt.Fprintf(&b, "| Monthly installment | %s |\n", gbp(m.MonthlyInstallment()))
	fmt.Fprintf(&b, "| Monthly installment at %s | %s |\n", assetreturns.Ratio(mortgage.BenchmarkRate), gbp(stressed.MonthlyInstallment()))
	if c.buyToLet {
		fmt.Fprintf(&b, "| Rental coverage | %.2f |\n", c.rental/stressed.MonthlyInstallment())
	}
	fmt.Fprintf(&b, "| Deposit | %s |\n", gbp(c.price-m.Principal()))
	fmt.Fprintf(&b, "| Stamp duty | %s |\n", gbp(assetreturns.StampDuty(c.secondProperty, c.price, c.firstTimeBuyer)))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
