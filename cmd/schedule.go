package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/assetreturns/mortgage"
	"github.com/etnz/assetreturns/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	file   string
	asset  string
	yearly bool

	principal     float64
	length        int
	rate          float64
	interestOnly  bool
	taxDeductible *float64
	early         mortgage.EarlyRepayments
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the amortization schedule of a mortgage" }
func (*scheduleCmd) Usage() string {
	return `ar schedule -asset <name> [-f <scenario>] [-yearly]
ar schedule -principal <amount> -length <years> -rate <ratio> [-interest-only] [-early <month>=<fraction>,...] [-yearly]

  Prints the month by month amortization schedule of the mortgage of a
  scenario asset, or of a mortgage described by flags.

Usage Examples:
# Yearly schedule, repaying 10% of the balance at the start of years 2 and 3.
$ ar schedule -principal 420000 -length 25 -rate 0.0259 -early 13=0.1,25=0.1 -yearly
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Scenario file. Defaults to the -scenario one.")
	f.StringVar(&c.asset, "asset", "", "Scenario asset whose mortgage is printed.")
	f.BoolVar(&c.yearly, "yearly", false, "Aggregate the schedule per year.")
	f.Float64Var(&c.principal, "principal", 0, "Amount borrowed.")
	f.IntVar(&c.length, "length", 25, "Length of the mortgage in years.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate, as a ratio.")
	f.BoolVar(&c.interestOnly, "interest-only", false, "Interest only mortgage instead of a repayment one.")
	f.Func("tax-deductible", "Tax rate at which the interest is relieved.", floatFlag(&c.taxDeductible))
	f.Func("early", "Early repayments, as comma separated <month>=<fraction of the balance at the start of the year>.", earlyFlag(&c.early))
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := newLogger()
	defer logger.Sync()

	var (
		m     mortgage.Mortgage
		title string
		err   error
	)
	if c.asset != "" {
		m, err = c.scenarioMortgage(logger)
		title = c.asset + " mortgage"
	} else {
		m, err = c.flagMortgage()
		title = "Mortgage"
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ScheduleMarkdown(title, m, c.yearly))
	return subcommands.ExitSuccess
}

func (c *scheduleCmd) scenarioMortgage(logger *zap.Logger) (mortgage.Mortgage, error) {
	s, _, err := loadScenario(c.file)
	if err != nil {
		return nil, err
	}
	assets, err := s.Build(logger)
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		if a.Name != c.asset {
			continue
		}
		if a.Mortgage == nil {
			return nil, fmt.Errorf("asset %q has no mortgage", c.asset)
		}
		return a.Mortgage, nil
	}
	return nil, fmt.Errorf("no asset %q in the scenario", c.asset)
}

func (c *scheduleCmd) flagMortgage() (mortgage.Mortgage, error) {
	if c.principal <= 0 {
		return nil, errors.New("-principal or -asset is required")
	}
	var build mortgage.Builder
	if c.interestOnly {
		if len(c.early) > 0 {
			return nil, errors.New("early repayments need a repayment mortgage")
		}
		build = mortgage.InterestOnlyBuilder(c.length)
	} else {
		build = mortgage.RepaymentBuilder(c.length, c.early)
	}
	if c.taxDeductible != nil {
		build = mortgage.TaxDeductibleBuilder(*c.taxDeductible, build)
	}
	return build(c.principal, c.rate)
}

// earlyFlag parses "13=0.1,25=0.1" into early repayments.
func earlyFlag(dst *mortgage.EarlyRepayments) func(string) error {
	return func(s string) error {
		early := make(mortgage.EarlyRepayments)
		for _, item := range strings.Split(s, ",") {
			month, fraction, ok := strings.Cut(strings.TrimSpace(item), "=")
			if !ok {
				return fmt.Errorf("%q is not <month>=<fraction>", item)
			}
			m, err := strconv.Atoi(month)
			if err != nil {
				return fmt.Errorf("invalid month in %q: %w", item, err)
			}
			v, err := strconv.ParseFloat(fraction, 64)
			if err != nil {
				return fmt.Errorf("invalid fraction in %q: %w", item, err)
			}
			early[m] = v
		}
		*dst = early
		return nil
	}
}
