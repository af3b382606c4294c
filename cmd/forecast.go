package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/assetreturns/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	file         string
	years        int
	appreciation *float64
	inflation    *float64
	series       bool
	json         bool
	query        string
	pdf          string
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "compare the returns of every asset of a scenario" }
func (*forecastCmd) Usage() string {
	return `ar forecast [-f <scenario>] [-years <n>] [-series] [-json | -query <jsonpath>] [-pdf <file>]

  Forecasts every asset of the scenario and compares the returns of selling
  them after the report year.

Usage Examples:
# Summary after 10 years, with a 2% yearly appreciation.
$ ar forecast -years 10 -appreciation 0.02

# Annual return of the first asset after the last year.
$ ar forecast -query '$[0].years[-1:].annualPercentage'
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Scenario file. Defaults to the -scenario one.")
	f.IntVar(&c.years, "years", 0, "Holding period of the summary. Defaults to the scenario report year.")
	f.Func("appreciation", "Yearly appreciation of the sale price, as a ratio. Overrides the scenario.", floatFlag(&c.appreciation))
	f.Func("inflation", "Yearly inflation, as a ratio. Overrides the scenario.", floatFlag(&c.inflation))
	f.BoolVar(&c.series, "series", false, "Also print the year by year series of every asset.")
	f.BoolVar(&c.json, "json", false, "Print the projections as JSON.")
	f.StringVar(&c.query, "query", "", "Print the result of a jsonpath expression on the JSON projections.")
	f.StringVar(&c.pdf, "pdf", "", "Also write a PDF report to this file.")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := newLogger()
	defer logger.Sync()

	s, name, err := loadScenario(c.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.appreciation != nil {
		s.Appreciation = *c.appreciation
	}
	if c.inflation != nil {
		s.Inflation = *c.inflation
	}
	if c.years < 0 {
		fmt.Fprintf(stderr, "Error: -years must be positive, got %d\n", c.years)
		return subcommands.ExitUsageError
	}
	if c.years > 0 {
		s.ReportYear = c.years
		s.Horizon = max(s.Horizon, c.years)
	}

	assets, err := s.Build(logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error building assets: %v\n", err)
		return subcommands.ExitFailure
	}
	projections, err := s.Project(assets)
	if err != nil {
		fmt.Fprintf(stderr, "Error forecasting: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Info("forecast done", zap.String("scenario", name), zap.Int("assets", len(projections)), zap.Int("horizon", s.Horizon))

	switch {
	case c.query != "":
		val, err := renderer.Query(projections, c.query)
		if err != nil {
			fmt.Fprintf(stderr, "Error querying projections: %v\n", err)
			return subcommands.ExitFailure
		}
		out, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding result: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(out))
	case c.json:
		if err := renderer.JSON(stdout, projections); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		var b strings.Builder
		b.WriteString(renderer.SummaryMarkdown("Forecast of "+name, s.ReportYear, projections))
		if c.series {
			for _, p := range projections {
				b.WriteString("\n")
				b.WriteString(renderer.SeriesMarkdown(p))
			}
		}
		printMarkdown(b.String())
	}

	if c.pdf != "" {
		out, err := os.Create(c.pdf)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating %q: %v\n", c.pdf, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := renderer.PDF(out, "Forecast of "+name, s.ReportYear, projections); err != nil {
			fmt.Fprintf(stderr, "Error writing %q: %v\n", c.pdf, err)
			return subcommands.ExitFailure
		}
		logger.Info("pdf written", zap.String("file", c.pdf))
	}
	return subcommands.ExitSuccess
}

// floatFlag parses a flag into a float pointer, left nil when the flag is not set.
func floatFlag(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}
