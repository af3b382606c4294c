// Package renderer presents projections and mortgage schedules as markdown,
// JSON or PDF.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/assetreturns"
)

// SummaryMarkdown compares the outcome of selling every asset after year years.
// Assets not projected that far are listed apart.
func SummaryMarkdown(title string, year int, projections []*assetreturns.Projection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Sold after %d years.\n\n", year)

	fmt.Fprintln(&b, "| Asset | Initial Equity | Nominal Return | Return | Annual Return | Profit (last year) |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, p := range projections {
		y, ok := p.At(year)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			p.Name,
			p.InitialEquity,
			y.Nominal.SignedString(),
			y.Percentage.SignedString(),
			y.AnnualPercentage.SignedString(),
			y.Profit.SignedString(),
		)
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\nNot projected over %d years:\n\n", year)
		short := false
		for _, p := range projections {
			if _, ok := p.At(year); !ok {
				fmt.Fprintf(w, "- %s (%d years)\n", p.Name, len(p.Years))
				short = true
			}
		}
		return short
	})

	return b.String()
}

// SeriesMarkdown details a projection year by year.
func SeriesMarkdown(p *assetreturns.Projection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", p.Name)
	fmt.Fprintf(&b, "Initial equity: %s", p.InitialEquity)
	if p.Appreciation != 0 {
		fmt.Fprintf(&b, ", appreciation: %s a year", p.Appreciation)
	}
	fmt.Fprint(&b, "\n\n")

	fmt.Fprintln(&b, "| Year | Nominal Return | Return | Annual Return | Gained | Profit |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
	for _, y := range p.Years {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			y.Year,
			y.Nominal.SignedString(),
			y.Percentage.SignedString(),
			y.AnnualPercentage.SignedString(),
			y.PercentageGained.SignedString(),
			y.Profit.SignedString(),
		)
	}
	return b.String()
}
