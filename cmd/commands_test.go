package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = "../scenario/testdata/portfolio.yaml"

// run executes c with args and returns its output.
func run(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	out := capture(t)
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	status := c.Execute(context.Background(), f)
	return out.String(), status
}

func TestForecast(t *testing.T) {
	out, status := run(t, &forecastCmd{}, "-f", testScenario)
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "# Forecast of portfolio.yaml")
	assert.Contains(t, out, "Sold after 25 years.")
	for _, name := range []string{"High Yield Property", "Cookham House", "Grandby House", "BRK.B"} {
		assert.Contains(t, out, "| "+name+" |")
	}
	assert.NotContains(t, out, "| Year |")
}

func TestForecast_SeriesAndYears(t *testing.T) {
	out, status := run(t, &forecastCmd{}, "-f", testScenario, "-years", "40", "-series")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "Sold after 40 years.")
	assert.Equal(t, 4, strings.Count(out, "| Year |"))
	assert.Contains(t, out, "| 40 |")
}

func TestForecast_Query(t *testing.T) {
	out, status := run(t, &forecastCmd{}, "-f", testScenario, "-query", "$[3].name")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Equal(t, "\"BRK.B\"\n", out)
}

func TestForecast_AppreciationOverride(t *testing.T) {
	out, status := run(t, &forecastCmd{}, "-f", testScenario, "-appreciation", "0.05", "-query", "$[0].appreciation")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Equal(t, "5\n", out)
}

func TestForecast_JSONAndPDF(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "report.pdf")
	out, status := run(t, &forecastCmd{}, "-f", testScenario, "-json", "-pdf", pdf)
	require.Equal(t, subcommands.ExitSuccess, status, out)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 4)

	content, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF-"))
}

func TestForecast_Errors(t *testing.T) {
	out, status := run(t, &forecastCmd{}, "-f", "testdata/missing.yaml")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, "Error loading scenario")

	_, status = run(t, &forecastCmd{}, "-f", testScenario, "-years", "-2")
	assert.Equal(t, subcommands.ExitUsageError, status)

	out, status = run(t, &forecastCmd{}, "-f", testScenario, "-query", "$[")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, "Error querying projections")
}

func TestForecast_NoEquity(t *testing.T) {
	file := filepath.Join(t.TempDir(), "home.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
assets:
  - name: home
    kind: live-in
    price: 300000
    ltv: 1
    mortgage:
      length: 25
      rate: 0.03
`), 0o644))

	out, status := run(t, &forecastCmd{}, "-f", file, "-json")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, "Error forecasting: home: initial equity must be positive")
	assert.NotContains(t, out, "Inf")
}

func TestSchedule(t *testing.T) {
	out, status := run(t, &scheduleCmd{}, "-principal", "100000", "-length", "2", "-rate", "0.04", "-early", "13=0.1", "-yearly")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "Borrowed £100,000.00 over 2 years")
	assert.Contains(t, out, "| 2 |")
	assert.NotContains(t, out, "| 3 |")
	assert.Contains(t, out, "- month 13:")
}

func TestSchedule_ScenarioAsset(t *testing.T) {
	out, status := run(t, &scheduleCmd{}, "-f", testScenario, "-asset", "Grandby House", "-yearly")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "# Grandby House mortgage")
	assert.Contains(t, out, "Borrowed £420,000.00 over 25 years")

	out, status = run(t, &scheduleCmd{}, "-f", testScenario, "-asset", "BRK.B")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, `asset "BRK.B" has no mortgage`)

	out, status = run(t, &scheduleCmd{}, "-f", testScenario, "-asset", "nowhere")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, `no asset "nowhere"`)
}

func TestSchedule_Errors(t *testing.T) {
	out, status := run(t, &scheduleCmd{})
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, "-principal or -asset is required")

	out, status = run(t, &scheduleCmd{}, "-principal", "1000", "-interest-only", "-early", "1=0.5")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, "early repayments need a repayment mortgage")

	c := &scheduleCmd{}
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	f.SetOutput(new(strings.Builder))
	c.SetFlags(f)
	assert.Error(t, f.Parse([]string{"-early", "13"}))
}

func TestSize(t *testing.T) {
	out, status := run(t, &sizeCmd{}, "-price", "100000", "-ltv", "0.75", "-rate", "0.0359")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "| Maximum loan (75.00%) | £75,000.00 |")
	assert.Contains(t, out, "| Deposit |")
	assert.NotContains(t, out, "Rental coverage")

	out, status = run(t, &sizeCmd{}, "-price", "600000", "-rate", "0.03", "-btl", "-rental", "1400")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "Rental coverage")

	out, status = run(t, &sizeCmd{}, "-price", "-1", "-rate", "0.03")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, out, "Error sizing the mortgage")
}

func TestSDLT(t *testing.T) {
	out, status := run(t, &sdltCmd{}, "-second", "100000", "300,000")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "| £100,000.00 | £5,000.00 | 5.00% |")
	assert.Contains(t, out, "| £300,000.00 | £20,000.00 |")

	_, status = run(t, &sdltCmd{})
	assert.Equal(t, subcommands.ExitUsageError, status)
	_, status = run(t, &sdltCmd{}, "a lot")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestCGT(t *testing.T) {
	out, status := run(t, &cgtCmd{}, "20000")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "| £20,000.00 | £2,156.00 |")

	out, status = run(t, &cgtCmd{}, "-shares", "20000")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "| £20,000.00 | £1,540.00 |")
}

func TestTopic(t *testing.T) {
	out, status := run(t, &topicCmd{})
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "* scenario:")

	out, status = run(t, &topicCmd{}, "taxes")
	require.Equal(t, subcommands.ExitSuccess, status, out)
	assert.Contains(t, out, "# Taxes")

	_, status = run(t, &topicCmd{}, "nothing")
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestKnown(t *testing.T) {
	for _, name := range []string{"forecast", "schedule", "size", "sdlt", "cgt", "topic", "help"} {
		assert.True(t, Known(name), name)
	}
	assert.False(t, Known("hello"))
}

func TestCompletion(t *testing.T) {
	c := Completion()
	require.Len(t, c.Sub, len(Commands)+3)
	assert.Contains(t, c.Sub["forecast"].Flags, "f")
	assert.Contains(t, c.Sub["forecast"].Flags, "pdf")
	assert.Contains(t, c.Sub["schedule"].Flags, "early")
	assert.Contains(t, c.Sub["sdlt"].Flags, "second")
	assert.NotNil(t, c.Sub["topic"].Args)
}
