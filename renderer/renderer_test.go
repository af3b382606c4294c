package renderer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/assetreturns"
	"github.com/etnz/assetreturns/mortgage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tables parses markdown and returns every table as rows of cells, header first.
func tables(t *testing.T, src string) [][][]string {
	t.Helper()
	source := []byte(src)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var result [][][]string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			result = append(result, nil)
		case *east.TableHeader, *east.TableRow:
			var row []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				row = append(row, cellText(c, source))
			}
			result[len(result)-1] = append(result[len(result)-1], row)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return result
}

func cellText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func projections(t *testing.T, years int) []*assetreturns.Projection {
	t.Helper()
	stock, err := assetreturns.Project("BRK.B", assetreturns.NewStock(200000, 21.73), years, 0, 0)
	require.NoError(t, err)

	property, err := assetreturns.PropertyForecast(assetreturns.PropertyTerms{
		SecondProperty:     true,
		Price:              100000,
		MonthlyGrossRental: 750,
		RentalTax:          0.45,
		MonthsOccupied:     10,
		AgencyFees:         0.2,
	}, 0.75, mortgage.TaxDeductibleBuilder(0.2, mortgage.RepaymentBuilder(12, nil)), 0.03)
	require.NoError(t, err)
	flat, err := assetreturns.Project("High Yield", property, years, 0.01, 0)
	require.NoError(t, err)

	return []*assetreturns.Projection{stock, flat}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown("Portfolio", 1, projections(t, 3))

	tbls := tables(t, got)
	require.Len(t, tbls, 1)
	rows := tbls[0]
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Asset", "Initial Equity", "Nominal Return", "Return", "Annual Return", "Profit (last year)"}, rows[0])
	assert.Equal(t, "BRK.B", rows[1][0])
	assert.Equal(t, "£200,000.00", rows[1][1])
	assert.Equal(t, "+£4,667.78", rows[1][2])
	assert.Equal(t, "High Yield", rows[2][0])
	assert.NotContains(t, got, "Not projected")
}

func TestSummaryMarkdown_ShortProjections(t *testing.T) {
	all := projections(t, 3)
	short, err := assetreturns.Project("Short", assetreturns.NewStock(1000, 10), 2, 0, 0)
	require.NoError(t, err)
	all = append(all, short)

	got := SummaryMarkdown("Portfolio", 3, all)
	assert.Len(t, tables(t, got)[0], 3)
	assert.Contains(t, got, "Not projected over 3 years")
	assert.Contains(t, got, "- Short (2 years)")
}

func TestSeriesMarkdown(t *testing.T) {
	p := projections(t, 5)[1]
	got := SeriesMarkdown(p)

	tbls := tables(t, got)
	require.Len(t, tbls, 1)
	rows := tbls[0]
	require.Len(t, rows, 6)
	for i, row := range rows[1:] {
		require.Len(t, row, 6)
		assert.Equal(t, p.Years[i].Nominal.SignedString(), row[1])
	}
	assert.Contains(t, got, "appreciation: 1.00% a year")
}

func TestScheduleMarkdown(t *testing.T) {
	m, err := mortgage.NewRepayment(100000, 2, 0.04, mortgage.EarlyRepayments{13: 0.1})
	require.NoError(t, err)

	monthly := ScheduleMarkdown("Loan", m, false)
	rows := tables(t, monthly)[0]
	require.Len(t, rows, 25)
	assert.Equal(t, "£100,000.00", rows[1][1])
	assert.Equal(t, "£0.00", rows[24][5])
	assert.Equal(t, "-", rows[1][4])
	assert.Contains(t, monthly, "- month 13:")

	yearly := ScheduleMarkdown("Loan", m, true)
	rows = tables(t, yearly)[0]
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Year", "Owed", "Interest", "Payments", "Early Repayments", "Balance"}, rows[0])
	assert.Equal(t, "£0.00", rows[2][5])
	assert.Equal(t, "-", rows[1][4])
}

func TestScheduleMarkdown_NoEarlyRepayments(t *testing.T) {
	m, err := mortgage.NewInterestOnly(50000, 1, 0.05)
	require.NoError(t, err)

	got := ScheduleMarkdown("Loan", m, false)
	assert.NotContains(t, got, "Early repayments:")
	assert.Contains(t, got, "Arrangement fee: £2,000.00.")
}

func TestJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, JSON(&b, projections(t, 2)))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "BRK.B", got[0]["name"])
	assert.Len(t, got[1]["years"], 2)
}

func TestQuery(t *testing.T) {
	all := projections(t, 3)
	testCases := []struct {
		path string
		want any
	}{
		{path: "$[0].name", want: "BRK.B"},
		{path: "$[0].years[0].nominal.amount", want: "4667.78"},
		{path: "$[1].years[-1:].year", want: 3.0},
		{path: "$[*].name", want: []any{"BRK.B", "High Yield"}},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := Query(all, tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Query(all, "$[")
	assert.Error(t, err)
}

func TestPDF(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, PDF(&b, "Portfolio", 2, projections(t, 2)))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("%PDF-")))
}
