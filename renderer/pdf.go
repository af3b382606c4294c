package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/assetreturns"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin      = 15.0
	pdfRowHeight   = 6.0
	pdfHeaderColor = 230
)

// pdfText converts UTF-8 text to the Latin-1 expected by the standard fonts.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// PDF writes an A4 report: the summary after year years, then a page per
// projection with its yearly series.
func PDF(w io.Writer, title string, year int, projections []*assetreturns.Projection) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pageWidth, _ := pdf.GetPageSize()
	width := pageWidth - 2*pdfMargin

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(width, 10, pdfText(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(width, 8, fmt.Sprintf("Sold after %d years.", year), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	var rows [][]string
	for _, p := range projections {
		y, ok := p.At(year)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			p.Name,
			p.InitialEquity.String(),
			y.Nominal.SignedString(),
			y.Percentage.SignedString(),
			y.AnnualPercentage.SignedString(),
		})
	}
	pdfTable(pdf, []float64{0.32, 0.17, 0.19, 0.16, 0.16}, width,
		[]string{"Asset", "Initial Equity", "Nominal Return", "Return", "Annual Return"}, rows)

	for _, p := range projections {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(width, 10, pdfText(p.Name), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(width, 8, pdfText("Initial equity: "+p.InitialEquity.String()), "", 1, "L", false, 0, "")
		pdf.Ln(4)

		rows = rows[:0]
		for _, y := range p.Years {
			rows = append(rows, []string{
				fmt.Sprint(y.Year),
				y.Nominal.SignedString(),
				y.Percentage.SignedString(),
				y.AnnualPercentage.SignedString(),
				y.Profit.SignedString(),
			})
		}
		pdfTable(pdf, []float64{0.1, 0.24, 0.22, 0.22, 0.22}, width,
			[]string{"Year", "Nominal Return", "Return", "Annual Return", "Profit"}, rows)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// pdfTable draws a table whose columns share width according to ratios. The
// first column is left aligned, the others right aligned.
func pdfTable(pdf *fpdf.Fpdf, ratios []float64, width float64, header []string, rows [][]string) {
	align := func(i int) string {
		if i == 0 {
			return "L"
		}
		return "R"
	}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(pdfHeaderColor, pdfHeaderColor, pdfHeaderColor)
	for i, h := range header {
		pdf.CellFormat(ratios[i]*width, pdfRowHeight+1, h, "1", 0, align(i), true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(ratios[i]*width, pdfRowHeight, pdfText(cell), "LR", 0, align(i), false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.CellFormat(width, 0, "", "T", 1, "", false, 0, "")
}
