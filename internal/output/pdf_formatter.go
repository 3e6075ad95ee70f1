package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/investment-calculator/internal/chart"
	"github.com/rpgo/investment-calculator/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
	pdfAxisWidth    = 18.0
	pdfChartHeight  = 60.0
)

// PDFFormatter renders an A4 report with bar charts drawn by fpdf.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetCreationDate(results.GeneratedAt)
	pdf.SetTitle("Investment Plan Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 10, "Investment Plan Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(pdfContentWidth, 5, fmt.Sprintf("Run %s - start year %d", results.RunID, results.StartYear), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if g := results.Growth; g != nil {
		pdfHeading(pdf, "Compound Growth")
		pdfBarChart(pdf, chart.NewLayout(g.Series, results.StartYear))
		pdfRows(pdf, [][2]string{
			{"Final Value", FormatCurrency(g.Summary.FinalValue)},
			{"Total Contributed", FormatCurrency(g.Summary.TotalContributed)},
			{"Interest Earned", FormatCurrency(g.Summary.TotalInterestEarned)},
		})
	}
	if len(results.WhatIfs) > 0 {
		pdfHeading(pdf, "What-If Comparisons")
		rows := make([][2]string, len(results.WhatIfs))
		for i, w := range results.WhatIfs {
			rows[i] = [2]string{w.WhatIf.Description, FormatSignedCurrency(w.AdditionalGrowth)}
		}
		pdfRows(pdf, rows)
	}
	if d := results.Debt; d != nil {
		pdfHeading(pdf, "Debt vs Invest: "+d.LoanType.Label())
		pdfRows(pdf, [][2]string{
			{"Months to payoff", fmt.Sprintf("%d -> %d", d.Baseline.Months, d.Accelerated.Months)},
			{"Payoff date", payoffMonth(results, d.Baseline.Months) + " -> " + payoffMonth(results, d.Accelerated.Months)},
			{"Interest Saved", FormatCurrency(d.InterestSaved)},
			{"Investment Growth", FormatCurrency(d.InvestmentGrowth)},
			{"Recommendation", choiceLabel(d.Recommendation.Choice)},
		})
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(pdfContentWidth, 4.5, d.Recommendation.Rationale, "", "L", false)
		pdf.Ln(3)
	}
	if s := results.Scenario; s != nil {
		pdfHeading(pdf, "Economic Scenario")
		pdfBarChart(pdf, chart.NewLayout(s.Series, results.StartYear))
		pdfRows(pdf, [][2]string{
			{"Final Value", FormatCurrency(s.FinalValue)},
			{"Final Monthly Contribution", FormatCurrency(s.FinalContribution)},
			{"Inflation (not applied)", FormatPercentage(s.InflationRatePercent)},
		})
	}

	pdfHeading(pdf, "Key Assumptions")
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(pdfContentWidth, 4.5, "- "+strings.Join(GenerateAssumptions(results), "\n- "), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 7, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(0, 51, 102)
	pdf.Line(pdfMarginLeft, pdf.GetY(), pdfMarginLeft+pdfContentWidth, pdf.GetY())
	pdf.Ln(2)
	pdf.SetTextColor(0, 0, 0)
}

func pdfRows(pdf *fpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Arial", "", 10)
	for i, r := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 247, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.CellFormat(pdfContentWidth*0.6, 6, r[0], "", 0, "L", true, 0, "")
		pdf.CellFormat(pdfContentWidth*0.4, 6, r[1], "", 1, "R", true, 0, "")
	}
	pdf.Ln(2)
}

// pdfBarChart scales a chart layout (100x100 viewbox) onto the page below the cursor.
func pdfBarChart(pdf *fpdf.Fpdf, l chart.Layout) {
	if l.NoData {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(pdfContentWidth, 10, l.Message, "", 1, "C", false, 0, "")
		return
	}
	if pdf.GetY()+pdfChartHeight+10 > 297-pdfMarginBottom {
		pdf.AddPage()
	}

	left := pdfMarginLeft + pdfAxisWidth
	top := pdf.GetY() + 2
	width := pdfContentWidth - pdfAxisWidth
	sx := width / chart.ViewBoxWidth
	sy := pdfChartHeight / chart.ViewBoxHeight

	pdf.SetFont("Arial", "", 7)
	pdf.SetDrawColor(224, 224, 224)
	pdf.SetTextColor(90, 90, 90)
	for _, t := range l.Ticks {
		if t.Y < 0 || t.Y > chart.ViewBoxHeight {
			continue
		}
		y := top + t.Y*sy
		pdf.Line(left, y, left+width, y)
		pdf.SetXY(pdfMarginLeft, y-2)
		pdf.CellFormat(pdfAxisWidth-1, 4, t.Label, "", 0, "R", false, 0, "")
	}

	pdf.SetFillColor(74, 111, 165)
	for _, b := range l.Bars {
		if b.Height <= 0 {
			continue
		}
		pdf.Rect(left+b.X*sx, top+b.Y*sy, b.Width*sx, b.Height*sy, "F")
	}

	for _, lbl := range l.XAxisLabels() {
		x := left + lbl.Percent/100*width
		pdf.SetXY(x-8, top+pdfChartHeight+1)
		pdf.CellFormat(16, 4, intToString(lbl.Year), "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(pdfMarginLeft, top+pdfChartHeight+7)
}
