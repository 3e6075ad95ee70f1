package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rpgo/investment-calculator/internal/chart"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with inline SVG bar charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"whole":  FormatWhole,
	"signed": FormatSignedCurrency,
	"pct":    FormatPercentage,
	"share":  FormatShare,
	"num":    func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"label":  chartLabel,
}).Parse(htmlTemplateSource))

// chartView is one chart as the template renders it.
type chartView struct {
	Title   string
	Layout  chart.Layout
	XLabels []chart.AxisLabel
}

func newChartView(title string, series domain.ProjectionSeries, startYear int) chartView {
	l := chart.NewLayout(series, startYear)
	return chartView{Title: title, Layout: l, XLabels: l.XAxisLabels()}
}

// chartLabel is the hover text for bar i.
func chartLabel(l chart.Layout, i int) string {
	tip, ok := l.Tooltip(i)
	if !ok {
		return ""
	}
	return tip.Label
}

func (h HTMLFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var charts []chartView
	if results.Growth != nil {
		charts = append(charts, newChartView("Compound Growth", results.Growth.Series, results.StartYear))
	}
	if results.Scenario != nil {
		charts = append(charts, newChartView("Economic Scenario", results.Scenario.Series, results.StartYear))
	}

	data := struct {
		*domain.PlanResult
		Highlights  Highlights
		Assumptions []string
		Charts      []chartView
	}{results, AnalyzePlan(results), GenerateAssumptions(results), charts}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
