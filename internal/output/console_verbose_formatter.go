package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED INVESTMENT PLAN ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "Run ID: %s\n", results.RunID)
	fmt.Fprintf(&buf, "Start Year: %d\n", results.StartYear)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if g := results.Growth; g != nil {
		writeGrowthSection(&buf, results, g)
	}
	if len(results.WhatIfs) > 0 {
		writeWhatIfSection(&buf, results.WhatIfs)
	}
	if d := results.Debt; d != nil {
		writeDebtSection(&buf, results, d)
	}
	if s := results.Scenario; s != nil {
		writeScenarioSection(&buf, results, s)
	}

	h := AnalyzePlan(results)
	fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
	fmt.Fprintln(&buf, "=========================")
	if results.Growth != nil {
		fmt.Fprintf(&buf, "Projected value: %s (%s from interest)\n", FormatCurrency(h.GrowthFinal), FormatCurrency(h.GrowthInterest))
	}
	if h.BestWhatIf != nil {
		fmt.Fprintf(&buf, "Biggest what-if: %s (%s)\n", h.BestWhatIf.WhatIf.Description, FormatSignedCurrency(h.BestWhatIf.AdditionalGrowth))
	}
	if h.DebtChoice != "" {
		fmt.Fprintf(&buf, "Debt strategy: %s\n", h.DebtChoice)
	}
	if h.HasScenarioDelta {
		fmt.Fprintf(&buf, "Scenario vs plain growth: %s\n", FormatCurrency(h.ScenarioDelta))
	}

	return buf.Bytes(), nil
}

func writeGrowthSection(buf *bytes.Buffer, results *domain.PlanResult, g *domain.GrowthResult) {
	fmt.Fprintln(buf, "COMPOUND GROWTH PROJECTION")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Initial Principal:      %s\n", FormatCurrency(g.Input.InitialPrincipal))
	fmt.Fprintf(buf, "  Monthly Contribution:   %s\n", FormatCurrency(g.Input.MonthlyContribution))
	fmt.Fprintf(buf, "  Annual Return:          %s\n", FormatPercentage(g.Input.AnnualRatePercent))
	fmt.Fprintf(buf, "  Horizon:                %d years\n", g.Input.HorizonYears)
	fmt.Fprintln(buf)
	writeSeriesTable(buf, results, g.Series)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "SUMMARY:")
	fmt.Fprintf(buf, "  Final Value:            %s\n", FormatCurrency(g.Summary.FinalValue))
	fmt.Fprintf(buf, "  Total Contributed:      %s\n", FormatCurrency(g.Summary.TotalContributed))
	fmt.Fprintf(buf, "  Interest Earned:        %s\n", FormatCurrency(g.Summary.TotalInterestEarned))
	fmt.Fprintln(buf, "BREAKDOWN:")
	fmt.Fprintf(buf, "  Principal:              %s\n", FormatShare(g.Breakdown.PrincipalShare))
	fmt.Fprintf(buf, "  Contributions:          %s\n", FormatShare(g.Breakdown.ContributionShare))
	fmt.Fprintf(buf, "  Interest:               %s\n", FormatShare(g.Breakdown.InterestShare))
	fmt.Fprintln(buf)
}

func writeSeriesTable(buf *bytes.Buffer, results *domain.PlanResult, series domain.ProjectionSeries) {
	fmt.Fprintf(buf, "  %-6s %-6s %18s\n", "YEAR", "DATE", "BALANCE")
	fmt.Fprintln(buf, "  "+strings.Repeat("-", 32))
	for _, p := range series {
		fmt.Fprintf(buf, "  %-6d %-6d %18s\n", p.YearIndex, results.CalendarYear(p.YearIndex), FormatCurrency(p.Balance))
	}
}

func writeWhatIfSection(buf *bytes.Buffer, whatIfs []domain.WhatIfResult) {
	fmt.Fprintln(buf, "WHAT-IF COMPARISONS")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	for _, w := range whatIfs {
		fmt.Fprintf(buf, "  %-50s %s (final %s)\n", w.WhatIf.Description, FormatSignedCurrency(w.AdditionalGrowth), FormatCurrency(w.FinalValue))
	}
	fmt.Fprintln(buf)
}

func writeDebtSection(buf *bytes.Buffer, results *domain.PlanResult, d *domain.DebtComparison) {
	fmt.Fprintf(buf, "DEBT VS INVEST: %s\n", strings.ToUpper(d.LoanType.Label()))
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", "", "BASELINE", "ACCELERATED", "DIFFERENCE")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	cmpLine(buf, "Total Interest", d.Baseline.TotalInterest, d.Accelerated.TotalInterest)
	fmt.Fprintf(buf, "%-35s %15d %15d %15d\n", "Months to Payoff", d.Baseline.Months, d.Accelerated.Months, d.Accelerated.Months-d.Baseline.Months)
	if !d.Baseline.Amortizing {
		fmt.Fprintln(buf, "  Note: the regular payment does not cover the monthly interest, so no baseline interest is counted")
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  Interest Saved:         %s\n", FormatCurrency(d.InterestSaved))
	fmt.Fprintf(buf, "  Years Saved:            %s (%s)\n", d.DebtPayoffYearsSaved.StringFixed(1), formatSpan(d.Baseline.Months-d.Accelerated.Months))
	fmt.Fprintf(buf, "  Payoff Date:            %s -> %s\n", payoffMonth(results, d.Baseline.Months), payoffMonth(results, d.Accelerated.Months))
	fmt.Fprintf(buf, "  Investment Growth:      %s (at %s)\n", FormatCurrency(d.InvestmentGrowth), FormatPercentage(d.InvestmentAnnualRatePercent))
	fmt.Fprintf(buf, "  Recommendation:         %s\n", choiceLabel(d.Recommendation.Choice))
	fmt.Fprintf(buf, "  %s\n", d.Recommendation.Rationale)
	fmt.Fprintln(buf)
}

func writeScenarioSection(buf *bytes.Buffer, results *domain.PlanResult, s *domain.ScenarioResult) {
	fmt.Fprintln(buf, "ECONOMIC SCENARIO")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	if len(s.RecessionYears) > 0 {
		years := make([]string, len(s.RecessionYears))
		for i, y := range s.RecessionYears {
			years[i] = intToString(results.CalendarYear(y))
		}
		fmt.Fprintf(buf, "  Recession Years:        %s\n", strings.Join(years, ", "))
	} else {
		fmt.Fprintln(buf, "  Recession Years:        none")
	}
	fmt.Fprintf(buf, "  Final Value:            %s\n", FormatCurrency(s.FinalValue))
	fmt.Fprintf(buf, "  Final Contribution:     %s / month\n", FormatCurrency(s.FinalContribution))
	fmt.Fprintf(buf, "  Inflation (reference):  %s\n", FormatPercentage(s.InflationRatePercent))
	fmt.Fprintln(buf)
	writeSeriesTable(buf, results, s.Series)
	fmt.Fprintln(buf)
}

func cmpLine(buf *bytes.Buffer, label string, baseline, accelerated decimal.Decimal) {
	diff := accelerated.Sub(baseline)
	fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", label, FormatCurrency(baseline), FormatCurrency(accelerated), FormatCurrency(diff))
}

func payoffMonth(results *domain.PlanResult, months int) string {
	return dateutil.FormatMonth(dateutil.PayoffMonth(results.StartYear, months))
}

// formatSpan renders a month count as "11 years 7 months".
func formatSpan(months int) string {
	y, m := dateutil.YearsAndMonths(months)
	return fmt.Sprintf("%d years %d months", y, m)
}
