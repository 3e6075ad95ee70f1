package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter flattens every tab into Section,Item,Year,Value rows.
// Year is empty for values that are not tied to a projection year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{{"Section", "Item", "Year", "Value"}}
	add := func(section, item, year, value string) {
		rows = append(rows, []string{section, item, year, value})
	}
	money := func(section, item string, v decimal.Decimal) { add(section, item, "", v.StringFixed(2)) }

	if g := results.Growth; g != nil {
		for _, p := range g.Series {
			add("growth", "balance", intToString(results.CalendarYear(p.YearIndex)), p.Balance.StringFixed(2))
		}
		money("growth", "final_value", g.Summary.FinalValue)
		money("growth", "total_contributed", g.Summary.TotalContributed)
		money("growth", "total_interest_earned", g.Summary.TotalInterestEarned)
		add("growth", "principal_share", "", g.Breakdown.PrincipalShare.StringFixed(4))
		add("growth", "contribution_share", "", g.Breakdown.ContributionShare.StringFixed(4))
		add("growth", "interest_share", "", g.Breakdown.InterestShare.StringFixed(4))
	}
	for _, wi := range results.WhatIfs {
		money("what_if", wi.WhatIf.Name+"_final_value", wi.FinalValue)
		money("what_if", wi.WhatIf.Name+"_additional_growth", wi.AdditionalGrowth)
	}
	if d := results.Debt; d != nil {
		add("debt", "loan_type", "", string(d.LoanType))
		add("debt", "baseline_months", "", intToString(d.Baseline.Months))
		add("debt", "accelerated_months", "", intToString(d.Accelerated.Months))
		add("debt", "baseline_amortizing", "", boolToString(d.Baseline.Amortizing))
		money("debt", "baseline_interest", d.Baseline.TotalInterest)
		money("debt", "accelerated_interest", d.Accelerated.TotalInterest)
		money("debt", "interest_saved", d.InterestSaved)
		money("debt", "investment_growth", d.InvestmentGrowth)
		add("debt", "years_saved", "", d.DebtPayoffYearsSaved.StringFixed(2))
		add("debt", "recommendation", "", d.Recommendation.Choice)
	}
	if s := results.Scenario; s != nil {
		for _, p := range s.Series {
			add("scenario", "balance", intToString(results.CalendarYear(p.YearIndex)), p.Balance.StringFixed(2))
		}
		money("scenario", "final_value", s.FinalValue)
		money("scenario", "final_contribution", s.FinalContribution)
		add("scenario", "inflation_rate_percent", "", s.InflationRatePercent.String())
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
