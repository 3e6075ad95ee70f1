package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/rpgo/investment-calculator/internal/domain"
	money "github.com/rpgo/investment-calculator/pkg/decimal"
)

// JSONFormatter serializes the plan result as pretty-printed JSON.
// Money amounts are written to the cent; inputs and shares are left as computed.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	return json.MarshalIndent(roundedResult(results), "", "  ")
}

func cents(d decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(d).Round().Decimal
}

func roundedSeries(s domain.ProjectionSeries) domain.ProjectionSeries {
	if s == nil {
		return nil
	}
	out := make(domain.ProjectionSeries, len(s))
	for i, p := range s {
		out[i] = domain.ProjectionPoint{YearIndex: p.YearIndex, Balance: cents(p.Balance)}
	}
	return out
}

func roundedSchedule(s domain.PayoffSchedule) domain.PayoffSchedule {
	s.TotalInterest = cents(s.TotalInterest)
	s.RemainingBalance = cents(s.RemainingBalance)
	return s
}

// roundedResult copies results with every money amount rounded to cents.
// The engine keeps full precision, so balances can run to hundreds of digits.
func roundedResult(results *domain.PlanResult) *domain.PlanResult {
	if results == nil {
		return nil
	}
	out := *results

	if g := results.Growth; g != nil {
		growth := *g
		growth.Series = roundedSeries(g.Series)
		growth.Summary = domain.ProjectionSummary{
			FinalValue:          cents(g.Summary.FinalValue),
			TotalContributed:    cents(g.Summary.TotalContributed),
			TotalInterestEarned: cents(g.Summary.TotalInterestEarned),
		}
		out.Growth = &growth
	}

	if d := results.Debt; d != nil {
		debt := *d
		debt.InterestSaved = cents(d.InterestSaved)
		debt.InvestmentGrowth = cents(d.InvestmentGrowth)
		debt.Baseline = roundedSchedule(d.Baseline)
		debt.Accelerated = roundedSchedule(d.Accelerated)
		debt.Recommendation.Advantage = cents(d.Recommendation.Advantage)
		out.Debt = &debt
	}

	if s := results.Scenario; s != nil {
		scenario := *s
		scenario.Series = roundedSeries(s.Series)
		scenario.FinalValue = cents(s.FinalValue)
		scenario.FinalContribution = cents(s.FinalContribution)
		out.Scenario = &scenario
	}

	if results.WhatIfs != nil {
		out.WhatIfs = make([]domain.WhatIfResult, len(results.WhatIfs))
		for i, w := range results.WhatIfs {
			w.FinalValue = cents(w.FinalValue)
			w.AdditionalGrowth = cents(w.AdditionalGrowth)
			out.WhatIfs[i] = w
		}
	}
	return &out
}
