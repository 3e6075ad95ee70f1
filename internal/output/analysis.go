package output

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Highlights collects the headline numbers shared by the console, HTML and PDF reports.
type Highlights struct {
	GrowthFinal    decimal.Decimal
	GrowthInterest decimal.Decimal
	// BestWhatIf is the what-if adding the most growth; nil when none ran.
	BestWhatIf *domain.WhatIfResult
	DebtChoice string
	// ScenarioDelta is the scenario final value minus the growth final value.
	ScenarioDelta    decimal.Decimal
	HasScenarioDelta bool
}

// AnalyzePlan derives report highlights from a plan result.
func AnalyzePlan(results *domain.PlanResult) Highlights {
	var h Highlights
	if results == nil {
		return h
	}
	if results.Growth != nil {
		h.GrowthFinal = results.Growth.Summary.FinalValue
		h.GrowthInterest = results.Growth.Summary.TotalInterestEarned
	}
	for i := range results.WhatIfs {
		w := &results.WhatIfs[i]
		if h.BestWhatIf == nil || w.AdditionalGrowth.GreaterThan(h.BestWhatIf.AdditionalGrowth) {
			h.BestWhatIf = w
		}
	}
	if results.Debt != nil {
		h.DebtChoice = choiceLabel(results.Debt.Recommendation.Choice)
	}
	if results.Growth != nil && results.Scenario != nil {
		h.ScenarioDelta = results.Scenario.FinalValue.Sub(results.Growth.Summary.FinalValue)
		h.HasScenarioDelta = true
	}
	return h
}

func choiceLabel(choice string) string {
	switch choice {
	case domain.ChoiceInvest:
		return "Invest the extra cash"
	case domain.ChoicePayDownDebt:
		return "Pay down the debt"
	default:
		return choice
	}
}
