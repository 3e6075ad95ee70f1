package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// scenarioPolicy grows the contribution every month and swaps in the recession
// rate for years inside [recessionStart, recessionEnd).
type scenarioPolicy struct {
	contribution   decimal.Decimal
	growthFactor   decimal.Decimal
	baseRate       decimal.Decimal
	recessionRate  decimal.Decimal
	recessionStart int
	recessionEnd   int
}

func newScenarioPolicy(in domain.ScenarioInput) *scenarioPolicy {
	return &scenarioPolicy{
		contribution:   in.MonthlyContribution,
		growthFactor:   one.Add(MonthlyRate(in.IncomeGrowthPercent)),
		baseRate:       MonthlyRate(in.AnnualRatePercent),
		recessionRate:  MonthlyRate(in.RecessionReturnPercent),
		recessionStart: in.RecessionStartYear,
		recessionEnd:   in.RecessionStartYear + in.RecessionDurationYears,
	}
}

func (p *scenarioPolicy) inRecession(year int) bool {
	return year >= p.recessionStart && year < p.recessionEnd
}

func (p *scenarioPolicy) Next(year int) (decimal.Decimal, decimal.Decimal) {
	p.contribution = p.contribution.Mul(p.growthFactor)
	if p.inRecession(year) {
		return p.contribution, p.recessionRate
	}
	return p.contribution, p.baseRate
}

func (p *scenarioPolicy) Name() string { return "scenario" }

// SimulateScenario projects growth under a recession window and rising contributions.
// The inflation rate is carried into the result but does not affect balances.
func SimulateScenario(in domain.ScenarioInput) domain.ScenarioResult {
	policy := newScenarioPolicy(in)
	series, l := stepYears(in.InitialPrincipal, in.HorizonYears, policy)

	var recessionYears []int
	for year := 1; year <= in.HorizonYears; year++ {
		if policy.inRecession(year) {
			recessionYears = append(recessionYears, year)
		}
	}

	return domain.ScenarioResult{
		Series:               series,
		FinalValue:           l.balance,
		FinalContribution:    policy.contribution,
		InflationRatePercent: in.InflationRatePercent,
		RecessionYears:       recessionYears,
	}
}
