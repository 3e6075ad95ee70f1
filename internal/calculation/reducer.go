package calculation

import (
	"context"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Update edits a plan. It always receives a private copy, never the caller's input.
type Update func(*domain.PlanInput)

// Reduce applies updates to the previous plan and recomputes every tab.
// The previous state is left untouched; a nil state starts from an empty plan.
func (ce *CalculationEngine) Reduce(ctx context.Context, prev *domain.PlanState, updates ...Update) (*domain.PlanState, error) {
	var next domain.PlanInput
	if prev != nil {
		next = prev.Input.Clone()
	}
	for _, u := range updates {
		if u != nil {
			u(&next)
		}
	}
	result, err := ce.Evaluate(ctx, next)
	if err != nil {
		return nil, err
	}
	return &domain.PlanState{Input: next, Result: result}, nil
}

// WithStartYear pins the calendar year of year index 0.
func WithStartYear(year int) Update {
	return func(p *domain.PlanInput) { p.StartYear = year }
}

// WithGrowth edits the growth tab, creating it from defaults when absent.
func WithGrowth(fn func(*domain.ProjectionInput)) Update {
	return func(p *domain.PlanInput) {
		if p.Growth == nil {
			g := DefaultProjectionInput()
			p.Growth = &g
		}
		fn(p.Growth)
	}
}

// WithDebt edits the debt tab, creating it from defaults when absent.
func WithDebt(fn func(*domain.DebtInput)) Update {
	return func(p *domain.PlanInput) {
		if p.Debt == nil {
			d := DefaultDebtInput()
			p.Debt = &d
		}
		fn(p.Debt)
	}
}

// WithScenario edits the scenario tab, creating it from defaults when absent.
func WithScenario(fn func(*domain.ScenarioInput)) Update {
	return func(p *domain.PlanInput) {
		if p.Scenario == nil {
			s := DefaultScenarioInput()
			p.Scenario = &s
		}
		fn(p.Scenario)
	}
}

// WithWhatIfs replaces the what-if list. An empty, non-nil list disables what-ifs.
func WithWhatIfs(whatIfs []domain.WhatIf) Update {
	return func(p *domain.PlanInput) {
		p.WhatIfs = append([]domain.WhatIf{}, whatIfs...)
	}
}

// DefaultProjectionInput is the growth tab a new plan starts with.
func DefaultProjectionInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		InitialPrincipal:    decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(200),
		AnnualRatePercent:   decimal.NewFromInt(9),
		HorizonYears:        domain.DefaultHorizonYears,
	}
}

// DefaultDebtInput is the debt tab a new plan starts with. The investment rate
// is left unset so it follows the growth tab.
func DefaultDebtInput() domain.DebtInput {
	return domain.DebtInput{
		LoanType:              domain.LoanMortgage,
		LoanBalance:           decimal.NewFromInt(200000),
		LoanAnnualRatePercent: decimal.NewFromInt(6),
		MonthlyPayment:        decimal.NewFromInt(1200),
		ExtraMonthlyAmount:    decimal.NewFromInt(300),
	}
}

// DefaultScenarioInput is the scenario tab a new plan starts with.
func DefaultScenarioInput() domain.ScenarioInput {
	return domain.ScenarioInput{
		ProjectionInput:        DefaultProjectionInput(),
		RecessionReturnPercent: decimal.NewFromInt(-15),
		RecessionStartYear:     10,
		RecessionDurationYears: 2,
		IncomeGrowthPercent:    decimal.Zero,
		InflationRatePercent:   decimal.NewFromInt(3),
	}
}

// DefaultPlan returns a plan with every tab populated with defaults.
func DefaultPlan() domain.PlanInput {
	g := DefaultProjectionInput()
	d := DefaultDebtInput()
	s := DefaultScenarioInput()
	return domain.PlanInput{Growth: &g, Debt: &d, Scenario: &s, WhatIfs: DefaultWhatIfs()}
}
