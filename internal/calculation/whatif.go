package calculation

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// InputTransform rewrites a growth projection input to express a what-if.
type InputTransform interface {
	Name() string
	Description() string
	Validate(base domain.ProjectionInput) error
	Apply(base domain.ProjectionInput) domain.ProjectionInput
}

// ExtraContribution adds a fixed amount to the monthly contribution.
type ExtraContribution struct {
	WhatIf domain.WhatIf
}

func (e ExtraContribution) Name() string { return e.WhatIf.Name }

func (e ExtraContribution) Description() string {
	if e.WhatIf.Description != "" {
		return e.WhatIf.Description
	}
	return fmt.Sprintf("Invest an extra $%s per month", e.WhatIf.ExtraMonthly.StringFixed(0))
}

func (e ExtraContribution) Validate(domain.ProjectionInput) error {
	if e.WhatIf.ExtraMonthly.IsNegative() {
		return fmt.Errorf("what-if %q: extra monthly amount cannot be negative", e.WhatIf.Name)
	}
	return nil
}

func (e ExtraContribution) Apply(base domain.ProjectionInput) domain.ProjectionInput {
	base.MonthlyContribution = base.MonthlyContribution.Add(e.WhatIf.ExtraMonthly)
	return base
}

// DefaultWhatIfs returns the stock comparisons shown alongside a growth projection.
func DefaultWhatIfs() []domain.WhatIf {
	return []domain.WhatIf{
		{Name: "extra_100", Description: "Invest an extra $100 per month", ExtraMonthly: decimal.NewFromInt(100)},
		{Name: "skip_coffee", Description: "Skip the daily coffee ($128 per month)", ExtraMonthly: decimal.NewFromInt(128)},
		{Name: "skip_restaurant", Description: "Skip one restaurant meal a week ($200 per month)", ExtraMonthly: decimal.NewFromInt(200)},
	}
}

// EvaluateWhatIfs projects each what-if and reports the growth it adds over baseFinal.
func EvaluateWhatIfs(base domain.ProjectionInput, baseFinal decimal.Decimal, whatIfs []domain.WhatIf) ([]domain.WhatIfResult, error) {
	results := make([]domain.WhatIfResult, 0, len(whatIfs))
	for _, w := range whatIfs {
		t := ExtraContribution{WhatIf: w}
		if err := t.Validate(base); err != nil {
			return nil, err
		}
		_, summary := ProjectGrowth(t.Apply(base))
		w.Description = t.Description()
		results = append(results, domain.WhatIfResult{
			WhatIf:           w,
			FinalValue:       summary.FinalValue,
			AdditionalGrowth: summary.FinalValue.Sub(baseFinal),
		})
	}
	return results, nil
}
