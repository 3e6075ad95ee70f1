package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// Tab names used for logging and metrics.
const (
	TabGrowth   = "growth"
	TabDebt     = "debt"
	TabScenario = "scenario"
	TabWhatIf   = "what_if"
)

// Recorder observes how long each tab took to compute.
type Recorder interface {
	ObserveCalculation(tab string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCalculation(string, time.Duration) {}

// CalculationEngine orchestrates all plan calculations
type CalculationEngine struct {
	Logger   Logger
	Recorder Recorder
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger:   NopLogger{},
		Recorder: nopRecorder{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetRecorder sets the timing recorder. If nil is provided, timings are discarded.
func (ce *CalculationEngine) SetRecorder(r Recorder) {
	if r == nil {
		ce.Recorder = nopRecorder{}
		return
	}
	ce.Recorder = r
}

func (ce *CalculationEngine) timed(tab string, fn func()) {
	start := time.Now()
	fn()
	ce.Recorder.ObserveCalculation(tab, time.Since(start))
}

// Evaluate derives every tab present in the plan. Tabs are computed in order
// (growth, what-ifs, debt, scenario) and the context is checked between them.
func (ce *CalculationEngine) Evaluate(ctx context.Context, in domain.PlanInput) (*domain.PlanResult, error) {
	plan := in.Clone()
	if plan.StartYear == 0 {
		plan.StartYear = CurrentYear()
	}

	result := &domain.PlanResult{
		RunID:       uuid.NewString(),
		GeneratedAt: nowFunc(),
		StartYear:   plan.StartYear,
		Input:       plan,
	}
	ce.Logger.Debugf("run %s: evaluating plan starting %d", result.RunID, plan.StartYear)

	if plan.Growth != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("growth projection cancelled: %w", err)
		}
		growth := ce.runGrowth(*plan.Growth)
		result.Growth = &growth

		whatIfs := plan.WhatIfs
		if whatIfs == nil {
			whatIfs = DefaultWhatIfs()
		}
		var err error
		ce.timed(TabWhatIf, func() {
			result.WhatIfs, err = EvaluateWhatIfs(*plan.Growth, growth.Summary.FinalValue, whatIfs)
		})
		if err != nil {
			return nil, fmt.Errorf("what-if comparison failed: %w", err)
		}
	}

	if plan.Debt != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("debt comparison cancelled: %w", err)
		}
		debt := *plan.Debt
		if debt.InvestmentAnnualRatePercent == nil && plan.Growth != nil {
			rate := plan.Growth.AnnualRatePercent
			debt.InvestmentAnnualRatePercent = &rate
		}
		comparison := ce.runDebt(debt)
		result.Debt = &comparison
	}

	if plan.Scenario != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario simulation cancelled: %w", err)
		}
		scenario := ce.runScenario(*plan.Scenario)
		result.Scenario = &scenario
	}

	return result, nil
}

func (ce *CalculationEngine) runGrowth(in domain.ProjectionInput) domain.GrowthResult {
	var out domain.GrowthResult
	ce.timed(TabGrowth, func() {
		series, summary := ProjectGrowth(in)
		out = domain.GrowthResult{
			Input:     in,
			Series:    series,
			Summary:   summary,
			Breakdown: SummarizeBreakdown(in.InitialPrincipal, summary),
		}
	})
	ce.Logger.Debugf("growth: %d years, final=%s contributed=%s interest=%s",
		in.HorizonYears, out.Summary.FinalValue.StringFixed(2), out.Summary.TotalContributed.StringFixed(2), out.Summary.TotalInterestEarned.StringFixed(2))
	return out
}

func (ce *CalculationEngine) runDebt(in domain.DebtInput) domain.DebtComparison {
	var out domain.DebtComparison
	ce.timed(TabDebt, func() {
		out = CompareDebtVsInvest(in)
	})
	if !out.Baseline.Amortizing {
		ce.Logger.Warnf("debt: monthly payment %s does not cover interest; assuming a %d month term",
			in.MonthlyPayment.StringFixed(2), MaxLoanMonths)
	}
	ce.Logger.Debugf("debt: baseline %d months, accelerated %d months, interest saved=%s, investment growth=%s",
		out.Baseline.Months, out.Accelerated.Months, out.InterestSaved.StringFixed(2), out.InvestmentGrowth.StringFixed(2))
	return out
}

func (ce *CalculationEngine) runScenario(in domain.ScenarioInput) domain.ScenarioResult {
	var out domain.ScenarioResult
	ce.timed(TabScenario, func() {
		out = SimulateScenario(in)
	})
	if !in.InflationRatePercent.IsZero() {
		ce.Logger.Warnf("scenario: inflation rate %s%% is reported but not applied to balances", in.InflationRatePercent.String())
	}
	ce.Logger.Debugf("scenario: %d recession years, final=%s", len(out.RecessionYears), out.FinalValue.StringFixed(2))
	return out
}
