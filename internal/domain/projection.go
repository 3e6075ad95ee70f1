package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionPoint is the balance at the end of one elapsed year (year 0 is the start).
type ProjectionPoint struct {
	YearIndex int             `json:"year_index"`
	Balance   decimal.Decimal `json:"balance"`
}

// ProjectionSeries is a chronological year-end balance series; index i has YearIndex i.
type ProjectionSeries []ProjectionPoint

// Final returns the last balance, or zero for an empty series.
func (s ProjectionSeries) Final() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1].Balance
}

// Balances returns the balances in order.
func (s ProjectionSeries) Balances() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s))
	for i, p := range s {
		out[i] = p.Balance
	}
	return out
}

// ProjectionSummary totals a growth projection.
// InitialPrincipal + TotalContributed + TotalInterestEarned equals FinalValue.
type ProjectionSummary struct {
	FinalValue          decimal.Decimal `json:"final_value"`
	TotalContributed    decimal.Decimal `json:"total_contributed"`
	TotalInterestEarned decimal.Decimal `json:"total_interest_earned"`
}

// Breakdown expresses the parts of a final value as fractions of it (0.25 = 25%).
type Breakdown struct {
	PrincipalShare    decimal.Decimal `json:"principal_share"`
	ContributionShare decimal.Decimal `json:"contribution_share"`
	InterestShare     decimal.Decimal `json:"interest_share"`
}

// GrowthResult is the growth tab output
type GrowthResult struct {
	Input     ProjectionInput   `json:"input"`
	Series    ProjectionSeries  `json:"series"`
	Summary   ProjectionSummary `json:"summary"`
	Breakdown Breakdown         `json:"breakdown"`
}

// PayoffSchedule is the outcome of amortizing one loan leg.
type PayoffSchedule struct {
	Months           int             `json:"months"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	// Amortizing is false when the payment never covered the monthly interest.
	Amortizing bool `json:"amortizing"`
}

// Recommendation choices for the debt comparison.
const (
	ChoiceInvest      = "invest"
	ChoicePayDownDebt = "pay_down_debt"
)

// DebtRecommendation summarizes which use of the extra cash comes out ahead.
type DebtRecommendation struct {
	Choice    string          `json:"choice"`
	Advantage decimal.Decimal `json:"advantage"`
	Rationale string          `json:"rationale"`
}

// DebtComparison compares prepaying a loan against investing the same extra cash.
type DebtComparison struct {
	LoanType                    LoanType           `json:"loan_type"`
	InvestmentAnnualRatePercent decimal.Decimal    `json:"investment_annual_rate_percent"`
	InterestSaved               decimal.Decimal    `json:"interest_saved"`
	InvestmentGrowth            decimal.Decimal    `json:"investment_growth"`
	DebtPayoffYearsSaved        decimal.Decimal    `json:"debt_payoff_years_saved"`
	Baseline                    PayoffSchedule     `json:"baseline"`
	Accelerated                 PayoffSchedule     `json:"accelerated"`
	Recommendation              DebtRecommendation `json:"recommendation"`
}

// ScenarioResult is the scenario tab output.
type ScenarioResult struct {
	Series               ProjectionSeries `json:"series"`
	FinalValue           decimal.Decimal  `json:"final_value"`
	FinalContribution    decimal.Decimal  `json:"final_contribution"`
	InflationRatePercent decimal.Decimal  `json:"inflation_rate_percent"`
	// RecessionYears lists the 1-based simulated years that used the recession rate.
	RecessionYears []int `json:"recession_years,omitempty"`
}

// WhatIfResult reports how much a what-if adds to the base growth projection.
type WhatIfResult struct {
	WhatIf           WhatIf          `json:"what_if"`
	FinalValue       decimal.Decimal `json:"final_value"`
	AdditionalGrowth decimal.Decimal `json:"additional_growth"`
}

// PlanResult holds every derived output of one calculation run.
type PlanResult struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	StartYear   int             `json:"start_year"`
	Growth      *GrowthResult   `json:"growth,omitempty"`
	Debt        *DebtComparison `json:"debt,omitempty"`
	Scenario    *ScenarioResult `json:"scenario,omitempty"`
	WhatIfs     []WhatIfResult  `json:"what_ifs,omitempty"`
	// Input is the plan the result was derived from.
	Input PlanInput `json:"input"`
}

// CalendarYear maps a year index to a calendar year.
func (r *PlanResult) CalendarYear(yearIndex int) int {
	return r.StartYear + yearIndex
}

// PlanState pairs an input with the result derived from it.
type PlanState struct {
	Input  PlanInput   `json:"input"`
	Result *PlanResult `json:"result"`
}
