package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultHorizonYears is the projection length used when a plan omits one.
const DefaultHorizonYears = 32

// LoanType labels the kind of debt being compared. It does not change the math.
type LoanType string

const (
	LoanMortgage   LoanType = "mortgage"
	LoanAuto       LoanType = "auto"
	LoanStudent    LoanType = "student"
	LoanCreditCard LoanType = "credit_card"
	LoanPersonal   LoanType = "personal"
)

// LoanTypes lists every supported loan type in display order.
var LoanTypes = []LoanType{LoanMortgage, LoanAuto, LoanStudent, LoanCreditCard, LoanPersonal}

// ParseLoanType resolves a user supplied label (case-insensitive, "-" or "_").
func ParseLoanType(s string) (LoanType, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, lt := range LoanTypes {
		if string(lt) == norm {
			return lt, nil
		}
	}
	return "", fmt.Errorf("unknown loan type %q", s)
}

// Label returns the human readable loan type.
func (lt LoanType) Label() string {
	switch lt {
	case LoanMortgage:
		return "Mortgage"
	case LoanAuto:
		return "Auto Loan"
	case LoanStudent:
		return "Student Loan"
	case LoanCreditCard:
		return "Credit Card"
	case LoanPersonal:
		return "Personal Loan"
	default:
		return string(lt)
	}
}

// ProjectionInput holds the compound growth parameters
type ProjectionInput struct {
	InitialPrincipal    decimal.Decimal `yaml:"initial_principal" json:"initial_principal"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	// AnnualRatePercent is a percentage (9 means 9%); negative values are allowed.
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	HorizonYears      int             `yaml:"horizon_years" json:"horizon_years"`
}

// ScenarioInput extends a growth projection with simple economic conditions.
type ScenarioInput struct {
	ProjectionInput `yaml:",inline"`

	RecessionReturnPercent decimal.Decimal `yaml:"recession_return_percent" json:"recession_return_percent"`
	RecessionStartYear     int             `yaml:"recession_start_year" json:"recession_start_year"`
	RecessionDurationYears int             `yaml:"recession_duration_years" json:"recession_duration_years"`
	IncomeGrowthPercent    decimal.Decimal `yaml:"income_growth_percent" json:"income_growth_percent"`
	// InflationRatePercent is reported back but never applied to balances.
	InflationRatePercent decimal.Decimal `yaml:"inflation_rate_percent" json:"inflation_rate_percent"`
}

// DebtInput describes a loan and the extra monthly cash that could go to it or to investments.
type DebtInput struct {
	LoanType              LoanType        `yaml:"loan_type" json:"loan_type"`
	LoanBalance           decimal.Decimal `yaml:"loan_balance" json:"loan_balance"`
	LoanAnnualRatePercent decimal.Decimal `yaml:"loan_annual_rate_percent" json:"loan_annual_rate_percent"`
	MonthlyPayment        decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
	ExtraMonthlyAmount    decimal.Decimal `yaml:"extra_monthly_amount" json:"extra_monthly_amount"`
	// InvestmentAnnualRatePercent defaults to the growth rate when nil.
	InvestmentAnnualRatePercent *decimal.Decimal `yaml:"investment_annual_rate_percent,omitempty" json:"investment_annual_rate_percent,omitempty"`
}

// LoanState is the balance of a loan while it is being amortized month by month.
type LoanState struct {
	Balance           decimal.Decimal `json:"balance"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
}

// WhatIf is a named extra monthly contribution compared against the base growth projection.
type WhatIf struct {
	Name         string          `yaml:"name" json:"name"`
	Description  string          `yaml:"description" json:"description"`
	ExtraMonthly decimal.Decimal `yaml:"extra_monthly" json:"extra_monthly"`
}

// PlanInput is the complete, immutable set of inputs for one calculation run.
// A nil tab is skipped.
type PlanInput struct {
	StartYear int              `yaml:"start_year,omitempty" json:"start_year,omitempty"`
	Growth    *ProjectionInput `yaml:"growth,omitempty" json:"growth,omitempty"`
	Debt      *DebtInput       `yaml:"debt,omitempty" json:"debt,omitempty"`
	Scenario  *ScenarioInput   `yaml:"scenario,omitempty" json:"scenario,omitempty"`
	WhatIfs   []WhatIf         `yaml:"what_ifs,omitempty" json:"what_ifs,omitempty"`
}

// Clone returns a deep copy so updates never alias the original plan.
func (p PlanInput) Clone() PlanInput {
	out := PlanInput{StartYear: p.StartYear}
	if p.Growth != nil {
		g := *p.Growth
		out.Growth = &g
	}
	if p.Debt != nil {
		d := *p.Debt
		if p.Debt.InvestmentAnnualRatePercent != nil {
			r := *p.Debt.InvestmentAnnualRatePercent
			d.InvestmentAnnualRatePercent = &r
		}
		out.Debt = &d
	}
	if p.Scenario != nil {
		s := *p.Scenario
		out.Scenario = &s
	}
	// An empty list disables what-ifs while nil selects the defaults.
	if p.WhatIfs != nil {
		out.WhatIfs = append(make([]WhatIf, 0, len(p.WhatIfs)), p.WhatIfs...)
	}
	return out
}
