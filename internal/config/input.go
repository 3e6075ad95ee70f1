package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidInput marks a plan whose values fail typed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSchema marks a plan document that does not match plan.schema.json.
	ErrSchema = errors.New("plan does not match schema")
)

// MaxHorizonYears bounds projection length.
const MaxHorizonYears = 100

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a plan document, checks it against the schema, fills
// defaults and validates the typed values.
func (ip *InputParser) Parse(data []byte) (*domain.PlanInput, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var plan domain.PlanInput
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	applyDefaults(&plan)

	if err := ip.ValidateConfiguration(&plan); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &plan, nil
}

// applyDefaults fills values a plan file may leave out.
func applyDefaults(plan *domain.PlanInput) {
	if plan.Growth != nil && plan.Growth.HorizonYears == 0 {
		plan.Growth.HorizonYears = domain.DefaultHorizonYears
	}
	if plan.Scenario != nil && plan.Scenario.HorizonYears == 0 {
		plan.Scenario.HorizonYears = domain.DefaultHorizonYears
	}
	if plan.Debt != nil && plan.Debt.LoanType == "" {
		plan.Debt.LoanType = domain.LoanMortgage
	}
}

// ValidateConfiguration validates a decoded plan. Every failure wraps ErrInvalidInput.
func (ip *InputParser) ValidateConfiguration(plan *domain.PlanInput) error {
	if plan == nil {
		return fmt.Errorf("%w: plan is required", ErrInvalidInput)
	}
	if plan.Growth == nil && plan.Debt == nil && plan.Scenario == nil {
		return fmt.Errorf("%w: plan needs at least one of growth, debt or scenario", ErrInvalidInput)
	}
	if plan.StartYear < 0 {
		return fmt.Errorf("%w: start year cannot be negative", ErrInvalidInput)
	}

	if plan.Growth != nil {
		if err := validateProjection(plan.Growth); err != nil {
			return fmt.Errorf("growth: %w", err)
		}
	}
	if plan.Debt != nil {
		if err := ip.validateDebt(plan.Debt); err != nil {
			return fmt.Errorf("debt: %w", err)
		}
	}
	if plan.Scenario != nil {
		if err := validateScenario(plan.Scenario); err != nil {
			return fmt.Errorf("scenario: %w", err)
		}
	}

	seen := make(map[string]bool, len(plan.WhatIfs))
	for i, w := range plan.WhatIfs {
		if w.Name == "" {
			return fmt.Errorf("%w: what-if %d: name is required", ErrInvalidInput, i)
		}
		if seen[w.Name] {
			return fmt.Errorf("%w: what-if %q is listed twice", ErrInvalidInput, w.Name)
		}
		seen[w.Name] = true
		if w.ExtraMonthly.IsNegative() {
			return fmt.Errorf("%w: what-if %q: extra monthly amount cannot be negative", ErrInvalidInput, w.Name)
		}
	}
	return nil
}

func validateProjection(in *domain.ProjectionInput) error {
	if in.InitialPrincipal.IsNegative() {
		return fmt.Errorf("%w: initial principal cannot be negative", ErrInvalidInput)
	}
	if in.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: monthly contribution cannot be negative", ErrInvalidInput)
	}
	if in.HorizonYears <= 0 || in.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("%w: horizon years must be between 1 and %d", ErrInvalidInput, MaxHorizonYears)
	}
	return nil
}

func (ip *InputParser) validateDebt(in *domain.DebtInput) error {
	lt, err := domain.ParseLoanType(string(in.LoanType))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	in.LoanType = lt

	if in.LoanBalance.IsNegative() {
		return fmt.Errorf("%w: loan balance cannot be negative", ErrInvalidInput)
	}
	if in.LoanAnnualRatePercent.IsNegative() {
		return fmt.Errorf("%w: loan rate cannot be negative", ErrInvalidInput)
	}
	if in.MonthlyPayment.IsNegative() {
		return fmt.Errorf("%w: monthly payment cannot be negative", ErrInvalidInput)
	}
	if in.ExtraMonthlyAmount.IsNegative() {
		return fmt.Errorf("%w: extra monthly amount cannot be negative", ErrInvalidInput)
	}
	return nil
}

func validateScenario(in *domain.ScenarioInput) error {
	if err := validateProjection(&in.ProjectionInput); err != nil {
		return err
	}
	if in.RecessionDurationYears < 0 {
		return fmt.Errorf("%w: recession duration cannot be negative", ErrInvalidInput)
	}
	if in.RecessionDurationYears > 0 && in.RecessionStartYear < 1 {
		return fmt.Errorf("%w: recession start year must be 1 or later", ErrInvalidInput)
	}
	if in.RecessionReturnPercent.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("%w: recession return cannot be below -100%%", ErrInvalidInput)
	}
	return nil
}

// CreateExampleConfiguration returns the default plan for the given start year.
// A zero year uses the current calendar year.
func (ip *InputParser) CreateExampleConfiguration(startYear int) *domain.PlanInput {
	plan := calculation.DefaultPlan()
	if startYear != 0 {
		plan.StartYear = startYear
	}
	if plan.StartYear == 0 {
		plan.StartYear = calculation.CurrentYear()
	}
	return &plan
}
