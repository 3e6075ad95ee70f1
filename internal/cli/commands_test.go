package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
)

const testPlan = `start_year: 2025
growth:
  initial_principal: 10000
  monthly_contribution: 200
  annual_rate_percent: 9
  horizon_years: 32
debt:
  loan_type: mortgage
  loan_balance: 200000
  loan_annual_rate_percent: 6
  monthly_payment: 1200
  extra_monthly_amount: 300
scenario:
  initial_principal: 10000
  monthly_contribution: 200
  annual_rate_percent: 9
  recession_return_percent: -15
  recession_start_year: 10
  recession_duration_years: 2
  inflation_rate_percent: 3
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGrowthCommand(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "defaults",
			args: []string{"growth", "-f", "console-lite"},
			want: []string{"Growth: Final=$622,866.33 Contributed=$76,800.00", "skip_coffee", "skip_restaurant"},
		},
		{
			name:    "no what-ifs",
			args:    []string{"growth", "-f", "console-lite", "--no-what-ifs"},
			want:    []string{"Growth: Final=$622,866.33"},
			notWant: []string{"skip_coffee"},
		},
		{
			name:    "custom what-if",
			args:    []string{"growth", "-f", "console-lite", "--what-if", "side_gig=250"},
			want:    []string{"side_gig: +$"},
			notWant: []string{"extra_100"},
		},
		{
			name: "zero rate keeps contributions",
			args: []string{"growth", "-f", "console-lite", "--rate", "0", "--contribution", "0", "--principal", "1500.50", "--years", "5", "--no-what-ifs"},
			want: []string{"Final=$1,500.50", "Years=5"},
		},
		{
			name: "verbose report uses start year",
			args: []string{"growth", "--start-year", "2030"},
			want: []string{"COMPOUND GROWTH PROJECTION", "Start Year: 2030", "2062"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestGrowthCommand_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		args    []string
		errMsg  string
		invalid bool
	}{
		{"non numeric principal", []string{"growth", "--principal", "lots"}, "not a number", false},
		{"zero horizon", []string{"growth", "--years", "0"}, "horizon years", true},
		{"negative contribution", []string{"growth", "--contribution=-1"}, "monthly contribution", true},
		{"malformed what-if", []string{"growth", "--what-if", "side_gig"}, "expected name=amount", false},
		{"non numeric what-if", []string{"growth", "--what-if", "side_gig=abc"}, "not a number", false},
		{"negative what-if", []string{"growth", "--what-if", "side_gig=-5"}, "cannot be negative", true},
		{"exclusive what-if flags", []string{"growth", "--what-if", "a=1", "--no-what-ifs"}, "none of the others", false},
		{"positional argument", []string{"growth", "extra"}, "unknown command", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Equal(t, tt.invalid, errors.Is(err, config.ErrInvalidInput))
		})
	}
}

func TestDebtCommand(t *testing.T) {
	clearEnv(t)

	out, err := executeCommand(t, "debt", "-f", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Debt (Mortgage):")
	assert.Contains(t, out, "Months=360->221")
	assert.Contains(t, out, "InterestSaved=$100,689.29")
	assert.Contains(t, out, "InvestmentGrowth=$553,342.22")
	assert.Contains(t, out, "Recommended: Invest the extra cash")
	assert.NotContains(t, out, "Growth:")

	out, err = executeCommand(t, "debt", "-f", "console-lite", "--loan-type", "Credit-Card",
		"--balance", "8000", "--loan-rate", "22.5", "--payment", "250", "--extra", "100", "--investment-rate", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Debt (Credit Card):")
	assert.NotContains(t, out, "Months=360")
}

func TestDebtCommand_Errors(t *testing.T) {
	clearEnv(t)

	_, err := executeCommand(t, "debt", "--loan-type", "boat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown loan type")

	_, err = executeCommand(t, "debt", "--balance=-100")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidInput))
	assert.Contains(t, err.Error(), "loan balance")
}

func TestScenarioCommand(t *testing.T) {
	clearEnv(t)

	out, err := executeCommand(t, "scenario", "--start-year", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "ECONOMIC SCENARIO")
	assert.Contains(t, out, "Recession Years:        2035, 2036")
	assert.NotContains(t, out, "COMPOUND GROWTH PROJECTION")

	out, err = executeCommand(t, "scenario", "--start-year", "2025", "--recession-years", "0", "--inflation", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Recession Years:        none")

	_, err = executeCommand(t, "scenario", "--recession-start", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidInput))

	_, err = executeCommand(t, "scenario", "--recession-return=-120")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-100%")
}

func TestRunCommand_WritesJSON(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out, err := executeCommand(t, "run", writePlan(t, testPlan), "--format", "json", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: wrote ")

	matches, err := filepath.Glob(filepath.Join(dir, "investment_report_*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	b, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	var result domain.PlanResult
	require.NoError(t, json.Unmarshal(b, &result))
	assert.Equal(t, 2025, result.StartYear)
	assert.NotEmpty(t, result.RunID)
	require.NotNil(t, result.Growth)
	assert.Equal(t, "622866.33", result.Growth.Summary.FinalValue.StringFixed(2))
	require.NotNil(t, result.Debt)
	assert.Equal(t, 221, result.Debt.Accelerated.Months)
	require.NotNil(t, result.Scenario)
	assert.Equal(t, []int{10, 11}, result.Scenario.RecessionYears)
	assert.Len(t, result.WhatIfs, 3)
}

func TestRunCommand_AllFormats(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := executeCommand(t, "run", writePlan(t, testPlan), "-f", "all", "-o", dir)
	require.NoError(t, err)

	for _, pattern := range []string{"*.txt", "*.csv", "*.html"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		require.NoError(t, err)
		assert.Len(t, matches, 1, pattern)
	}
}

func TestRunCommand_Overrides(t *testing.T) {
	clearEnv(t)
	plan := writePlan(t, testPlan)

	out, err := executeCommand(t, "run", plan, "-f", "console-lite", "--years", "10", "--no-what-ifs", "--extra", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Years=10")
	assert.Contains(t, out, "Months=360->360")
	assert.NotContains(t, out, "skip_coffee")

	// The plan file itself is untouched.
	parsed, err := config.NewInputParser().LoadFromFile(plan)
	require.NoError(t, err)
	assert.Equal(t, 32, parsed.Growth.HorizonYears)
}

func TestRunCommand_SingleTabPlan(t *testing.T) {
	clearEnv(t)
	plan := writePlan(t, "debt:\n  loan_balance: 25000\n  loan_annual_rate_percent: 7\n  monthly_payment: 500\n")

	out, err := executeCommand(t, "run", plan, "-f", "console-lite", "--years", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Debt (Mortgage):")
	assert.NotContains(t, out, "Growth:")
	assert.NotContains(t, out, "Scenario:")
}

func TestRunCommand_Errors(t *testing.T) {
	clearEnv(t)

	_, err := executeCommand(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	_, err = executeCommand(t, "run", writePlan(t, "growth:\n  initial_principal: lots\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrSchema))

	_, err = executeCommand(t, "run", writePlan(t, testPlan), "--years", "500")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidInput))

	_, err = executeCommand(t, "run")
	require.Error(t, err)
}

func TestExampleCommand(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "example.yaml")

	out, err := executeCommand(t, "example", path, "--start-year", "2030")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: example plan written to "+path)

	plan, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2030, plan.StartYear)
	assert.NotNil(t, plan.Growth)
	assert.NotNil(t, plan.Debt)
	assert.NotNil(t, plan.Scenario)
	assert.Len(t, plan.WhatIfs, 3)

	// The written example runs as is.
	_, err = executeCommand(t, "run", path, "-f", "lite")
	require.NoError(t, err)
}

func TestExampleCommand_BadPath(t *testing.T) {
	clearEnv(t)
	_, err := executeCommand(t, "example", filepath.Join(t.TempDir(), "missing", "dir", "plan.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write example plan")
}

func TestFormatsCommand(t *testing.T) {
	clearEnv(t)

	out, err := executeCommand(t, "formats")
	require.NoError(t, err)
	for _, want := range []string{"FORMAT", "EXTENSION", "ALIASES", "console-lite", "detailed-csv", "pdf-report", "csv-detailed", "all"} {
		assert.Contains(t, out, want)
	}
}

func TestParseWhatIfs(t *testing.T) {
	list, err := parseWhatIfs([]string{"side_gig=250", " bonus = 12.50 "})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "side_gig", list[0].Name)
	assert.True(t, list[0].ExtraMonthly.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "bonus", list[1].Name)
	assert.True(t, list[1].ExtraMonthly.Equal(decimal.RequireFromString("12.5")))

	_, err = parseWhatIfs([]string{"=5"})
	assert.Error(t, err)
}

func TestDecimalValue(t *testing.T) {
	var d decimal.Decimal
	v := newDecimalValue(decimal.NewFromInt(9), &d)
	assert.Equal(t, "9", v.String())
	assert.Equal(t, "decimal", v.Type())

	require.NoError(t, v.Set("7.25"))
	assert.True(t, d.Equal(decimal.RequireFromString("7.25")))
	assert.Error(t, v.Set("seven"))
	assert.Equal(t, "0", decimalValue{}.String())
}
