package calculation

import (
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func growthInput(principal, contribution, rate int64, years int) domain.ProjectionInput {
	return domain.ProjectionInput{
		InitialPrincipal:    decimal.NewFromInt(principal),
		MonthlyContribution: decimal.NewFromInt(contribution),
		AnnualRatePercent:   decimal.NewFromInt(rate),
		HorizonYears:        years,
	}
}

func TestProjectGrowth_DefaultPlan(t *testing.T) {
	series, summary := ProjectGrowth(DefaultProjectionInput())

	require.Len(t, series, 33)
	assert.True(t, series[0].Balance.Equal(decimal.NewFromInt(10000)), "year 0 must be the untouched principal")
	assert.Equal(t, "13458.35", series[1].Balance.StringFixed(2))
	assert.Equal(t, "622866.33", summary.FinalValue.StringFixed(2))
	assert.True(t, summary.FinalValue.GreaterThan(decimal.NewFromInt(86800)))
	assert.True(t, summary.TotalContributed.Equal(decimal.NewFromInt(76800)))
	assert.True(t, summary.FinalValue.Equal(series.Final()))
}

func TestProjectGrowth_SeriesShape(t *testing.T) {
	for _, years := range []int{1, 5, 32, 50} {
		series, _ := ProjectGrowth(growthInput(1000, 50, 5, years))
		require.Len(t, series, years+1)
		for i, p := range series {
			assert.Equal(t, i, p.YearIndex)
		}
	}
}

func TestProjectGrowth_NoContributionNoRate(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		years     int
	}{
		{"small principal", 1, 1},
		{"default principal", 10000, 32},
		{"long horizon", 250000, 80},
		{"zero principal", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, summary := ProjectGrowth(growthInput(tt.principal, 0, 0, tt.years))
			for _, p := range series {
				assert.True(t, p.Balance.Equal(decimal.NewFromInt(tt.principal)))
			}
			assert.True(t, summary.FinalValue.Equal(decimal.NewFromInt(tt.principal)))
			assert.True(t, summary.TotalInterestEarned.IsZero())
		})
	}
}

func TestProjectGrowth_SummationInvariant(t *testing.T) {
	tests := []domain.ProjectionInput{
		DefaultProjectionInput(),
		growthInput(0, 500, 7, 40),
		growthInput(50000, 0, 4, 20),
		growthInput(20000, 300, -3, 15),
		{
			InitialPrincipal:    decimal.RequireFromString("1234.56"),
			MonthlyContribution: decimal.RequireFromString("87.65"),
			AnnualRatePercent:   decimal.RequireFromString("6.5"),
			HorizonYears:        25,
		},
	}

	tolerance := decimal.RequireFromString("0.000001")
	for _, in := range tests {
		_, summary := ProjectGrowth(in)
		sum := in.InitialPrincipal.Add(summary.TotalContributed).Add(summary.TotalInterestEarned)
		diff := sum.Sub(summary.FinalValue).Abs()
		if !summary.FinalValue.IsZero() {
			diff = diff.Div(summary.FinalValue.Abs())
		}
		assert.True(t, diff.LessThanOrEqual(tolerance), "invariant broken for %+v: diff %s", in, diff)
	}
}

func TestProjectGrowth_Monotonic(t *testing.T) {
	base := growthInput(10000, 200, 9, 32)
	_, baseSummary := ProjectGrowth(base)

	tests := []struct {
		name   string
		modify func(*domain.ProjectionInput)
	}{
		{"more principal", func(in *domain.ProjectionInput) { in.InitialPrincipal = decimal.NewFromInt(20000) }},
		{"more contribution", func(in *domain.ProjectionInput) { in.MonthlyContribution = decimal.NewFromInt(201) }},
		{"higher rate", func(in *domain.ProjectionInput) { in.AnnualRatePercent = decimal.RequireFromString("9.5") }},
		{"longer horizon", func(in *domain.ProjectionInput) { in.HorizonYears = 33 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.modify(&in)
			_, summary := ProjectGrowth(in)
			assert.True(t, summary.FinalValue.GreaterThan(baseSummary.FinalValue))
		})
	}
}

func TestProjectGrowth_YearOverYearNonDecreasingForNonNegativeRate(t *testing.T) {
	series, _ := ProjectGrowth(growthInput(5000, 0, 3, 20))
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i].Balance.GreaterThanOrEqual(series[i-1].Balance))
	}
}

func TestProjectGrowth_NegativeRateLosesMoney(t *testing.T) {
	in := growthInput(10000, 100, -5, 10)
	_, summary := ProjectGrowth(in)
	deposited := in.InitialPrincipal.Add(summary.TotalContributed)
	assert.True(t, summary.FinalValue.LessThan(deposited))
	assert.True(t, summary.TotalInterestEarned.IsNegative())
}

func TestProjectGrowth_ContributionBeforeInterest(t *testing.T) {
	// One year at 12%/yr (1% a month), no principal: the first deposit earns a full month.
	_, summary := ProjectGrowth(growthInput(0, 100, 12, 1))
	firstMonth := decimal.NewFromInt(100).Mul(decimal.RequireFromString("0.01"))
	assert.True(t, summary.TotalInterestEarned.GreaterThan(firstMonth))
	assert.Equal(t, "1280.93", summary.FinalValue.StringFixed(2))
}

func TestSummarizeBreakdown(t *testing.T) {
	in := DefaultProjectionInput()
	_, summary := ProjectGrowth(in)
	b := SummarizeBreakdown(in.InitialPrincipal, summary)

	total := b.PrincipalShare.Add(b.ContributionShare).Add(b.InterestShare)
	assert.True(t, total.Sub(decimal.NewFromInt(1)).Abs().LessThan(decimal.RequireFromString("0.0000001")))
	assert.True(t, b.InterestShare.GreaterThan(b.ContributionShare))

	zero := SummarizeBreakdown(decimal.Zero, domain.ProjectionSummary{FinalValue: decimal.Zero})
	assert.True(t, zero.PrincipalShare.IsZero())
	assert.True(t, zero.ContributionShare.IsZero())
	assert.True(t, zero.InterestShare.IsZero())
}
