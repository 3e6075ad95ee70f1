package calculation

import (
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWhatIfs(t *testing.T) {
	whatIfs := DefaultWhatIfs()
	require.Len(t, whatIfs, 3)

	expected := map[string]int64{"extra_100": 100, "skip_coffee": 128, "skip_restaurant": 200}
	for _, w := range whatIfs {
		amount, ok := expected[w.Name]
		require.True(t, ok, "unexpected what-if %s", w.Name)
		assert.True(t, w.ExtraMonthly.Equal(decimal.NewFromInt(amount)))
		assert.NotEmpty(t, w.Description)
	}
}

func TestEvaluateWhatIfs(t *testing.T) {
	base := DefaultProjectionInput()
	_, baseSummary := ProjectGrowth(base)

	results, err := EvaluateWhatIfs(base, baseSummary.FinalValue, DefaultWhatIfs())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		assert.True(t, r.AdditionalGrowth.IsPositive(), "%s should add growth", r.WhatIf.Name)
		assert.True(t, r.FinalValue.Sub(baseSummary.FinalValue).Equal(r.AdditionalGrowth))
	}
	// Larger extra contributions add more.
	assert.True(t, results[1].AdditionalGrowth.GreaterThan(results[0].AdditionalGrowth))
	assert.True(t, results[2].AdditionalGrowth.GreaterThan(results[1].AdditionalGrowth))

	// extra_100 is the same as projecting a 300/month contribution.
	bumped := base
	bumped.MonthlyContribution = decimal.NewFromInt(300)
	_, bumpedSummary := ProjectGrowth(bumped)
	assert.True(t, results[0].FinalValue.Equal(bumpedSummary.FinalValue))
}

func TestEvaluateWhatIfs_CustomAndInvalid(t *testing.T) {
	base := DefaultProjectionInput()
	_, baseSummary := ProjectGrowth(base)

	results, err := EvaluateWhatIfs(base, baseSummary.FinalValue, []domain.WhatIf{
		{Name: "side_gig", ExtraMonthly: decimal.NewFromInt(50)},
		{Name: "nothing", ExtraMonthly: decimal.Zero},
	})
	require.NoError(t, err)
	assert.Equal(t, "Invest an extra $50 per month", results[0].WhatIf.Description)
	assert.True(t, results[1].AdditionalGrowth.IsZero())

	_, err = EvaluateWhatIfs(base, baseSummary.FinalValue, []domain.WhatIf{{Name: "bad", ExtraMonthly: decimal.NewFromInt(-1)}})
	assert.Error(t, err)
}

func TestExtraContributionDoesNotMutateBase(t *testing.T) {
	base := DefaultProjectionInput()
	applied := ExtraContribution{WhatIf: domain.WhatIf{Name: "x", ExtraMonthly: decimal.NewFromInt(10)}}.Apply(base)
	assert.True(t, base.MonthlyContribution.Equal(decimal.NewFromInt(200)))
	assert.True(t, applied.MonthlyContribution.Equal(decimal.NewFromInt(210)))
}
