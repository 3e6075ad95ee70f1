package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectGrowth compounds a principal plus fixed monthly contributions.
// Each month the contribution is deposited first and the month's interest is
// earned on the new balance. The series holds HorizonYears+1 year-end points.
func ProjectGrowth(in domain.ProjectionInput) (domain.ProjectionSeries, domain.ProjectionSummary) {
	policy := fixedPolicy{contribution: in.MonthlyContribution, rate: MonthlyRate(in.AnnualRatePercent)}
	series, l := stepYears(in.InitialPrincipal, in.HorizonYears, policy)
	return series, domain.ProjectionSummary{
		FinalValue:          l.balance,
		TotalContributed:    l.contributed,
		TotalInterestEarned: l.interest,
	}
}

// SummarizeBreakdown splits a final value into principal, contribution and interest shares.
// All shares are zero when the final value is zero.
func SummarizeBreakdown(principal decimal.Decimal, summary domain.ProjectionSummary) domain.Breakdown {
	if summary.FinalValue.IsZero() {
		return domain.Breakdown{PrincipalShare: decimal.Zero, ContributionShare: decimal.Zero, InterestShare: decimal.Zero}
	}
	return domain.Breakdown{
		PrincipalShare:    principal.Div(summary.FinalValue),
		ContributionShare: summary.TotalContributed.Div(summary.FinalValue),
		InterestShare:     summary.TotalInterestEarned.Div(summary.FinalValue),
	}
}
