package calculation

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
	money "github.com/rpgo/investment-calculator/pkg/decimal"
)

// recommendDebtStrategy compares the interest avoided by prepaying against what the
// same cash would grow to if invested. Ties favour paying down the debt.
func recommendDebtStrategy(c domain.DebtComparison) domain.DebtRecommendation {
	saved := money.NewMoneyFromDecimal(c.InterestSaved)
	growth := money.NewMoneyFromDecimal(c.InvestmentGrowth)
	label := c.LoanType.Label()
	if label == "" {
		label = "loan"
	}

	rate := c.InvestmentAnnualRatePercent.StringFixed(1)

	if c.InvestmentGrowth.GreaterThan(c.InterestSaved) {
		rationale := fmt.Sprintf("Investing the extra payment at %s%% grows to %s, more than the %s of interest avoided by paying down the %s.",
			rate, growth.FormatWhole(), saved.FormatWhole(), label)
		if c.InterestSaved.IsNegative() {
			cost := money.NewMoneyFromDecimal(c.InterestSaved.Neg())
			rationale = fmt.Sprintf("Paying down the %s adds %s of interest instead of saving any, so investing the extra payment at %s%% (growing to %s) comes out ahead.",
				label, cost.FormatWhole(), rate, growth.FormatWhole())
		}
		return domain.DebtRecommendation{
			Choice:    domain.ChoiceInvest,
			Advantage: c.InvestmentGrowth.Sub(c.InterestSaved),
			Rationale: rationale,
		}
	}

	rationale := fmt.Sprintf("Paying down the %s avoids %s of interest, more than the %s the extra payment would grow to at %s%%.",
		label, saved.FormatWhole(), growth.FormatWhole(), rate)
	if c.InvestmentGrowth.Equal(c.InterestSaved) {
		rationale = fmt.Sprintf("Paying down the %s avoids %s of interest, the same as the extra payment would grow to at %s%%. A tie goes to paying down the debt.",
			label, saved.FormatWhole(), rate)
	}
	return domain.DebtRecommendation{
		Choice:    domain.ChoicePayDownDebt,
		Advantage: c.InterestSaved.Sub(c.InvestmentGrowth),
		Rationale: rationale,
	}
}
