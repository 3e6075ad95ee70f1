package output

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling rules that hold for every plan.
var DefaultAssumptions = []string{
	"Interest compounds monthly at the annual rate divided by 12",
	"Each monthly contribution is deposited before that month's interest is applied",
	"Loans are simulated for at most 360 months; a payment that never covers the interest is reported at the cap with no interest counted",
	"No taxes, fees or currency effects are modeled",
}

// GenerateAssumptions lists DefaultAssumptions followed by the rates this plan actually used.
func GenerateAssumptions(results *domain.PlanResult) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if results == nil {
		return out
	}
	if g := results.Growth; g != nil {
		out = append(out, fmt.Sprintf("Growth: %s annual return over %d years", FormatPercentage(g.Input.AnnualRatePercent), g.Input.HorizonYears))
	}
	if d := results.Debt; d != nil {
		out = append(out, fmt.Sprintf("Debt comparison: extra cash invested at %s annually", FormatPercentage(d.InvestmentAnnualRatePercent)))
	}
	if s := results.Scenario; s != nil {
		in := results.Input.Scenario
		if in != nil && len(s.RecessionYears) > 0 {
			out = append(out, fmt.Sprintf("Recession: %s annual return in years %d-%d",
				FormatPercentage(in.RecessionReturnPercent), s.RecessionYears[0], s.RecessionYears[len(s.RecessionYears)-1]))
		}
		if in != nil && !in.IncomeGrowthPercent.IsZero() {
			out = append(out, fmt.Sprintf("Income growth: contributions rise %s a year, compounded monthly", FormatPercentage(in.IncomeGrowthPercent)))
		}
		out = append(out, fmt.Sprintf("Inflation of %s is shown for reference and not applied to balances", FormatPercentage(s.InflationRatePercent)))
	}
	return out
}
