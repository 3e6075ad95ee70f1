package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if g := results.Growth; g != nil {
		fmt.Fprintf(&buf, "Growth: Final=%s Contributed=%s Interest=%s Years=%d\n",
			FormatCurrency(g.Summary.FinalValue),
			FormatCurrency(g.Summary.TotalContributed),
			FormatCurrency(g.Summary.TotalInterestEarned),
			g.Input.HorizonYears,
		)
	}
	for _, w := range results.WhatIfs {
		fmt.Fprintf(&buf, "  %s: %s\n", w.WhatIf.Name, FormatSignedCurrency(w.AdditionalGrowth))
	}
	if d := results.Debt; d != nil {
		fmt.Fprintf(&buf, "Debt (%s): InterestSaved=%s Months=%d->%d InvestmentGrowth=%s\n",
			d.LoanType.Label(),
			FormatCurrency(d.InterestSaved),
			d.Baseline.Months,
			d.Accelerated.Months,
			FormatCurrency(d.InvestmentGrowth),
		)
	}
	if s := results.Scenario; s != nil {
		fmt.Fprintf(&buf, "Scenario: Final=%s RecessionYears=%d\n", FormatCurrency(s.FinalValue), len(s.RecessionYears))
	}

	h := AnalyzePlan(results)
	if h.DebtChoice != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s\n", h.DebtChoice)
	}
	return buf.Bytes(), nil
}
