package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxLoanMonths caps every amortization at a 30 year term.
const MaxLoanMonths = 360

// DefaultInvestmentRatePercent is used when neither the debt input nor the growth tab supplies a rate.
var DefaultInvestmentRatePercent = decimal.NewFromInt(9)

// amortize pays a loan down month by month until it is paid off or the term cap is hit.
// A payment that does not cover the month's interest stops amortization and
// pins the elapsed months at the term cap, so no tail interest is added for it.
// Any other balance left at the end is charged simple interest for the months
// that were not simulated.
func amortize(loan domain.LoanState) domain.PayoffSchedule {
	rate := MonthlyRate(loan.AnnualRatePercent)
	totalInterest := decimal.Zero
	elapsed := 0
	amortizing := true

	for loan.Balance.IsPositive() && elapsed < MaxLoanMonths {
		interest := loan.Balance.Mul(rate)
		principal := loan.MonthlyPayment.Sub(interest)
		if !principal.IsPositive() {
			amortizing = false
			elapsed = MaxLoanMonths
			break
		}
		loan.Balance = loan.Balance.Sub(principal)
		totalInterest = totalInterest.Add(interest)
		elapsed++
	}

	if loan.Balance.IsPositive() {
		remaining := decimal.NewFromInt(int64(MaxLoanMonths - elapsed))
		totalInterest = totalInterest.Add(loan.Balance.Mul(rate).Mul(remaining))
	}

	return domain.PayoffSchedule{
		Months:           elapsed,
		TotalInterest:    totalInterest,
		RemainingBalance: loan.Balance,
		Amortizing:       amortizing,
	}
}

// investmentRate resolves the rate used for the opportunity leg.
func investmentRate(in domain.DebtInput) decimal.Decimal {
	if in.InvestmentAnnualRatePercent != nil {
		return *in.InvestmentAnnualRatePercent
	}
	return DefaultInvestmentRatePercent
}

// CompareDebtVsInvest weighs putting ExtraMonthlyAmount toward the loan against
// investing it for as long as the baseline loan would have run.
func CompareDebtVsInvest(in domain.DebtInput) domain.DebtComparison {
	baseline := amortize(domain.LoanState{
		Balance:           in.LoanBalance,
		AnnualRatePercent: in.LoanAnnualRatePercent,
		MonthlyPayment:    in.MonthlyPayment,
	})
	accelerated := amortize(domain.LoanState{
		Balance:           in.LoanBalance,
		AnnualRatePercent: in.LoanAnnualRatePercent,
		MonthlyPayment:    in.MonthlyPayment.Add(in.ExtraMonthlyAmount),
	})

	rate := investmentRate(in)
	invested := &ledger{balance: decimal.Zero}
	stepMonths(invested, baseline.Months, fixedPolicy{contribution: in.ExtraMonthlyAmount, rate: MonthlyRate(rate)}, nil)

	comparison := domain.DebtComparison{
		LoanType:                    in.LoanType,
		InvestmentAnnualRatePercent: rate,
		InterestSaved:               baseline.TotalInterest.Sub(accelerated.TotalInterest),
		InvestmentGrowth:            invested.balance,
		DebtPayoffYearsSaved:        decimal.NewFromInt(int64(baseline.Months - accelerated.Months)).Div(twelve),
		Baseline:                    baseline,
		Accelerated:                 accelerated,
	}
	comparison.Recommendation = recommendDebtStrategy(comparison)
	return comparison
}
