package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// MonthlyRate converts an annual percentage (9 for 9%) into a per-month fraction.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(twelve)
}

// MonthPolicy supplies the contribution and growth rate for each simulated month.
// year is the 1-based year being simulated. Implementations may keep state between calls.
type MonthPolicy interface {
	Next(year int) (contribution, monthlyRate decimal.Decimal)
	Name() string
}

// fixedPolicy contributes the same amount at the same rate every month.
type fixedPolicy struct {
	contribution decimal.Decimal
	rate         decimal.Decimal
}

func (p fixedPolicy) Next(int) (decimal.Decimal, decimal.Decimal) {
	return p.contribution, p.rate
}

func (p fixedPolicy) Name() string { return "fixed" }

// ledger tracks a balance under contribution-then-compound ordering.
type ledger struct {
	balance     decimal.Decimal
	contributed decimal.Decimal
	interest    decimal.Decimal
}

func (l *ledger) month(contribution, rate decimal.Decimal) {
	l.balance = l.balance.Add(contribution)
	l.contributed = l.contributed.Add(contribution)
	earned := l.balance.Mul(rate)
	l.balance = l.balance.Add(earned)
	l.interest = l.interest.Add(earned)
}

// stepMonths advances l by the given number of months. yearEnd, when set, is
// called after every twelfth month with the 1-based year just completed.
func stepMonths(l *ledger, months int, policy MonthPolicy, yearEnd func(year int, balance decimal.Decimal)) {
	for m := 1; m <= months; m++ {
		year := (m-1)/12 + 1
		contribution, rate := policy.Next(year)
		l.month(contribution, rate)
		if yearEnd != nil && m%12 == 0 {
			yearEnd(year, l.balance)
		}
	}
}

// stepYears runs whole years from start and returns the year-end series, year 0 included.
func stepYears(start decimal.Decimal, years int, policy MonthPolicy) (domain.ProjectionSeries, *ledger) {
	l := &ledger{balance: start}
	capacity := 1
	if years > 0 {
		capacity += years
	}
	series := make(domain.ProjectionSeries, 0, capacity)
	series = append(series, domain.ProjectionPoint{YearIndex: 0, Balance: start})
	stepMonths(l, years*12, policy, func(year int, balance decimal.Decimal) {
		series = append(series, domain.ProjectionPoint{YearIndex: year, Balance: balance})
	})
	return series, l
}
