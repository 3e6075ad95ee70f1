package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// decimalValue adapts a decimal.Decimal to pflag.Value so amounts keep full precision.
type decimalValue struct {
	d *decimal.Decimal
}

var _ pflag.Value = decimalValue{}

func newDecimalValue(def decimal.Decimal, p *decimal.Decimal) decimalValue {
	*p = def
	return decimalValue{d: p}
}

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string { return "decimal" }

// decimalVar registers a decimal flag.
func decimalVar(fs *pflag.FlagSet, p *decimal.Decimal, name string, def decimal.Decimal, usage string) {
	fs.Var(newDecimalValue(def, p), name, usage)
}

// loanTypeValue accepts any spelling domain.ParseLoanType understands.
type loanTypeValue struct {
	lt *domain.LoanType
}

func (v loanTypeValue) String() string {
	if v.lt == nil {
		return ""
	}
	return string(*v.lt)
}

func (v loanTypeValue) Set(s string) error {
	lt, err := domain.ParseLoanType(s)
	if err != nil {
		return err
	}
	*v.lt = lt
	return nil
}

func (v loanTypeValue) Type() string { return "loan-type" }

// projectionFlags are the compound growth parameters shared by growth and scenario.
type projectionFlags struct {
	principal    decimal.Decimal
	contribution decimal.Decimal
	rate         decimal.Decimal
	years        int
}

func (pf *projectionFlags) register(fs *pflag.FlagSet, def domain.ProjectionInput) {
	decimalVar(fs, &pf.principal, "principal", def.InitialPrincipal, "initial principal")
	decimalVar(fs, &pf.contribution, "contribution", def.MonthlyContribution, "monthly contribution")
	decimalVar(fs, &pf.rate, "rate", def.AnnualRatePercent, "annual return in percent (negative allowed)")
	fs.IntVar(&pf.years, "years", def.HorizonYears, "projection horizon in years")
}

// apply copies every flag the user set onto in.
func (pf *projectionFlags) apply(fs *pflag.FlagSet, in *domain.ProjectionInput) {
	if fs.Changed("principal") {
		in.InitialPrincipal = pf.principal
	}
	if fs.Changed("contribution") {
		in.MonthlyContribution = pf.contribution
	}
	if fs.Changed("rate") {
		in.AnnualRatePercent = pf.rate
	}
	if fs.Changed("years") {
		in.HorizonYears = pf.years
	}
}
