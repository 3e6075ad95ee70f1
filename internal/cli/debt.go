package cli

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
)

func newDebtCmd() *cobra.Command {
	var (
		loanType       domain.LoanType
		balance        decimal.Decimal
		loanRate       decimal.Decimal
		payment        decimal.Decimal
		extra          decimal.Decimal
		investmentRate decimal.Decimal
	)
	def := calculation.DefaultDebtInput()

	names := make([]string, len(domain.LoanTypes))
	for i, lt := range domain.LoanTypes {
		names[i] = string(lt)
	}

	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Compare paying down a loan against investing the extra cash",
		Long: "Amortize the loan with and without an extra monthly payment, then project the same\n" +
			"extra amount invested over the baseline payoff period and recommend the larger benefit.",
		Example: "  calc debt --loan-type auto --balance 25000 --loan-rate 7.5 --payment 500 --extra 150",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			state, err := evaluate(cmd, cc, nil, calculation.WithDebt(func(d *domain.DebtInput) {
				if fs.Changed("loan-type") {
					d.LoanType = loanType
				}
				if fs.Changed("balance") {
					d.LoanBalance = balance
				}
				if fs.Changed("loan-rate") {
					d.LoanAnnualRatePercent = loanRate
				}
				if fs.Changed("payment") {
					d.MonthlyPayment = payment
				}
				if fs.Changed("extra") {
					d.ExtraMonthlyAmount = extra
				}
				if fs.Changed("investment-rate") {
					rate := investmentRate
					d.InvestmentAnnualRatePercent = &rate
				}
			}))
			if err != nil {
				return err
			}
			return render(cmd, cc, state.Result)
		},
	}

	loanType = def.LoanType
	fs := cmd.Flags()
	fs.Var(loanTypeValue{lt: &loanType}, "loan-type", "loan type ("+strings.Join(names, ", ")+")")
	decimalVar(fs, &balance, "balance", def.LoanBalance, "outstanding loan balance")
	decimalVar(fs, &loanRate, "loan-rate", def.LoanAnnualRatePercent, "loan annual rate in percent")
	decimalVar(fs, &payment, "payment", def.MonthlyPayment, "regular monthly payment")
	decimalVar(fs, &extra, "extra", def.ExtraMonthlyAmount, "extra monthly amount to pay down or invest")
	decimalVar(fs, &investmentRate, "investment-rate", calculation.DefaultProjectionInput().AnnualRatePercent,
		"annual return of the invest alternative in percent")
	return cmd
}
