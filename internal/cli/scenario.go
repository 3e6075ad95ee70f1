package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
)

func newScenarioCmd() *cobra.Command {
	var (
		proj            projectionFlags
		recessionReturn decimal.Decimal
		recessionStart  int
		recessionYears  int
		incomeGrowth    decimal.Decimal
		inflation       decimal.Decimal
	)
	def := calculation.DefaultScenarioInput()

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Simulate growth through a recession with rising contributions",
		Long: "Project growth where the recession years earn the recession return instead of the\n" +
			"normal rate and the monthly contribution grows each year with income. Inflation is\n" +
			"reported but not applied to balances.",
		Example: "  calc scenario --recession-start 5 --recession-years 3 --recession-return -20 --income-growth 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			state, err := evaluate(cmd, cc, nil, calculation.WithScenario(func(s *domain.ScenarioInput) {
				proj.apply(fs, &s.ProjectionInput)
				if fs.Changed("recession-return") {
					s.RecessionReturnPercent = recessionReturn
				}
				if fs.Changed("recession-start") {
					s.RecessionStartYear = recessionStart
				}
				if fs.Changed("recession-years") {
					s.RecessionDurationYears = recessionYears
				}
				if fs.Changed("income-growth") {
					s.IncomeGrowthPercent = incomeGrowth
				}
				if fs.Changed("inflation") {
					s.InflationRatePercent = inflation
				}
			}))
			if err != nil {
				return err
			}
			return render(cmd, cc, state.Result)
		},
	}

	fs := cmd.Flags()
	proj.register(fs, def.ProjectionInput)
	decimalVar(fs, &recessionReturn, "recession-return", def.RecessionReturnPercent, "annual return in percent during recession years")
	fs.IntVar(&recessionStart, "recession-start", def.RecessionStartYear, "first recession year (1 is the first projected year)")
	fs.IntVar(&recessionYears, "recession-years", def.RecessionDurationYears, "recession length in years (0 disables it)")
	decimalVar(fs, &incomeGrowth, "income-growth", def.IncomeGrowthPercent, "yearly contribution growth in percent")
	decimalVar(fs, &inflation, "inflation", def.InflationRatePercent, "inflation in percent (reported only)")
	return cmd
}
