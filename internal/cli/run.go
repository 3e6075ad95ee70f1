package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
)

func newRunCmd() *cobra.Command {
	var (
		years     int
		rate      decimal.Decimal
		extra     decimal.Decimal
		noWhatIfs bool
	)

	cmd := &cobra.Command{
		Use:   "run <plan.yaml>",
		Short: "Evaluate every tab of a plan file",
		Long: "Load a YAML plan, apply any override flags and produce a report covering growth,\n" +
			"what-ifs, debt vs invest and the economic scenario. Only tabs present in the plan are run.",
		Example: "  calc run plan.yaml --format all --output-dir reports\n" +
			"  calc run plan.yaml --years 20 --rate 6",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			plan, err := cc.Parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			cc.Logger.Debugw("plan loaded", "path", args[0],
				"growth", plan.Growth != nil, "debt", plan.Debt != nil, "scenario", plan.Scenario != nil)

			fs := cmd.Flags()
			var updates []calculation.Update
			if fs.Changed("years") {
				updates = append(updates, withHorizon(years))
			}
			if fs.Changed("rate") {
				updates = append(updates, withRate(rate))
			}
			if fs.Changed("extra") {
				updates = append(updates, withDebtExtra(extra))
			}
			if noWhatIfs {
				updates = append(updates, calculation.WithWhatIfs(nil))
			}

			state, err := evaluate(cmd, cc, &domain.PlanState{Input: *plan}, updates...)
			if err != nil {
				return err
			}
			return render(cmd, cc, state.Result)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&years, "years", domain.DefaultHorizonYears, "override the growth and scenario horizon")
	decimalVar(fs, &rate, "rate", decimal.Zero, "override the growth and scenario annual return in percent")
	decimalVar(fs, &extra, "extra", decimal.Zero, "override the debt tab's extra monthly amount")
	fs.BoolVar(&noWhatIfs, "no-what-ifs", false, "skip the what-if comparisons")
	return cmd
}

// The overrides below only touch tabs the plan already has.

func withHorizon(years int) calculation.Update {
	return func(p *domain.PlanInput) {
		if p.Growth != nil {
			p.Growth.HorizonYears = years
		}
		if p.Scenario != nil {
			p.Scenario.HorizonYears = years
		}
	}
}

func withRate(rate decimal.Decimal) calculation.Update {
	return func(p *domain.PlanInput) {
		if p.Growth != nil {
			p.Growth.AnnualRatePercent = rate
		}
		if p.Scenario != nil {
			p.Scenario.AnnualRatePercent = rate
		}
	}
}

func withDebtExtra(extra decimal.Decimal) calculation.Update {
	return func(p *domain.PlanInput) {
		if p.Debt != nil {
			p.Debt.ExtraMonthlyAmount = extra
		}
	}
}
