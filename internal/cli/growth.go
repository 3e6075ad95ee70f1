package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
)

func newGrowthCmd() *cobra.Command {
	var (
		proj      projectionFlags
		whatIfs   []string
		noWhatIfs bool
	)

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project compound growth with monthly contributions",
		Long: "Project an initial principal plus monthly contributions compounded monthly, year by year.\n" +
			"The default what-ifs (extra $100, skipped coffee, skipped restaurant) are compared\n" +
			"unless --what-if or --no-what-ifs is given.",
		Example: "  calc growth --principal 25000 --contribution 500 --rate 7 --years 30\n" +
			"  calc growth --what-if side_gig=250 --format html",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			updates := []calculation.Update{
				calculation.WithGrowth(func(g *domain.ProjectionInput) { proj.apply(cmd.Flags(), g) }),
			}
			switch {
			case noWhatIfs:
				updates = append(updates, calculation.WithWhatIfs(nil))
			case len(whatIfs) > 0:
				list, err := parseWhatIfs(whatIfs)
				if err != nil {
					return err
				}
				updates = append(updates, calculation.WithWhatIfs(list))
			}

			state, err := evaluate(cmd, cc, nil, updates...)
			if err != nil {
				return err
			}
			return render(cmd, cc, state.Result)
		},
	}

	proj.register(cmd.Flags(), calculation.DefaultProjectionInput())
	cmd.Flags().StringArrayVar(&whatIfs, "what-if", nil, "extra monthly contribution to compare, as name=amount (repeatable)")
	cmd.Flags().BoolVar(&noWhatIfs, "no-what-ifs", false, "skip the what-if comparisons")
	cmd.MarkFlagsMutuallyExclusive("what-if", "no-what-ifs")
	return cmd
}

// parseWhatIfs turns name=amount pairs into what-ifs.
func parseWhatIfs(pairs []string) ([]domain.WhatIf, error) {
	list := make([]domain.WhatIf, 0, len(pairs))
	for _, p := range pairs {
		name, amount, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid what-if %q: expected name=amount", p)
		}
		extra, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, fmt.Errorf("invalid what-if %q: %q is not a number", p, amount)
		}
		list = append(list, domain.WhatIf{Name: name, ExtraMonthly: extra})
	}
	return list, nil
}
