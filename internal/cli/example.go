package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/output"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example plan file",
		Long:  "Write a plan with every tab and the default what-ifs filled in. The file defaults to example_plan.yaml.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			filename := "example_plan.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			plan := cc.Parser.CreateExampleConfiguration(cc.Settings.StartYear)
			if err := output.SaveConfiguration(plan, filename); err != nil {
				return fmt.Errorf("failed to write example plan: %w", err)
			}
			cc.Logger.Debugw("example plan written", "path", filename, "start_year", plan.StartYear)
			PrintSuccess(cmd, "example plan written to "+filename)
			return nil
		},
	}
}
