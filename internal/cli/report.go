package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/output"
)

// evaluate applies updates to base, validates the edited plan and recomputes it
// through the engine's reducer.
func evaluate(cmd *cobra.Command, cc *CLIContext, base *domain.PlanState, updates ...calculation.Update) (*domain.PlanState, error) {
	if cc.Settings.StartYear != 0 {
		updates = append(updates, calculation.WithStartYear(cc.Settings.StartYear))
	}

	var draft domain.PlanInput
	if base != nil {
		draft = base.Input.Clone()
	}
	for _, u := range updates {
		u(&draft)
	}
	if err := cc.Parser.ValidateConfiguration(&draft); err != nil {
		return nil, err
	}

	state, err := cc.Engine.Reduce(cmd.Context(), base, updates...)
	if err != nil {
		return nil, fmt.Errorf("calculation failed: %w", err)
	}
	cc.Logger.Infow("plan evaluated", "run_id", state.Result.RunID, "start_year", state.Result.StartYear)
	return state, nil
}

// render prints console formats to stdout and writes every other format to
// the output directory.
func render(cmd *cobra.Command, cc *CLIContext, results *domain.PlanResult) error {
	format := output.NormalizeFormatName(cc.Settings.Format)

	if format == "console" || format == "console-lite" {
		f := output.GetFormatterByName(format)
		b, err := f.Format(results)
		if err != nil {
			return fmt.Errorf("failed to format %s report: %w", format, err)
		}
		if _, err := cmd.OutOrStdout().Write(b); err != nil {
			return err
		}
		cc.Metrics.ReportWritten(format)
		return nil
	}

	paths, err := output.GenerateReport(results, format, cc.Settings.OutputDir)
	for _, p := range paths {
		cc.Logger.Debugw("report written", "path", p)
		PrintSuccess(cmd, "wrote "+p)
		cc.Metrics.ReportWritten(format)
	}
	return err
}
