package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/investment-calculator/internal/calculation"
)

// TestEngineSnapshot produces a deterministic snapshot of core plan metrics.
func TestEngineSnapshot(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	res, err := calculation.NewCalculationEngine().Evaluate(context.Background(), calculation.DefaultPlan())
	if err != nil {
		t.Fatalf("evaluate plan: %v", err)
	}

	// Trim to stable summary fields only
	out := struct {
		GrowthFinal       string `json:"growth_final"`
		GrowthContributed string `json:"growth_contributed"`
		BaselineMonths    int    `json:"baseline_months"`
		AcceleratedMonths int    `json:"accelerated_months"`
		InterestSaved     string `json:"interest_saved"`
		InvestmentGrowth  string `json:"investment_growth"`
		Recommendation    string `json:"recommendation"`
		RecessionYears    []int  `json:"recession_years"`
	}{
		GrowthFinal:       res.Growth.Summary.FinalValue.StringFixed(2),
		GrowthContributed: res.Growth.Summary.TotalContributed.StringFixed(2),
		BaselineMonths:    res.Debt.Baseline.Months,
		AcceleratedMonths: res.Debt.Accelerated.Months,
		InterestSaved:     res.Debt.InterestSaved.StringFixed(2),
		InvestmentGrowth:  res.Debt.InvestmentGrowth.StringFixed(2),
		Recommendation:    res.Debt.Recommendation.Choice,
		RecessionYears:    res.Scenario.RecessionYears,
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}
