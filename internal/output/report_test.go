package output_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/output"
)

func TestSaveConfigurationRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	plan := parser.CreateExampleConfiguration(2025)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := output.SaveConfiguration(plan, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	loaded, err := parser.LoadFromFile(path)
	if err != nil {
		t.Fatalf("saved configuration does not load: %v", err)
	}
	if loaded.StartYear != 2025 || !loaded.Growth.InitialPrincipal.Equal(plan.Growth.InitialPrincipal) {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestGenerateReport_WritesFiles(t *testing.T) {
	res, err := calculation.NewCalculationEngine().Evaluate(context.Background(), calculation.DefaultPlan())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "reports")

	cases := map[string]string{
		"json":         ".json",
		"csv":          ".csv",
		"detailed-csv": ".csv",
		"console-lite": ".txt",
		"pdf":          ".pdf",
	}
	for format, ext := range cases {
		paths, err := output.GenerateReport(res, format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if len(paths) != 1 || !strings.HasSuffix(paths[0], ext) {
			t.Fatalf("%s: unexpected paths %v", format, paths)
		}
		info, err := os.Stat(paths[0])
		if err != nil || info.Size() == 0 {
			t.Fatalf("%s: report not written: %v", format, err)
		}
	}

	paths, err := output.GenerateReport(res, "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 files for all, got %v", paths)
	}
}

func TestFileExtension(t *testing.T) {
	cases := map[string]string{"console": "txt", "verbose": "txt", "console-lite": "txt", "csv-detailed": "csv", "html": "html", "pdf": "pdf"}
	for name, want := range cases {
		if got := output.FileExtension(name); got != want {
			t.Fatalf("FileExtension(%q) = %q, want %q", name, got, want)
		}
	}
}
