package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVSummarizer writes the year series (one row per year, growth and scenario side by side).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "CalendarYear", "GrowthBalance", "ScenarioBalance", "Recession"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	var growth, scenario domain.ProjectionSeries
	recession := map[int]bool{}
	if results.Growth != nil {
		growth = results.Growth.Series
	}
	if results.Scenario != nil {
		scenario = results.Scenario.Series
		for _, y := range results.Scenario.RecessionYears {
			recession[y] = true
		}
	}

	rows := len(growth)
	if len(scenario) > rows {
		rows = len(scenario)
	}
	for i := 0; i < rows; i++ {
		row := []string{
			intToString(i),
			intToString(results.CalendarYear(i)),
			seriesCell(growth, i),
			seriesCell(scenario, i),
			boolToString(recession[i]),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func seriesCell(s domain.ProjectionSeries, i int) string {
	if i >= len(s) {
		return ""
	}
	return s[i].Balance.StringFixed(2)
}
