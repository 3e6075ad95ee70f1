package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// allFormats are written by the "all" pseudo-format.
var allFormats = []string{"console", "detailed-csv", "html"}

// GenerateReport writes results in the named format (or "all") to dir and
// returns the written file paths.
func GenerateReport(results *domain.PlanResult, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range allFormats {
			written, err := GenerateReport(results, name, dir)
			if err != nil {
				return paths, err
			}
			paths = append(paths, written...)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes a plan as YAML that LoadFromFile can read back.
func SaveConfiguration(plan *domain.PlanInput, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
