package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed plan.schema.json
var planSchema string

// PlanSchema returns the JSON schema plan documents are checked against.
func PlanSchema() string { return planSchema }

// validateSchema checks a decoded plan document and reports every violation at once.
func validateSchema(doc map[string]interface{}) error {
	if doc == nil {
		return fmt.Errorf("%w: empty plan document", ErrSchema)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(planSchema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(errs, "; "))
}
