package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ScenarioInfo is the subset of a scenario needed for validation.
type ScenarioInfo struct {
	Name      string
	Active    bool
	TermYears decimal.Decimal
}

// ValidateScenarioNames rejects empty and duplicate scenario names. Names are
// compared after trimming surrounding whitespace.
func ValidateScenarioNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("scenario %d has no name", i+1)
		}
		if _, exists := seen[trimmed]; exists {
			return fmt.Errorf("a scenario named %q already exists", trimmed)
		}
		seen[trimmed] = struct{}{}
	}
	return nil
}

// ScenarioWarnings returns non-fatal findings about a set of scenarios. A
// zero horizon means each scenario is projected over its own term.
func ScenarioWarnings(scenarios []ScenarioInfo, horizonYears decimal.Decimal) []string {
	var warnings []string

	active := 0
	for _, scenario := range scenarios {
		if !scenario.Active {
			continue
		}
		active++
		if horizonYears.IsPositive() && scenario.TermYears.GreaterThan(horizonYears) {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' term (%s years) extends past the projection horizon (%s years)",
				scenario.Name, scenario.TermYears, horizonYears))
		}
	}

	if len(scenarios) > 0 && active == 0 {
		warnings = append(warnings, "No active scenarios; nothing will be forecast")
	}

	return warnings
}
