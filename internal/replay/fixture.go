// Package replay re-runs recorded status reports through the full analysis
// pipeline and diffs the outcomes against expectations. Fixtures are the
// regression record for threshold and catalog changes.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pmpulse/analyzer/internal/report"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string     `json:"description"`
	Scenarios   []Scenario `json:"scenarios"`
}

// Scenario is one recorded status report plus its expected outcome.
type Scenario struct {
	Name       string   `json:"name"`
	Domain     string   `json:"domain"`
	ReportText string   `json:"report_text"`
	Expected   Expected `json:"expected"`
}

// Expected captures the outcome a scenario must reproduce. FiredRules lists
// rule IDs that must appear in the validation messages; Health is the
// expected band name. Empty fields are not checked.
type Expected struct {
	Health     string   `json:"health"`
	FiredRules []string `json:"fired_rules"`
	Valid      *bool    `json:"valid"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	for i, sc := range f.Scenarios {
		if !report.Domain(sc.Domain).Valid() {
			return nil, fmt.Errorf("fixture %s: scenario %d (%s): unknown domain %q", path, i, sc.Name, sc.Domain)
		}
	}
	return &f, nil
}

// #endregion fixture-loader
