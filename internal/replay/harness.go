package replay

import (
	"context"
	"fmt"

	"github.com/pmpulse/analyzer/internal/analyzer"
	"github.com/pmpulse/analyzer/internal/report"
)

// #region types

// Result captures one scenario's replay outcome and any expectation
// mismatches.
type Result struct {
	Name       string
	Health     string
	FiredRules []string
	Valid      bool
	Err        error
	Mismatches []string
}

// Passed reports whether the scenario replayed without error or mismatch.
func (r Result) Passed() bool {
	return r.Err == nil && len(r.Mismatches) == 0
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// #endregion types

// #region replay

// Replay runs every scenario through the analyzer and checks expectations.
// Scenarios are independent: a failure is recorded and the run continues.
func Replay(ctx context.Context, a *analyzer.Analyzer, fixture *Fixture) []Result {
	results := make([]Result, 0, len(fixture.Scenarios))
	for _, sc := range fixture.Scenarios {
		results = append(results, replayOne(ctx, a, sc))
	}
	return results
}

func replayOne(ctx context.Context, a *analyzer.Analyzer, sc Scenario) Result {
	result := Result{Name: sc.Name}

	analysis, err := a.AnalyzeText(ctx, sc.ReportText, report.Domain(sc.Domain))
	if err != nil {
		result.Err = err
		return result
	}

	result.Health = string(analysis.Health.Status)
	result.Valid = analysis.Validation.Valid
	fired := make(map[string]bool)
	for _, msg := range analysis.Validation.Messages {
		if msg.RuleID != "" {
			fired[msg.RuleID] = true
			result.FiredRules = append(result.FiredRules, msg.RuleID)
		}
	}

	if sc.Expected.Health != "" && sc.Expected.Health != result.Health {
		result.Mismatches = append(result.Mismatches,
			fmt.Sprintf("health: want %s, got %s", sc.Expected.Health, result.Health))
	}
	for _, ruleID := range sc.Expected.FiredRules {
		if !fired[ruleID] {
			result.Mismatches = append(result.Mismatches,
				fmt.Sprintf("rule %s did not fire", ruleID))
		}
	}
	if sc.Expected.Valid != nil && *sc.Expected.Valid != result.Valid {
		result.Mismatches = append(result.Mismatches,
			fmt.Sprintf("valid: want %v, got %v", *sc.Expected.Valid, result.Valid))
	}

	return result
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// #endregion replay
