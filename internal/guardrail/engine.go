// Package guardrail evaluates declarative governance rules against status
// reports. Catalogs are data loaded once at engine construction and safely
// shared across concurrent evaluations.
package guardrail

import (
	"fmt"
	"time"

	"github.com/pmpulse/analyzer/internal/report"
)

// #region engine

// Engine holds one ordered rule catalog per domain.
type Engine struct {
	catalogs map[report.Domain][]Rule
}

// NewEngine returns an engine loaded with the built-in catalogs.
func NewEngine() *Engine {
	return &Engine{
		catalogs: map[report.Domain][]Rule{
			report.DomainSchedule: scheduleRules(),
			report.DomainCost:     costRules(),
			report.DomainScope:    scopeRules(),
			report.DomainRisk:     riskRules(),
		},
	}
}

// Rules returns the catalog for a domain, in evaluation order.
func (e *Engine) Rules(domain report.Domain) []Rule {
	return e.catalogs[domain]
}

// SetRules replaces the catalog for a domain. Call before sharing the engine;
// catalogs are immutable during evaluation.
func (e *Engine) SetRules(domain report.Domain, rules []Rule) {
	e.catalogs[domain] = rules
}

// AppendRules extends a domain's catalog in order.
func (e *Engine) AppendRules(domain report.Domain, rules []Rule) {
	e.catalogs[domain] = append(e.catalogs[domain], rules...)
}

// #endregion engine

// #region validate

// Validate evaluates the domain catalog against the field mapping in catalog
// order. A panicking condition is isolated: it yields a synthetic
// error-action message and the remaining rules still run. An unknown domain
// returns an explicit invalid result, never an error.
func (e *Engine) Validate(domain report.Domain, fields report.Fields) ValidationResult {
	rules, ok := e.catalogs[domain]
	if !ok {
		return ValidationResult{
			Valid: false,
			Messages: []FiredMessage{{
				Message: fmt.Sprintf("Domínio inválido: %s", domain),
				Action:  ActionError,
			}},
			ValidatedAt: time.Now().UTC(),
		}
	}

	result := ValidationResult{Valid: true, ValidatedAt: time.Now().UTC()}
	for _, rule := range rules {
		fired, err := evaluate(rule, fields)
		if err != nil {
			result.Messages = append(result.Messages, FiredMessage{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Message:  fmt.Sprintf("Erro ao aplicar regra: %v", err),
				Action:   ActionError,
			})
			continue
		}
		if !fired {
			continue
		}
		result.Messages = append(result.Messages, FiredMessage{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			Message:  rule.Message,
			Action:   rule.Action,
		})
		if rule.Action == ActionRequire && !requirementMet(rule, fields) {
			result.Valid = false
		}
	}
	return result
}

// evaluate runs one condition with panic isolation.
func evaluate(rule Rule, fields report.Fields) (fired bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			fired = false
			err = fmt.Errorf("%v", r)
		}
	}()
	if rule.Condition == nil {
		return false, fmt.Errorf("regra %s sem condição", rule.ID)
	}
	return rule.Condition(fields), nil
}

// requirementMet checks the per-rule satisfaction flag in the input data.
func requirementMet(rule Rule, fields report.Fields) bool {
	return fields.Bool(fmt.Sprintf("requirement_%s_met", rule.ID))
}

// #endregion validate
