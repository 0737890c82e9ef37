package guardrail

import (
	"time"

	"github.com/pmpulse/analyzer/internal/report"
)

// #region action

// Action is what a fired rule demands of the caller.
type Action string

const (
	ActionNotify    Action = "notify"
	ActionRequire   Action = "require"
	ActionRecommend Action = "recommend"

	// ActionError marks a synthetic message for a rule whose condition
	// panicked during evaluation.
	ActionError Action = "error"
)

// #endregion action

// #region rule

// Condition is a pure predicate over a report's field mapping.
type Condition func(report.Fields) bool

// Rule is one declarative governance policy: a stable id, a trigger
// condition, and the action plus message it fires with. Rules are immutable
// after engine construction.
type Rule struct {
	ID          string
	Name        string
	Description string
	Action      Action
	Message     string
	Condition   Condition
}

// #endregion rule

// #region result

// FiredMessage is one rule that fired during validation, in catalog order.
type FiredMessage struct {
	RuleID   string
	RuleName string
	Message  string
	Action   Action
}

// ValidationResult is the outcome of evaluating one domain catalog against
// one report. Valid is false when any fired require-rule lacks its
// satisfaction flag, or when the domain is unknown.
type ValidationResult struct {
	Valid       bool
	Messages    []FiredMessage
	ValidatedAt time.Time
}

// #endregion result
