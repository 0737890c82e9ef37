package guardrail

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pmpulse/analyzer/internal/report"
)

// External rule catalogs: rules declared as data in YAML and compiled into
// conditions at load time, so deployments can extend or replace the built-in
// policies without code changes.

// #region yaml-schema

// CatalogFile models one external catalog document.
type CatalogFile struct {
	Domain string     `yaml:"domain"`
	Mode   string     `yaml:"mode"` // "append" (default) or "replace"
	Rules  []RuleSpec `yaml:"rules"`
}

// RuleSpec is the declarative form of one rule.
type RuleSpec struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Action      string    `yaml:"action"`
	Message     string    `yaml:"message"`
	When        WhenSpec  `yaml:"when"`
}

// WhenSpec is the declarative trigger condition.
//
// Ops: lt, gt, eq, is_true, non_empty, always. PercentOf turns a gt/lt
// threshold into "field <op> (value/100 * percent_of field)".
type WhenSpec struct {
	Field     string  `yaml:"field"`
	Op        string  `yaml:"op"`
	Value     float64 `yaml:"value"`
	StrValue  string  `yaml:"str_value"`
	PercentOf string  `yaml:"percent_of"`
}

// #endregion yaml-schema

// #region load

// LoadCatalogFile reads, parses, and compiles one YAML catalog into the
// engine. Unknown domains, actions, or ops are load errors — a broken catalog
// must fail at startup, not mid-evaluation.
func (e *Engine) LoadCatalogFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}
	return e.LoadCatalog(data)
}

// LoadCatalog parses and applies one YAML catalog document.
func (e *Engine) LoadCatalog(data []byte) error {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}

	domain := report.Domain(file.Domain)
	if !domain.Valid() {
		return fmt.Errorf("catalog: unknown domain %q", file.Domain)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, spec := range file.Rules {
		rule, err := compileRule(spec)
		if err != nil {
			return fmt.Errorf("catalog: rule %d (%s): %w", i, spec.ID, err)
		}
		rules = append(rules, rule)
	}

	switch file.Mode {
	case "", "append":
		e.AppendRules(domain, rules)
	case "replace":
		e.SetRules(domain, rules)
	default:
		return fmt.Errorf("catalog: unknown mode %q", file.Mode)
	}
	return nil
}

// #endregion load

// #region compile

func compileRule(spec RuleSpec) (Rule, error) {
	if spec.ID == "" {
		return Rule{}, fmt.Errorf("missing id")
	}
	action := Action(spec.Action)
	switch action {
	case ActionNotify, ActionRequire, ActionRecommend:
	default:
		return Rule{}, fmt.Errorf("unknown action %q", spec.Action)
	}
	cond, err := compileWhen(spec.When)
	if err != nil {
		return Rule{}, err
	}
	return Rule{
		ID:          spec.ID,
		Name:        spec.Name,
		Description: spec.Description,
		Action:      action,
		Message:     spec.Message,
		Condition:   cond,
	}, nil
}

func compileWhen(when WhenSpec) (Condition, error) {
	switch when.Op {
	case "always":
		return func(report.Fields) bool { return true }, nil
	case "is_true":
		field := when.Field
		return func(f report.Fields) bool { return f.Bool(field) }, nil
	case "non_empty":
		field := when.Field
		return func(f report.Fields) bool {
			list, ok := f.List(field)
			return ok && len(list) > 0
		}, nil
	case "eq":
		field := when.Field
		if when.StrValue != "" {
			want := when.StrValue
			return func(f report.Fields) bool {
				s, ok := f.String(field)
				return ok && s == want
			}, nil
		}
		want := when.Value
		return func(f report.Fields) bool {
			v, ok := f.Float(field)
			return ok && v == want
		}, nil
	case "lt", "gt":
		return compileThreshold(when)
	case "":
		return nil, fmt.Errorf("missing op")
	}
	return nil, fmt.Errorf("unknown op %q", when.Op)
}

func compileThreshold(when WhenSpec) (Condition, error) {
	if when.Field == "" {
		return nil, fmt.Errorf("op %s requires a field", when.Op)
	}
	field := when.Field
	value := when.Value
	percentOf := when.PercentOf
	less := when.Op == "lt"

	return func(f report.Fields) bool {
		v, ok := f.Float(field)
		if !ok {
			return false
		}
		threshold := value
		if percentOf != "" {
			base, okBase := f.Float(percentOf)
			if !okBase {
				return false
			}
			threshold = value / 100 * base
		}
		if less {
			return v < threshold
		}
		return v > threshold
	}, nil
}

// #endregion compile
